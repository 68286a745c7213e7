// ABOUTME: Package documentation for leaf scan post-processing
// ABOUTME: All transforms are stateless and single-pass

// Package leaf post-processes leaf scanner results from the backend.
//
// The heavy lifting (CNN grading, vision checks, advisory generation)
// happens server-side; this package shapes the returned text and labels
// for display: cleaning markdown artifacts out of model prose, parsing
// recommendation lines into titled entries with priorities, and scoring
// disease labels for the condition charts.
package leaf

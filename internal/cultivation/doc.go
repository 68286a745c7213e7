// ABOUTME: Package documentation for cultivation banding and scoring
// ABOUTME: Stateless transforms over sensor readings

// Package cultivation bands sensor readings against ideal ranges for
// tea cultivation and computes a local health assessment.
//
// The backend owns the authoritative cultivation engine; this package
// reimplements only the arithmetic parts (banding, stress weighting,
// health score) so the dashboard can annotate readings client-side and
// degrade gracefully when the smart-alert endpoint is down.
package cultivation

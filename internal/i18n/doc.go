// ABOUTME: Package documentation for UI translation support
// ABOUTME: English and Assamese with a persisted language preference

// Package i18n provides the dashboard's UI strings in English and
// Assamese.
//
// The language choice persists in the preference store under the
// "language" key. Lookups for keys missing from both tables return the
// key itself, so untranslated labels degrade to readable text.
package i18n

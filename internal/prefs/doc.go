// Package prefs provides durable local storage for the chai-net dashboard.
//
// Preferences live in a flat string-keyed table in a SQLite database,
// created on first use, so they survive restarts without any external
// service.
//
// Two preference keys are in active use:
//
//   - chai_demo_mode: "true"/"false", whether the backend should serve
//     its demonstration dataset
//   - language: "en"/"as", the UI language preference
//
// The credential provider additionally persists its session material here
// so a signed-in user stays signed in across restarts.
//
// Values are plain strings with no schema versioning.
package prefs

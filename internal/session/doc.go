// Package session holds the process-wide session state for the dashboard.
//
// # Overview
//
// The Store combines three pieces of state into published snapshots:
//
//   - Principal: who is signed in (nil when nobody is)
//   - Resolving: true until the credential provider reports its first
//     auth-state change; flips to false exactly once per Store lifetime
//   - DemoMode: a user preference, persisted in durable storage and
//     independent of auth state
//
// Exactly one Store exists per running application. It is constructed at
// boot, passed by reference to whatever needs it, and released with Close
// at shutdown.
//
// # Observing the session
//
// Pull consumers (the route guard) call Snapshot. Push consumers call
// Subscribe and receive the current snapshot followed by one snapshot per
// state change, in order. Snapshots for slow subscribers are dropped
// rather than blocking the publisher.
//
// # Navigation
//
// Sign-in, sign-out, and demo-mode toggles drive a Navigator: dashboard
// after sign-in, login after sign-out, full reload after a toggle. The
// full reload is intentional: demo mode changes the backend dataset for
// every view simultaneously, and reloading is the simplest way to
// guarantee no view shows data from the wrong mode.
package session

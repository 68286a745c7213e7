// Package auth provides credential providers for the chai-net dashboard.
//
// # Credential Providers
//
// The dashboard never talks to an identity service directly; it goes
// through the CredentialProvider interface, which has two implementations:
//
//   - GoogleProvider: Google OAuth2 authorization-code flow. The
//     interactive sign-in opens the system browser and collects the
//     authorization code on a loopback listener. Refresh tokens are
//     persisted in the preference store so sign-in survives restarts.
//
//   - DevProvider: local development identity. Users live in a SQLite
//     table with bcrypt password hashes; bearer tokens are short-lived
//     HS256 JWTs minted fresh per request.
//
// # Principals
//
// Both providers report identities as Principal values:
//
//   - ID: stable identifier ("google:<sub>" or "user:<uuid>")
//   - Name, Email: optional display attributes
//
// Principals are owned by the provider; consumers hold read-only
// snapshots and observe replacements through Subscribe.
//
// # Subscription Contract
//
// Subscribe delivers one immediate event carrying the rehydrated state
// (possibly nil), then one event per sign-in or sign-out, in emission
// order. A stale "signed out" is never delivered after a newer
// "signed in".
//
// # Tokens
//
// CurrentToken returns a fresh bearer token per call. Tokens are never
// cached by callers because they expire; the OAuth token source refreshes
// transparently and the dev provider mints a new JWT each time.
package auth

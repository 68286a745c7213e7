// ABOUTME: Package documentation for the route guard middleware
// ABOUTME: Describes the resolving/redirect/serve decision table

// Package guard protects dashboard routes behind the session store.
//
// # Decision table
//
// Every request to a protected route reads the current session
// snapshot and takes exactly one of three paths:
//
//   - Resolving: a neutral loading page, never protected markup
//   - Resolved without a principal: a 303 redirect to /login
//   - Resolved with a principal: the wrapped handler, with the
//     principal available via [PrincipalFromContext]
//
// The guard holds no state of its own; it re-reads the store on each
// request so sign-out is effective immediately.
package guard

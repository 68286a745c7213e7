// Package api is the single egress point for all CHAI-NET backend calls.
//
// # Overview
//
// Every feature surface reaches the backend through one shared Client so
// no call site repeats auth logic. Before each request the client
// resolves a fresh header set:
//
//   - Authorization: Bearer <token> when the registered token getter
//     yields one; omitted entirely (never sent empty) otherwise
//   - Content-Type: application/json for JSON bodies; multipart bodies
//     carry the multipart writer's own boundary content type
//   - any extra headers from the injector (X-Force-Demo: true in demo mode)
//
// Tokens are never cached across requests: they are short-lived, and a
// cached token would eventually be an expired one.
//
// # Failure semantics
//
// Non-2xx responses become *RequestError carrying the status code.
// Transport failures (DNS, connection refused) propagate as-is with no
// status. The client performs no retries; retry policy, if any, belongs
// to the caller. Endpoints where the backend signals "no data yet"
// through an error JSON field return ErrNoData.
//
// # Typed endpoints
//
// Each backend endpoint gets an explicit result type at this boundary so
// downstream code cannot silently read a missing field.
package api

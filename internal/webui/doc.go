// ABOUTME: Package documentation for the dashboard web UI
// ABOUTME: Server-rendered pages over the session store and API client

// Package webui serves the CHAI-NET dashboard as server-rendered HTML.
//
// # Routes
//
// Public: login and signup. Everything else sits behind the route
// guard, which redirects signed-out visitors to /login.
//
// Pages are rendered from templates embedded at build time. Backend
// data is fetched per section: a failing endpoint blanks its card
// instead of failing the page, and the smart alert degrades to a
// locally computed estimate when its endpoint is unreachable.
package webui

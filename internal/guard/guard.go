// ABOUTME: HTTP route guard gating protected views on session resolution
// ABOUTME: Loading page while resolving, login redirect when signed out

package guard

import (
	"context"
	"net/http"

	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/session"
)

// LoginRoute is where unauthenticated viewers are sent.
const LoginRoute = "/login"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const principalContextKey contextKey = "principal"

// loadingPage is the neutral placeholder rendered while the session is
// still resolving. It must not contain any protected markup: flashing
// protected content and then hiding it would leak it to signed-out
// viewers. The meta refresh re-evaluates once the session settles.
const loadingPage = `<!DOCTYPE html>
<html>
<head><meta http-equiv="refresh" content="1"><title>CHAI-NET</title></head>
<body style="display:flex;align-items:center;justify-content:center;min-height:100vh;font-family:sans-serif">
<p>Loading...</p>
</body>
</html>`

// Guard wraps protected handlers. Each request re-reads the session
// snapshot, so a sign-out anywhere in the UI takes effect on the very
// next request.
type Guard struct {
	sessions *session.Store
}

// New creates a guard over the given session store.
func New(sessions *session.Store) *Guard {
	return &Guard{sessions: sessions}
}

// Protect gates a handler behind "is someone signed in":
//
//   - session still resolving: render the neutral loading page only
//   - resolved, no principal: redirect to the login route, render nothing
//   - resolved with a principal: serve the handler with the principal
//     on the request context
func (g *Guard) Protect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := g.sessions.Snapshot()

		if snap.Resolving {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(loadingPage))
			return
		}

		if snap.Principal == nil {
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, snap.Principal)
		next(w, r.WithContext(ctx))
	}
}

// PrincipalFromContext retrieves the signed-in principal placed on the
// request context by Protect. Returns nil outside a protected handler.
func PrincipalFromContext(ctx context.Context) *auth.Principal {
	principal, _ := ctx.Value(principalContextKey).(*auth.Principal)
	return principal
}

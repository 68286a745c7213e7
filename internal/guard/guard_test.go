// ABOUTME: Tests for the route guard decision table
// ABOUTME: Covers loading page, login redirect, and principal passthrough

package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/prefs"
	"github.com/EnderMRG/ChaiTea/internal/session"
)

// stubProvider emits auth-state events only when the test tells it to,
// so tests can observe the store mid-resolution.
type stubProvider struct {
	notify func(*auth.Principal)
}

func (p *stubProvider) SignInInteractive(ctx context.Context) (*auth.Principal, error) {
	return nil, nil
}

func (p *stubProvider) SignOut(ctx context.Context) error { return nil }

func (p *stubProvider) Subscribe(fn func(*auth.Principal)) func() {
	p.notify = fn
	return func() { p.notify = nil }
}

func (p *stubProvider) CurrentToken(ctx context.Context) (string, error) { return "", nil }

func newTestStore(t *testing.T) (*session.Store, *stubProvider) {
	t.Helper()

	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	provider := &stubProvider{}
	sessions := session.New(provider, store, session.NopNavigator{})
	t.Cleanup(sessions.Close)
	return sessions, provider
}

func protectedEcho(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())
		require.NotNil(t, principal)
		w.Write([]byte("hello " + principal.Name))
	}
}

func TestProtect_ResolvingRendersLoadingPage(t *testing.T) {
	sessions, _ := newTestStore(t)
	g := New(sessions)

	rec := httptest.NewRecorder()
	g.Protect(protectedEcho(t))(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading")
	assert.NotContains(t, rec.Body.String(), "hello")
}

func TestProtect_SignedOutRedirectsToLogin(t *testing.T) {
	sessions, provider := newTestStore(t)
	provider.notify(nil) // resolved: no one signed in
	g := New(sessions)

	rec := httptest.NewRecorder()
	g.Protect(protectedEcho(t))(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginRoute, rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "hello")
}

func TestProtect_SignedInServesWithPrincipal(t *testing.T) {
	sessions, provider := newTestStore(t)
	provider.notify(&auth.Principal{ID: "user:1", Name: "Ravi", Email: "ravi@example.com"})
	g := New(sessions)

	rec := httptest.NewRecorder()
	g.Protect(protectedEcho(t))(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello Ravi", rec.Body.String())
}

func TestProtect_SignOutTakesEffectNextRequest(t *testing.T) {
	sessions, provider := newTestStore(t)
	provider.notify(&auth.Principal{ID: "user:1", Name: "Ravi"})
	g := New(sessions)
	handler := g.Protect(protectedEcho(t))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	provider.notify(nil)

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestPrincipalFromContext_OutsideGuard(t *testing.T) {
	assert.Nil(t, PrincipalFromContext(context.Background()))
}

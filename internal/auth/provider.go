// ABOUTME: Credential provider interface and shared auth-state fan-out
// ABOUTME: Defines Principal, sign-in errors, and the subscription contract

package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Sign-in errors
var (
	// ErrPopupBlocked means the interactive sign-in surface could not open
	// (browser launch failed or the loopback redirect port was unavailable).
	// The UI shows a remediation message; the session stays signed out.
	ErrPopupBlocked = errors.New("interactive sign-in could not open")

	// ErrInvalidCredentials is returned by password sign-in for an unknown
	// email or a wrong password. Deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Principal is the authenticated identity reported by a credential
// provider. It is a read-only snapshot; the provider owns the identity.
type Principal struct {
	ID    string
	Name  string
	Email string
}

// CredentialProvider is the identity service the session store sits on.
// Implementations must deliver auth-state changes to subscribers in
// emission order, starting with one event carrying the rehydrated state
// (the current principal, or nil when no one is signed in).
type CredentialProvider interface {
	// SignInInteractive runs the provider's interactive sign-in flow and
	// returns the new principal. Fails with ErrPopupBlocked when the flow
	// could not open at all.
	SignInInteractive(ctx context.Context) (*Principal, error)

	// SignOut ends the current session with the provider.
	SignOut(ctx context.Context) error

	// Subscribe registers fn for auth-state changes and returns a cancel
	// function. fn is invoked immediately with the current state.
	Subscribe(fn func(*Principal)) (cancel func())

	// CurrentToken returns a fresh short-lived bearer token for the
	// signed-in principal, or "" when no one is signed in.
	CurrentToken(ctx context.Context) (string, error)
}

// PasswordAuthenticator is implemented by providers that support
// email/password sign-in in addition to the interactive flow.
type PasswordAuthenticator interface {
	SignInPassword(ctx context.Context, email, password string) (*Principal, error)
}

// authState is the shared subscriber registry embedded by providers.
// Callbacks run synchronously under the lock so changes are observed in
// emission order; subscribers must not call back into the provider.
type authState struct {
	mu          sync.Mutex
	current     *Principal
	subscribers map[string]func(*Principal)
}

func newAuthState(initial *Principal) *authState {
	return &authState{
		current:     initial,
		subscribers: make(map[string]func(*Principal)),
	}
}

// subscribe registers fn, delivering the current state immediately.
func (a *authState) subscribe(fn func(*Principal)) (cancel func()) {
	a.mu.Lock()
	id := uuid.New().String()
	a.subscribers[id] = fn
	fn(a.current)
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subscribers, id)
		a.mu.Unlock()
	}
}

// set replaces the current principal and notifies every subscriber.
func (a *authState) set(p *Principal) {
	a.mu.Lock()
	a.current = p
	for _, fn := range a.subscribers {
		fn(p)
	}
	a.mu.Unlock()
}

// principal returns the current principal.
func (a *authState) principal() *Principal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

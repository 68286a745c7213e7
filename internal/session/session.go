// ABOUTME: Process-wide session state: current principal, resolution, demo mode
// ABOUTME: Subscribes to the credential provider and fans out snapshots

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/prefs"
)

const (
	// subscriberBufferSize is the channel buffer for each snapshot subscriber.
	subscriberBufferSize = 16

	// PopupBlockedWarning is shown when the interactive sign-in surface
	// could not open. The session stays signed out.
	PopupBlockedWarning = "Sign-in window could not open. Allow the browser to open and try again."
)

// Snapshot is the published view of the session. Resolving is true until
// the credential provider reports its first auth-state change; while it is
// true, consumers must not assume either presence or absence of a
// principal. DemoMode is a user preference, independent of auth state.
type Snapshot struct {
	Principal *auth.Principal
	Resolving bool
	DemoMode  bool
	Warning   string
}

// SignedIn reports whether a resolved principal is present.
func (s Snapshot) SignedIn() bool {
	return !s.Resolving && s.Principal != nil
}

// Navigator receives the route changes the session triggers: to the
// dashboard after sign-in, to the login route after sign-out, and a full
// reload after a demo-mode toggle.
type Navigator interface {
	ToDashboard()
	ToLogin()
	Reload()
}

// NopNavigator ignores all navigation. Useful for tools that have no
// routed surface.
type NopNavigator struct{}

func (NopNavigator) ToDashboard() {}
func (NopNavigator) ToLogin()     {}
func (NopNavigator) Reload()      {}

// Store is the single source of truth for "who is signed in" and "are we
// in demo mode". Exactly one Store exists per running application; it is
// constructed at boot and released with Close at shutdown.
type Store struct {
	provider auth.CredentialProvider
	prefs    *prefs.Store
	nav      Navigator
	logger   *slog.Logger

	mu          sync.Mutex
	principal   *auth.Principal
	resolving   bool
	demoMode    bool
	warning     string
	subscribers map[string]chan Snapshot

	unsubscribe func()
}

// New creates the session store and immediately subscribes to the
// credential provider. The demo-mode preference is rehydrated from
// durable storage; the resolving flag flips to false on the provider's
// first auth-state event and never flips back.
func New(provider auth.CredentialProvider, store *prefs.Store, nav Navigator) *Store {
	if nav == nil {
		nav = NopNavigator{}
	}

	s := &Store{
		provider:    provider,
		prefs:       store,
		nav:         nav,
		logger:      slog.Default().With("component", "session"),
		resolving:   true,
		demoMode:    store.GetBool(prefs.KeyDemoMode, false),
		subscribers: make(map[string]chan Snapshot),
	}

	s.unsubscribe = provider.Subscribe(s.onAuthChange)
	return s
}

// onAuthChange receives provider auth-state events in emission order.
func (s *Store) onAuthChange(principal *auth.Principal) {
	s.mu.Lock()
	s.principal = principal
	// The first event resolves the session, even when it reports that
	// no one is signed in.
	s.resolving = false
	s.publishLocked()
	s.mu.Unlock()
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Principal: s.principal,
		Resolving: s.resolving,
		DemoMode:  s.demoMode,
		Warning:   s.warning,
	}
}

// Subscribe registers a snapshot subscriber. The current snapshot is
// delivered first, then one snapshot per state change, in order. The
// subscription is released when ctx is cancelled.
func (s *Store) Subscribe(ctx context.Context) <-chan Snapshot {
	subID := uuid.New().String()
	ch := make(chan Snapshot, subscriberBufferSize)

	s.mu.Lock()
	s.subscribers[subID] = ch
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		if sub, ok := s.subscribers[subID]; ok {
			delete(s.subscribers, subID)
			close(sub)
		}
		s.mu.Unlock()
	}()

	return ch
}

// publishLocked fans the current snapshot out to all subscribers.
// Non-blocking: snapshots are dropped for subscribers whose channels are
// full. Callers hold s.mu.
func (s *Store) publishLocked() {
	snap := s.snapshotLocked()
	for subID, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			s.logger.Debug("dropped snapshot for slow subscriber", "sub_id", subID)
		}
	}
}

// SignIn runs the provider's interactive sign-in flow. On success the
// navigator is pointed at the dashboard; the principal itself arrives
// through the provider subscription. A blocked popup is absorbed into a
// user-visible warning; any other failure propagates to the caller with
// the session left signed out.
func (s *Store) SignIn(ctx context.Context) error {
	_, err := s.provider.SignInInteractive(ctx)
	if errors.Is(err, auth.ErrPopupBlocked) {
		s.logger.Warn("interactive sign-in blocked", "error", err)
		s.mu.Lock()
		s.warning = PopupBlockedWarning
		s.publishLocked()
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("signing in: %w", err)
	}

	s.mu.Lock()
	s.warning = ""
	s.mu.Unlock()

	s.nav.ToDashboard()
	return nil
}

// SignOut ends the provider session. Sign-out is non-blocking: when the
// provider call fails the session is forced to signed-out anyway and the
// navigator still points at the login route, so a remote failure can
// never leave the user stuck in an authenticated-looking UI. The
// provider error, if any, is returned for display.
func (s *Store) SignOut(ctx context.Context) error {
	err := s.provider.SignOut(ctx)
	if err != nil {
		s.logger.Warn("provider sign-out failed, forcing local sign-out", "error", err)
		s.mu.Lock()
		s.principal = nil
		s.resolving = false
		s.publishLocked()
		s.mu.Unlock()
	}

	s.nav.ToLogin()

	if err != nil {
		return fmt.Errorf("signing out: %w", err)
	}
	return nil
}

// Token returns a fresh bearer token for the signed-in principal, or ""
// when no one is signed in or the provider could not mint one. It never
// fails: callers treat "" as "send the request unauthenticated".
func (s *Store) Token(ctx context.Context) string {
	token, err := s.provider.CurrentToken(ctx)
	if err != nil {
		s.logger.Warn("token unavailable", "error", err)
		return ""
	}
	return token
}

// TokenGetter adapts Token to the API client's getter signature.
func (s *Store) TokenGetter() func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		return s.Token(ctx), nil
	}
}

// DemoHeaders returns the extra request headers implied by the current
// demo-mode preference. Wired into the API client as its header injector.
func (s *Store) DemoHeaders() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.demoMode {
		return nil
	}
	return map[string]string{"X-Force-Demo": "true"}
}

// ToggleDemoMode flips the demo-mode preference, persists it, and then
// triggers a full application reload. The reload is deliberate: demo mode
// changes the effective backend dataset for every open view at once, and
// a full reload guarantees no view keeps showing data from the wrong
// mode. Persistence happens before the reload so the new value survives it.
func (s *Store) ToggleDemoMode() error {
	s.mu.Lock()
	newMode := !s.demoMode
	s.mu.Unlock()

	if err := s.prefs.SetBool(prefs.KeyDemoMode, newMode); err != nil {
		return fmt.Errorf("persisting demo mode: %w", err)
	}

	s.mu.Lock()
	s.demoMode = newMode
	s.publishLocked()
	s.mu.Unlock()

	s.logger.Info("demo mode toggled", "demo_mode", newMode)
	s.nav.Reload()
	return nil
}

// Close releases the provider subscription and all snapshot subscribers.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}

	s.mu.Lock()
	for subID, ch := range s.subscribers {
		delete(s.subscribers, subID)
		close(ch)
	}
	s.mu.Unlock()
}

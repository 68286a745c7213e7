// ABOUTME: Local development credential provider backed by SQLite and bcrypt
// ABOUTME: Mints short-lived HS256 JWTs and persists the session across restarts

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/EnderMRG/ChaiTea/internal/prefs"
)

// prefs key holding the signed-in user ID between runs
const devSessionKey = "dev_session_user"

// DevProvider is a credential provider for local development: users live
// in a SQLite table with bcrypt password hashes, and bearer tokens are
// HS256 JWTs minted fresh on every CurrentToken call.
type DevProvider struct {
	db       *sql.DB
	prefs    *prefs.Store
	verifier *JWTVerifier
	state    *authState
	logger   *slog.Logger
}

// NewDevProvider creates the dev provider, sharing the preference store's
// database for its users table. A session persisted by a previous run is
// rehydrated so subscribers see the signed-in principal immediately.
func NewDevProvider(store *prefs.Store, jwtSecret []byte) (*DevProvider, error) {
	p := &DevProvider{
		db:       store.DB(),
		prefs:    store,
		verifier: NewJWTVerifier(jwtSecret),
		logger:   slog.Default().With("component", "auth"),
	}

	if err := p.createSchema(); err != nil {
		return nil, fmt.Errorf("creating users schema: %w", err)
	}

	p.state = newAuthState(p.rehydrate())
	return p, nil
}

func (p *DevProvider) createSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT UNIQUE NOT NULL,
			name          TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// rehydrate loads the persisted session, if any.
func (p *DevProvider) rehydrate() *Principal {
	userID, ok := p.prefs.Get(devSessionKey)
	if !ok {
		return nil
	}

	principal, err := p.lookupByID(userID)
	if err != nil {
		p.logger.Warn("persisted session references unknown user", "user_id", userID)
		return nil
	}
	return principal
}

func (p *DevProvider) lookupByID(id string) (*Principal, error) {
	var principal Principal
	err := p.db.QueryRow(
		"SELECT id, name, email FROM users WHERE id = ?", id,
	).Scan(&principal.ID, &principal.Name, &principal.Email)
	if err != nil {
		return nil, err
	}
	return &principal, nil
}

// SignUp creates a new user with a bcrypt-hashed password and signs them in.
func (p *DevProvider) SignUp(ctx context.Context, name, email, password string) (*Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	id := "user:" + uuid.New().String()
	_, err = p.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, password_hash) VALUES (?, ?, ?, ?)",
		id, email, name, string(hash),
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	principal := &Principal{ID: id, Name: name, Email: email}
	p.signIn(principal)
	return principal, nil
}

// SignInPassword authenticates an email/password pair. Unknown emails and
// wrong passwords both return ErrInvalidCredentials.
func (p *DevProvider) SignInPassword(ctx context.Context, email, password string) (*Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var principal Principal
	var hash string
	err := p.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash FROM users WHERE email = ?", email,
	).Scan(&principal.ID, &principal.Name, &principal.Email, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	p.signIn(&principal)
	return &principal, nil
}

// SignInInteractive is not available for the dev provider; local sign-in
// goes through the email/password form instead.
func (p *DevProvider) SignInInteractive(ctx context.Context) (*Principal, error) {
	return nil, fmt.Errorf("dev provider has no interactive flow; use password sign-in")
}

func (p *DevProvider) signIn(principal *Principal) {
	if err := p.prefs.Set(devSessionKey, principal.ID); err != nil {
		p.logger.Warn("failed to persist session", "error", err)
	}
	p.state.set(principal)
	p.logger.Info("signed in", "email", principal.Email)
}

// SignOut clears the current session.
func (p *DevProvider) SignOut(ctx context.Context) error {
	if err := p.prefs.Delete(devSessionKey); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	p.state.set(nil)
	return nil
}

// Subscribe registers fn for auth-state changes.
func (p *DevProvider) Subscribe(fn func(*Principal)) (cancel func()) {
	return p.state.subscribe(fn)
}

// CurrentToken mints a fresh short-lived JWT for the signed-in principal,
// or returns "" when no one is signed in.
func (p *DevProvider) CurrentToken(ctx context.Context) (string, error) {
	principal := p.state.principal()
	if principal == nil {
		return "", nil
	}
	return p.verifier.Generate(principal.ID, TokenLifetime)
}

// Verifier exposes the provider's JWT verifier so tools can validate
// tokens minted here.
func (p *DevProvider) Verifier() *JWTVerifier {
	return p.verifier
}

// ABOUTME: Google credential provider using the OAuth2 authorization-code flow
// ABOUTME: Opens the system browser and collects the code on a loopback listener

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/EnderMRG/ChaiTea/internal/prefs"
)

const (
	googleRefreshKey = "google_refresh_token"
	googleProfileKey = "google_profile"

	userinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// GoogleProvider implements CredentialProvider on top of Google's OAuth2
// endpoints. The interactive flow opens the system browser and collects
// the authorization code on a loopback listener; the refresh token and
// profile are persisted so sign-in survives restarts.
type GoogleProvider struct {
	oauth        *oauth2.Config
	redirectAddr string
	prefs        *prefs.Store
	state        *authState
	logger       *slog.Logger

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewGoogleProvider creates the provider and rehydrates any persisted
// session. redirectPort is the loopback port the OAuth redirect lands on.
func NewGoogleProvider(store *prefs.Store, clientID, clientSecret string, redirectPort int) *GoogleProvider {
	p := &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  fmt.Sprintf("http://127.0.0.1:%d/callback", redirectPort),
			Scopes:       []string{"openid", "profile", "email"},
		},
		redirectAddr: fmt.Sprintf("127.0.0.1:%d", redirectPort),
		prefs:        store,
		logger:       slog.Default().With("component", "auth"),
	}

	p.state = newAuthState(p.rehydrate())
	return p
}

// rehydrate restores the token source and principal from durable storage.
func (p *GoogleProvider) rehydrate() *Principal {
	refresh, ok := p.prefs.Get(googleRefreshKey)
	if !ok {
		return nil
	}
	profile, ok := p.prefs.Get(googleProfileKey)
	if !ok {
		return nil
	}

	var principal Principal
	if err := json.Unmarshal([]byte(profile), &principal); err != nil {
		p.logger.Warn("persisted profile is malformed, discarding", "error", err)
		return nil
	}

	p.source = p.oauth.TokenSource(context.Background(), &oauth2.Token{RefreshToken: refresh})
	return &principal
}

// SignInInteractive runs the browser-based authorization-code flow.
// A failure to bind the loopback listener or launch the browser is
// reported as ErrPopupBlocked; everything after that is a provider error.
func (p *GoogleProvider) SignInInteractive(ctx context.Context) (*Principal, error) {
	listener, err := net.Listen("tcp", p.redirectAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPopupBlocked, err)
	}
	defer listener.Close()

	oauthState := uuid.New().String()
	authURL := p.oauth.AuthCodeURL(oauthState, oauth2.AccessTypeOffline)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != oauthState {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- fmt.Errorf("oauth state mismatch")
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			errCh <- fmt.Errorf("redirect carried no authorization code")
			return
		}
		fmt.Fprint(w, "Signed in. You can close this tab and return to CHAI-NET.")
		codeCh <- code
	})}
	go server.Serve(listener)
	defer server.Close()

	if err := openBrowser(authURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPopupBlocked, err)
	}

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, fmt.Errorf("sign-in failed: %w", err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	principal, err := p.fetchProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	p.persist(token, principal)

	p.mu.Lock()
	p.source = p.oauth.TokenSource(context.Background(), token)
	p.mu.Unlock()

	p.state.set(principal)
	p.logger.Info("signed in", "email", principal.Email)
	return principal, nil
}

// fetchProfile resolves the signed-in identity from the userinfo endpoint.
func (p *GoogleProvider) fetchProfile(ctx context.Context, token *oauth2.Token) (*Principal, error) {
	client := p.oauth.Client(ctx, token)
	client.Timeout = 15 * time.Second

	resp, err := client.Get(userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("userinfo returned no subject")
	}

	return &Principal{ID: "google:" + info.Sub, Name: info.Name, Email: info.Email}, nil
}

func (p *GoogleProvider) persist(token *oauth2.Token, principal *Principal) {
	profile, err := json.Marshal(principal)
	if err == nil {
		err = p.prefs.Set(googleProfileKey, string(profile))
	}
	if err == nil && token.RefreshToken != "" {
		err = p.prefs.Set(googleRefreshKey, token.RefreshToken)
	}
	if err != nil {
		p.logger.Warn("failed to persist session", "error", err)
	}
}

// SignOut drops the token source and the persisted session. The token is
// not revoked remotely; it simply expires.
func (p *GoogleProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.source = nil
	p.mu.Unlock()

	if err := p.prefs.Delete(googleRefreshKey); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	if err := p.prefs.Delete(googleProfileKey); err != nil {
		return fmt.Errorf("clearing persisted profile: %w", err)
	}

	p.state.set(nil)
	return nil
}

// Subscribe registers fn for auth-state changes.
func (p *GoogleProvider) Subscribe(fn func(*Principal)) (cancel func()) {
	return p.state.subscribe(fn)
}

// CurrentToken returns a fresh access token via the OAuth token source,
// which refreshes expired tokens transparently. Returns "" when no one
// is signed in.
func (p *GoogleProvider) CurrentToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	source := p.source
	p.mu.Unlock()

	if source == nil {
		return "", nil
	}

	token, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("refreshing access token: %w", err)
	}
	return token.AccessToken, nil
}

// openBrowser launches the system browser at url.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// ABOUTME: Unit tests for the backend HTTP client
// ABOUTME: Tests header resolution, multipart bodies, and failure semantics

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureServer records the last request's headers and serves a canned body.
func captureServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	captured := &http.Request{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r.Clone(r.Context())
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestClient_NoTokenGetter_NoAuthHeader(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)

	require.NoError(t, c.Get(context.Background(), "/api/farm/averages", nil))

	_, present := captured.Header["Authorization"]
	assert.False(t, present, "no getter registered means no Authorization header")
}

func TestClient_TokenGetterEmpty_NoAuthHeader(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)
	c.SetTokenGetter(func(ctx context.Context) (string, error) { return "", nil })

	require.NoError(t, c.Get(context.Background(), "/api/farm/averages", nil))

	_, present := captured.Header["Authorization"]
	assert.False(t, present, "empty token means the header is omitted, never sent empty")
}

func TestClient_TokenGetterError_ProceedsUnauthenticated(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)
	c.SetTokenGetter(func(ctx context.Context) (string, error) {
		return "", errors.New("provider offline")
	})

	require.NoError(t, c.Get(context.Background(), "/api/health", nil))

	_, present := captured.Header["Authorization"]
	assert.False(t, present)
}

func TestClient_TokenGetterValue_BearerHeader(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)
	c.SetTokenGetter(func(ctx context.Context) (string, error) { return "tok-abc", nil })

	require.NoError(t, c.Get(context.Background(), "/api/farm/averages", nil))

	assert.Equal(t, "Bearer tok-abc", captured.Header.Get("Authorization"))
}

func TestClient_TokenResolvedFreshPerCall(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)

	calls := 0
	c.SetTokenGetter(func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "tok-1", nil
		}
		return "tok-2", nil
	})

	require.NoError(t, c.Get(context.Background(), "/a", nil))
	require.NoError(t, c.Get(context.Background(), "/b", nil))

	assert.Equal(t, 2, calls, "token getter consulted once per request, never cached")
	assert.Equal(t, "Bearer tok-2", captured.Header.Get("Authorization"))
}

func TestClient_HeaderInjector(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)
	c.SetTokenGetter(func(ctx context.Context) (string, error) { return "tok-abc", nil })
	c.SetHeaderInjector(func() map[string]string {
		return map[string]string{"X-Force-Demo": "true"}
	})

	require.NoError(t, c.Get(context.Background(), "/api/farm/averages", nil))

	assert.Equal(t, "true", captured.Header.Get("X-Force-Demo"))
	assert.Equal(t, "Bearer tok-abc", captured.Header.Get("Authorization"),
		"demo header rides alongside the auth header")
}

func TestClient_PostJSON_ContentType(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)

	require.NoError(t, c.PostJSON(context.Background(), "/api/chat", map[string]string{"message": "hi"}, nil))

	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
}

func TestClient_PostFile_MultipartBoundary(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, `{}`)
	c := New(server.URL)
	c.SetTokenGetter(func(ctx context.Context) (string, error) { return "tok-abc", nil })

	body := strings.NewReader("fake image bytes")
	require.NoError(t, c.PostFile(context.Background(), "/api/leaf-quality", "file", "leaf.jpg", body, nil))

	ct := captured.Header.Get("Content-Type")
	assert.True(t, strings.HasPrefix(ct, "multipart/form-data; boundary="),
		"multipart content type must carry the writer's boundary, got %q", ct)
	assert.Equal(t, "Bearer tok-abc", captured.Header.Get("Authorization"))
}

func TestClient_Non2xx_RequestError(t *testing.T) {
	server, _ := captureServer(t, http.StatusUnauthorized, `{"detail":"nope"}`)
	c := New(server.URL)

	err := c.Get(context.Background(), "/api/farm/averages", nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
}

func TestClient_NetworkError_Propagates(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url)
	err := c.Get(context.Background(), "/api/farm/averages", nil)
	require.Error(t, err)

	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr), "transport failures carry no HTTP status")
}

func TestClient_DecodesResponse(t *testing.T) {
	server, _ := captureServer(t, http.StatusOK, `{"status":"success","sample_count":50,"averages":{"soil_moisture":58.2,"temperature":22.1,"humidity":70.4,"rainfall_7d":55.0}}`)
	c := New(server.URL)

	got, err := c.FarmAverages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, got.SampleCount)
	assert.InDelta(t, 58.2, got.Averages.SoilMoisture, 0.001)
}

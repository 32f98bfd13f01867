package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFollowsRedirectChain(t *testing.T) {
	var seenUserAgent string
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		seenUserAgent = r.Header.Get("User-Agent")
		http.Redirect(w, r, "/hop", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewRedirectResolver(5*time.Second, "recon-test/1.0")
	res := resolver.Resolve(context.Background(), server.URL+"/start")

	assert.Equal(t, server.URL+"/start", res.OriginalURL)
	assert.Equal(t, server.URL+"/final", res.FinalURL)
	assert.True(t, res.Redirected)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, res.Error)
	assert.Equal(t, "recon-test/1.0", seenUserAgent)
}

func TestResolveNoRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resolver := NewRedirectResolver(5*time.Second, "recon-test/1.0")
	res := resolver.Resolve(context.Background(), server.URL)

	assert.Equal(t, server.URL, res.FinalURL)
	assert.False(t, res.Redirected)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestResolveNormalizesSchemelessTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	bare := strings.TrimPrefix(server.URL, "http://")
	resolver := NewRedirectResolver(5*time.Second, "recon-test/1.0")
	res := resolver.Resolve(context.Background(), bare)

	assert.Equal(t, bare, res.OriginalURL)
	assert.Equal(t, server.URL, res.FinalURL)
	assert.False(t, res.Redirected)
}

func TestResolveFailureFallsBackToNormalizedInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close() // nothing listening any more

	resolver := NewRedirectResolver(2*time.Second, "recon-test/1.0")
	res := resolver.Resolve(context.Background(), target)

	require.NotEmpty(t, res.Error)
	assert.Equal(t, target, res.FinalURL, "failed resolution must still yield a usable URL")
	assert.False(t, res.Redirected)
	assert.Zero(t, res.StatusCode)
}

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func authHandler(apiKey string) http.Handler {
	detector := NewSuspiciousActivityDetector()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(apiKey, nil, detector)(next)
}

func TestAuthMiddlewareRejectsMissingKey(t *testing.T) {
	h := authHandler("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/player/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareAcceptsValidKey(t *testing.T) {
	h := authHandler("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/player/stats", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareAllowsPublicPaths(t *testing.T) {
	h := authHandler("secret")

	for _, path := range []string{"/healthz", "/readyz", "/metrics", "/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := SecurityHeadersMiddleware()(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
}

func TestExtractIPIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	req.Header.Set(HeaderForwardedFor, "10.0.0.1")

	assert.Equal(t, "203.0.113.9", extractIP(req, nil))
	assert.Equal(t, "10.0.0.1", extractIP(req, []string{"203.0.113.9"}))
}

package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	var reached bool
	handler := securityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name        string
		method      string
		path        string
		origin      string
		wantStatus  int
		wantReached bool
		wantCORS    bool
		wantCSP     string
	}{
		{
			name: "plain request", method: http.MethodPost, path: "/get_hint",
			wantStatus: http.StatusOK, wantReached: true,
			wantCSP: "default-src 'none'; frame-ancestors 'none';",
		},
		{
			name: "cross-origin request", method: http.MethodPost, path: "/get_hint", origin: "https://carbontradle.org",
			wantStatus: http.StatusOK, wantReached: true, wantCORS: true,
			wantCSP: "default-src 'none'; frame-ancestors 'none';",
		},
		{
			name: "preflight", method: http.MethodOptions, path: "/get_hint", origin: "https://carbontradle.org",
			wantStatus: http.StatusNoContent, wantReached: false, wantCORS: true,
			wantCSP: "default-src 'none'; frame-ancestors 'none';",
		},
		{
			name: "debug page", method: http.MethodGet, path: "/debug/",
			wantStatus: http.StatusOK, wantReached: true,
			wantCSP: "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReached, reached)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
			assert.Equal(t, tt.wantCSP, rec.Header().Get("Content-Security-Policy"))

			if tt.wantCORS {
				assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "Content-Type, X-Request-ID", rec.Header().Get("Access-Control-Allow-Headers"))
				assert.Equal(t, RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

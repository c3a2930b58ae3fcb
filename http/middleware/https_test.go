package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/middleware"
)

func TestForceHTTPS(t *testing.T) {
	tcs := []struct {
		name     string
		env      basecamp.Environment
		proto    string
		expected int
	}{
		{"Development", basecamp.Development, "", http.StatusOK},
		{"Forwarded-HTTPS", basecamp.Testing, "https", http.StatusOK},
		{"Forwarded-HTTP", basecamp.Testing, "http", http.StatusPermanentRedirect},
		{"Production-HTTP", basecamp.Production, "", http.StatusPermanentRedirect},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "http://example.com/about", nil)
			if tc.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tc.proto)
			}

			// Act
			middleware.ForceHTTPS(tc.env)(noopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
			if tc.expected == http.StatusPermanentRedirect {
				require.Equal(t, "https://example.com/about", w.Header().Get("Location"))
			}
		})
	}
}

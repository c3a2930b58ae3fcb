package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/middleware"
	"github.com/xy-planning-network/basecamp/http/session"
)

func TestInjectTheme(t *testing.T) {
	tcs := []struct {
		name     string
		store    session.SessionStorer
		expected any
	}{
		{"No-Store", nil, nil},
		{"No-Theme", session.NewStub(""), "light"},
		{"Dark", session.NewStub(session.ThemeDark), "dark"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

			var actual any

			// Act
			middleware.InjectTheme(tc.store)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				actual = rx.Context().Value(basecamp.ThemeKey)
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

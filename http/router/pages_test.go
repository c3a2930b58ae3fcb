package router_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/router"
	"github.com/xy-planning-network/basecamp/route"
)

// echo writes the resolved definition ID and params.
func echo() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := route.FromContext(r.Context())
		if !ok {
			http.Error(w, "no resolution", http.StatusInternalServerError)
			return
		}

		fmt.Fprintf(w, "%s %v", res.Definition.ID, res.Params.Map())
	})
}

func TestRouterPages(t *testing.T) {
	// Arrange
	withFallback, err := route.New([]route.Definition{
		{ID: "home", Path: "/", Component: echo()},
		{ID: "about", Path: "/about", Component: echo()},
		{ID: "doc", Path: "/docs/{slug}", Component: echo()},
		{ID: "not-found", Fallback: true, Component: echo()},
	})
	require.NoError(t, err)

	withoutFallback, err := route.New([]route.Definition{
		{ID: "home", Path: "/", Component: echo()},
	})
	require.NoError(t, err)

	tcs := []struct {
		name     string
		reg      *route.Registry
		method   string
		target   string
		code     int
		expected string
	}{
		{"Root", withFallback, http.MethodGet, "/", http.StatusOK, "home map[]"},
		{"Literal", withFallback, http.MethodGet, "/about", http.StatusOK, "about map[]"},
		{"Trailing-Slash", withFallback, http.MethodGet, "/about/", http.StatusOK, "about map[]"},
		{"Query", withFallback, http.MethodGet, "/about?tab=team", http.StatusOK, "about map[]"},
		{"Param", withFallback, http.MethodGet, "/docs/field-notes", http.StatusOK, "doc map[slug:field-notes]"},
		{"Raw-Param", withFallback, http.MethodGet, "/docs/a%20b", http.StatusOK, "doc map[slug:a%20b]"},
		{"Head", withFallback, http.MethodHead, "/about", http.StatusOK, ""},
		{"Fallback", withFallback, http.MethodGet, "/nowhere", http.StatusNotFound, "not-found map[]"},
		{"Not-Found", withoutFallback, http.MethodGet, "/nowhere", http.StatusNotFound, "not here"},
		{"Method", withFallback, http.MethodPost, "/about", http.StatusMethodNotAllowed, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt := router.New(basecamp.Testing, nil, nil)
			rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				io.WriteString(w, "not here")
			})
			rt.Pages(tc.reg, nil)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.expected != "" {
				require.Equal(t, tc.expected, w.Body.String())
			}
		})
	}
}

func TestDispatchFallbackStatus(t *testing.T) {
	tcs := []struct {
		name     string
		written  int
		expected int
	}{
		{"Implicit", 0, http.StatusNotFound},
		{"OK", http.StatusOK, http.StatusNotFound},
		{"Redirect", http.StatusFound, http.StatusFound},
		{"Error", http.StatusInternalServerError, http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			reg, err := route.New([]route.Definition{{
				Fallback: true,
				Component: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if tc.written != 0 {
						w.WriteHeader(tc.written)
					}
					io.WriteString(w, "fallback")
				}),
			}})
			require.NoError(t, err)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/anything", nil)

			// Act
			router.Dispatch(reg, http.NotFoundHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
		})
	}
}

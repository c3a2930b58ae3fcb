package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/session"
)

// InjectTheme stores the theme preference of the session associated with the *http.Request
// in *http.Request.Context under basecamp.ThemeKey.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectTheme(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			theme := session.ThemeLight
			if s, err := store.GetSession(r); err == nil {
				theme = s.Theme()
			}

			ctx := context.WithValue(r.Context(), basecamp.ThemeKey, string(theme))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

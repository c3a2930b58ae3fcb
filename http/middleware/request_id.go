package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/basecamp"
)

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under basecamp.RequestIDKey
// and echoes it in the RequestIDHeader response header.
//
// An incoming RequestIDHeader is reused when it parses as a uuid.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			r = r.Clone(context.WithValue(r.Context(), basecamp.RequestIDKey, id))
			r.Header.Set(RequestIDHeader, id)
			h.ServeHTTP(w, r)
		})
	}
}

package router

import (
	"net/http"

	"github.com/xy-planning-network/basecamp/http/middleware"
	"github.com/xy-planning-network/basecamp/metrics"
	"github.com/xy-planning-network/basecamp/route"
)

// Pages registers the page dispatcher for reg as a catch-all for GET and HEAD requests.
//
// Register Pages after every other Route, since mux matches routes in the order added.
// notFound serves requests resolving to nothing; when nil, the Router's NotFoundHandler does.
func (r *Router) Pages(reg *route.Registry, notFound http.Handler, middlewares ...middleware.Adapter) {
	if notFound == nil {
		notFound = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if r.r.NotFoundHandler != nil {
				r.r.NotFoundHandler.ServeHTTP(w, req)
				return
			}

			http.NotFound(w, req)
		})
	}

	r.r.PathPrefix("/").
		Methods(http.MethodGet, http.MethodHead).
		Handler(r.chain(Dispatch(reg, notFound), middlewares...))
}

// Dispatch resolves each request's escaped path against reg
// and mounts the component of the resolved definition,
// stashing the route.Result in the request context.
//
// A fallback component always responds with 404.
// When nothing resolves, notFound serves the request.
func Dispatch(reg *route.Registry, notFound http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		res := reg.ResolveRequest(route.Request{
			Path:     req.URL.EscapedPath(),
			RawQuery: req.URL.RawQuery,
			Fragment: req.URL.Fragment,
		})
		metrics.ObserveResolution(res)

		req = req.WithContext(route.NewContext(req.Context(), res))
		switch {
		case res.Status == route.StatusMatched && res.Definition.Component != nil:
			res.Definition.Component.ServeHTTP(w, req)
		case res.Status == route.StatusFallback && res.Definition.Component != nil:
			res.Definition.Component.ServeHTTP(&notFoundWriter{ResponseWriter: w}, req)
		default:
			notFound.ServeHTTP(w, req)
		}
	})
}

// notFoundWriter turns any successful status code into 404.
type notFoundWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *notFoundWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.wroteHeader = true
	if code < http.StatusMultipleChoices {
		code = http.StatusNotFound
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *notFoundWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.ResponseWriter.Write(b)
}

func (w *notFoundWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

package router

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/middleware"
)

// AssetsPath prefixes every static asset URL.
const AssetsPath = "/assets/"

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for resources to their location in a basecamp app.
type Router struct {
	Env           basecamp.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// If assets is not nil, New serves its files gzipped under [AssetsPath].
func New(env basecamp.Environment, logReq middleware.Adapter, assets fs.FS) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	r := mux.NewRouter()
	if assets != nil {
		assetsServer := http.FileServer(http.FS(assets))

		// NOTE: direct reqs for assets to the public fs
		r.PathPrefix(AssetsPath).Handler(middleware.Chain(
			http.StripPrefix(AssetsPath, assetsServer),
			logReq,
			cacheControlMiddleware(),
			handlers.CompressHandler,
		))
	}

	return &Router{logReq: logReq, Env: env, r: r}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		append([]middleware.Adapter{r.logReq}, r.everyReqStack...)...,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		handler := r.chain(route.Handler, append(middlewares, route.Middlewares...)...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api") handles requests to endpoints like /api/routes
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}

// chain wraps handler in panic reporting, the every request stack and then middlewares.
func (r *Router) chain(handler http.Handler, middlewares ...middleware.Adapter) http.Handler {
	mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares))
	mws = append(mws, r.everyReqStack...)
	mws = append(mws, middlewares...)

	return middleware.Chain(middleware.ReportPanic(r.Env)(handler), mws...)
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}

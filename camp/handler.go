package camp

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/req"
	"github.com/xy-planning-network/basecamp/http/resp"
	"github.com/xy-planning-network/basecamp/http/router"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/metrics"
	"github.com/xy-planning-network/basecamp/page"
	"github.com/xy-planning-network/basecamp/route"
)

// A RouteView describes a route of the registry.
type RouteView struct {
	ID       string `json:"id"`
	Path     string `json:"path,omitempty"`
	Title    string `json:"title,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// A ResolutionView describes how the registry resolved a path.
type ResolutionView struct {
	ID      string            `json:"id,omitempty"`
	Pattern string            `json:"pattern,omitempty"`
	Params  map[string]string `json:"params"`
	Path    string            `json:"path"`
	Status  string            `json:"status"`
}

// routes lists the endpoints a Camp serves beside its pages.
func (c *Camp) routes() []router.Route {
	return []router.Route{
		{Path: "/api/resolve", Method: http.MethodGet, Handler: c.resolve},
		{Path: "/api/resolve", Method: http.MethodPost, Handler: c.resolveMany},
		{Path: "/api/routes", Method: http.MethodGet, Handler: c.listRoutes},
		{Path: "/healthz", Method: http.MethodGet, Handler: c.healthz},
		{Path: "/metrics", Method: http.MethodGet, Handler: metrics.Handler().ServeHTTP},
		{Path: "/theme", Method: http.MethodPost, Handler: c.toggleTheme},
	}
}

func (c *Camp) healthz(w http.ResponseWriter, r *http.Request) {
	c.Json(w, r, resp.Data(map[string]string{"status": "ok"}))
}

// listRoutes responds with the registry's routes in declared order.
func (c *Camp) listRoutes(w http.ResponseWriter, r *http.Request) {
	defs := c.reg.Definitions()
	views := make([]RouteView, 0, len(defs))
	for _, def := range defs {
		v := RouteView{ID: def.ID, Path: def.Path, Fallback: def.Fallback}
		if p, ok := def.Component.(*page.Page); ok {
			v.Title = p.Title()
		}

		views = append(views, v)
	}

	c.Json(w, r, resp.Data(views))
}

// A resolveQuery names the path GET /api/resolve resolves.
type resolveQuery struct {
	Path string `schema:"path" validate:"required,max=2048"`
}

// A resolveBatch names the paths POST /api/resolve resolves.
type resolveBatch struct {
	Paths []string `json:"paths" validate:"required,min=1,max=50,dive,required,max=2048"`
}

// resolve responds with how the registry resolves the "path" query param.
func (c *Camp) resolve(w http.ResponseWriter, r *http.Request) {
	var q resolveQuery
	if err := c.parser.ParseQueryParams(r.URL.Query(), &q); err != nil {
		c.badRequest(w, r, err)
		return
	}

	c.Json(w, r, resp.Data(c.resolution(q.Path)))
}

// resolveMany responds with how the registry resolves each path in the JSON body, in order.
func (c *Camp) resolveMany(w http.ResponseWriter, r *http.Request) {
	var b resolveBatch
	if err := c.parser.ParseBody(r.Body, &b); err != nil {
		c.badRequest(w, r, err)
		return
	}

	views := make([]ResolutionView, 0, len(b.Paths))
	for _, p := range b.Paths {
		views = append(views, c.resolution(p))
	}

	c.Json(w, r, resp.Data(views))
}

func (c *Camp) resolution(target string) ResolutionView {
	res := c.reg.Resolve(target)
	v := ResolutionView{
		Params: res.Params.Map(),
		Path:   res.Request.Path,
		Status: res.Status.String(),
	}

	if res.Status != route.StatusNotFound {
		v.ID = res.Definition.ID
		v.Pattern = res.Definition.Path
	}

	return v
}

// badRequest responds with the validation errors in err,
// or a generic message when the request was not understood at all.
func (c *Camp) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var verrs req.ValidationErrors
	if errors.As(err, &verrs) {
		c.Json(w, r, resp.Code(http.StatusBadRequest), resp.Data(verrs))
		return
	}

	if errors.Is(err, basecamp.ErrBadFormat) {
		c.Json(w, r, resp.Code(http.StatusBadRequest), resp.Data(map[string]string{"error": "malformed request"}))
		return
	}

	c.Err(w, r, err)
}

// toggleTheme flips the theme stored in the visitor's session,
// then redirects back to where the visitor came from.
func (c *Camp) toggleTheme(w http.ResponseWriter, r *http.Request) {
	s, err := c.sessions.GetSession(r)
	if err != nil {
		// NOTE: a session that fails to decode is replaced by a fresh one
		c.l.Warn("starting new session: "+err.Error(), &logger.LogContext{Caller: "camp.toggleTheme", Error: err})
	}

	if err := s.SetTheme(w, r, s.Theme().Toggle()); err != nil {
		c.Err(w, r, err)
		return
	}

	c.Redirect(w, r, resp.Back(), resp.Code(http.StatusSeeOther))
}

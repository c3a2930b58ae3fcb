package page

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/content"
	"github.com/xy-planning-network/basecamp/http/resp"
	"github.com/xy-planning-network/basecamp/route"
)

// NotFoundTemplate renders when nothing resolves and no fallback page is registered.
const NotFoundTemplate = "tmpl/not_found.tmpl"

// A Site builds Pages sharing one Responder and content Store.
type Site struct {
	description string
	title       string
	tools       basecamp.Toolbox

	content   *content.Store
	reg       atomic.Pointer[route.Registry]
	responder *resp.Responder
}

// A SiteOptFn configures a Site when constructing a new one.
type SiteOptFn func(*Site)

// WithDescription sets the description every page shows.
func WithDescription(desc string) SiteOptFn {
	return func(s *Site) { s.description = desc }
}

// WithToolbox sets the developer tools every page lists.
func WithToolbox(tb basecamp.Toolbox) SiteOptFn {
	return func(s *Site) { s.tools = tb }
}

// WithTitle sets the application title every page shows.
func WithTitle(title string) SiteOptFn {
	return func(s *Site) { s.title = title }
}

// NewSite constructs a Site rendering through rp and reading documents from store.
func NewSite(rp *resp.Responder, store *content.Store, opts ...SiteOptFn) *Site {
	s := &Site{content: store, responder: rp, title: "basecamp"}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Docs constructs a Page listing documents or,
// when the route binds a "slug" param, rendering that document.
func (s *Site) Docs(title string) *Page {
	return &Page{kind: KindDocs, nav: true, site: s, title: title, tmpl: DocsTemplate}
}

// Hidden constructs a KindTemplate Page left out of navigation.
func (s *Site) Hidden(title, tmpl string) *Page {
	p := s.Template(title, tmpl)
	p.nav = false
	return p
}

// Markdown constructs a Page rendering the document named slug.
func (s *Site) Markdown(title, slug string) *Page {
	return &Page{kind: KindMarkdown, nav: true, site: s, slug: slug, title: title, tmpl: MarkdownTemplate}
}

// Template constructs a Page rendering tmpl.
func (s *Site) Template(title, tmpl string) *Page {
	return &Page{kind: KindTemplate, nav: true, site: s, title: title, tmpl: tmpl}
}

// Mount hands the Site the Registry built from its pages,
// so pages can build navigation and reach the fallback.
func (s *Site) Mount(reg *route.Registry) { s.reg.Store(reg) }

// Miss serves the fallback of the mounted Registry, or NotFound without one.
func (s *Site) Miss(w http.ResponseWriter, r *http.Request) {
	reg := s.reg.Load()
	fb, ok := reg.Fallback()
	if !ok || fb.Component == nil {
		s.NotFound(w, r)
		return
	}

	res := route.Result{Definition: fb, Request: route.Request{Path: r.URL.EscapedPath()}, Status: route.StatusFallback}
	fb.Component.ServeHTTP(w, r.WithContext(route.NewContext(r.Context(), res)))
}

// NotFound renders NotFoundTemplate with a 404.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.responder.Html(
		w,
		r,
		resp.Code(http.StatusNotFound),
		resp.Tmpls(NotFoundTemplate),
		resp.Data(Data{AppTitle: s.title, Path: r.URL.Path, Status: route.StatusNotFound.String(), Title: "Not found"}),
	)
}

// Nav lists the pages of the mounted Registry in declared order,
// marking the one current resolved to.
// Fallbacks, parameterized routes and hidden pages are left out.
func (s *Site) Nav(current route.Result) []NavItem {
	defs := s.reg.Load().Definitions()
	items := make([]NavItem, 0, len(defs))
	for _, def := range defs {
		p, ok := def.Component.(*Page)
		if !ok || !p.nav || def.Fallback || def.Path == "" || strings.Contains(def.Path, "{") {
			continue
		}

		items = append(items, NavItem{
			Active: current.Status == route.StatusMatched && current.Definition.ID == def.ID,
			Path:   def.Path,
			Title:  p.title,
		})
	}

	return items
}

func (s *Site) data(p *Page, r *http.Request, res route.Result) Data {
	return Data{
		AppDescription: s.description,
		AppTitle:       s.title,
		Nav:            s.Nav(res),
		Params:         res.Params.Map(),
		Path:           r.URL.Path,
		Status:         res.Status.String(),
		Title:          p.title,
		Tools:          s.tools,
	}
}

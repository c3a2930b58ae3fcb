package page

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/basecamp/content"
	"github.com/xy-planning-network/basecamp/http/resp"
	"github.com/xy-planning-network/basecamp/route"
)

// Templates pages render inside the layout.
const (
	DocsTemplate     = "tmpl/pages/docs.tmpl"
	LayoutTemplate   = "tmpl/layout.tmpl"
	MarkdownTemplate = "tmpl/pages/markdown.tmpl"
)

// A Kind is how a Page gets its content.
type Kind int

const (
	// KindTemplate pages render their own template.
	KindTemplate Kind = iota

	// KindMarkdown pages render one content document.
	KindMarkdown

	// KindDocs pages list content documents or, given a slug param, render one.
	KindDocs
)

// A Page renders one template inside the site layout.
//
// Page implements http.Handler.
type Page struct {
	kind  Kind
	nav   bool
	site  *Site
	slug  string
	title string
	tmpl  string
}

// Title is the title the page and its navigation link show.
func (p *Page) Title() string { return p.title }

// Kind reports how p gets its content.
func (p *Page) Kind() Kind { return p.kind }

// Template is the template p renders.
func (p *Page) Template() string { return p.tmpl }

// ServeHTTP renders p, reading the route.Result the dispatcher stashed in the request context.
// A fallback resolution renders with 404.
func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, _ := route.FromContext(r.Context())
	d := p.site.data(p, r, res)

	opts := []resp.Fn{resp.Layout(), resp.Tmpls(p.tmpl)}
	if res.Status == route.StatusFallback {
		opts = append(opts, resp.Code(http.StatusNotFound))
	}

	switch p.kind {
	case KindMarkdown:
		doc, err := p.site.content.Get(p.slug)
		if err != nil {
			p.site.responder.HtmlErr(w, r, err)
			return
		}

		d.Doc = &doc

	case KindDocs:
		slug, ok := res.Params.Lookup("slug")
		if !ok {
			docs, err := p.site.content.List()
			if err != nil {
				p.site.responder.HtmlErr(w, r, err)
				return
			}

			d.Docs = docs
			break
		}

		doc, err := p.site.content.Get(slug)
		if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrBadSlug) {
			p.site.Miss(w, r)
			return
		}

		if err != nil {
			p.site.responder.HtmlErr(w, r, err)
			return
		}

		d.Doc = &doc
		d.Title = doc.Title()
		opts[1] = resp.Tmpls(MarkdownTemplate)
	}

	p.site.responder.Html(w, r, append(opts, resp.Data(d))...)
}

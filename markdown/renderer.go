package markdown

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// A Renderer renders Markdown into themed HTML.
type Renderer struct {
	md     goldmark.Markdown
	pool   *sync.Pool
	styles Styles

	exts       []goldmark.Extender
	headingIDs bool
	wrapper    string
}

// New constructs a Renderer wrapping each Element in styles with its Style.
// New copies styles; changing the map afterwards does not affect the Renderer.
func New(styles Styles, opts ...RendererOptFn) *Renderer {
	r := &Renderer{
		pool:   &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		styles: styles.clone(),
		exts:   []goldmark.Extender{extension.GFM},
	}

	for _, opt := range opts {
		opt(r)
	}

	var parserOpts []parser.Option
	if r.headingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(r.exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(newStyledRenderer(r.styles), nodePriority)),
		),
	)

	return r
}

// Styles returns a copy of the Styles the Renderer applies.
func (r *Renderer) Styles() Styles { return r.styles.clone() }

// Render converts text into HTML.
// The same text always renders to the same HTML.
func (r *Renderer) Render(text string) (template.HTML, error) {
	b := r.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer r.pool.Put(b)

	if r.wrapper != "" {
		fmt.Fprintf(b, "<div class=\"%s\">\n", html.EscapeString(r.wrapper))
	}

	if err := r.md.Convert([]byte(text), b); err != nil {
		return "", fmt.Errorf("%w: %s", ErrRender, err)
	}

	if r.wrapper != "" {
		b.WriteString("</div>\n")
	}

	return template.HTML(b.String()), nil
}

// A Node is one entry in the outline Tree returns.
type Node struct {
	// Kind is the goldmark node kind, e.g. "Heading" or "Table".
	Kind string `json:"kind"`

	// Depth is the distance from the document root.
	Depth int `json:"depth"`

	// Level is the heading level; zero for other kinds.
	Level int `json:"level,omitempty"`
}

// Tree parses text and outlines its block structure in document order.
// Inline nodes are left out.
func (r *Renderer) Tree(src string) []Node {
	doc := r.md.Parser().Parse(text.NewReader([]byte(src)))

	var (
		nodes []Node
		depth int
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Type() != ast.TypeBlock || n.Kind() == ast.KindDocument {
			return ast.WalkContinue, nil
		}

		if !entering {
			depth--
			return ast.WalkContinue, nil
		}

		depth++
		node := Node{Kind: n.Kind().String(), Depth: depth}
		if h, ok := n.(*ast.Heading); ok {
			node.Level = h.Level
		}

		nodes = append(nodes, node)
		return ast.WalkContinue, nil
	})

	return nodes
}

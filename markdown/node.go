package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// nodePriority places styledRenderer ahead of goldmark's HTML renderer, which sits at 1000.
const nodePriority = 100

// A styledRenderer is a renderer.NodeRenderer that claims only the node kinds
// whose Element has a Style.
type styledRenderer struct {
	styles Styles
	writer html.Writer
}

func newStyledRenderer(styles Styles) *styledRenderer {
	return &styledRenderer{styles: styles, writer: html.DefaultWriter}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *styledRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	if r.styles.hasAny(H1, H2, H3, H4, H5, H6) {
		reg.Register(ast.KindHeading, r.renderHeading)
	}

	if r.styles.hasAny(Paragraph) {
		reg.Register(ast.KindParagraph, r.renderParagraph)
	}

	if r.styles.hasAny(UnorderedList, OrderedList) {
		reg.Register(ast.KindList, r.renderList)
	}

	if r.styles.hasAny(ListItem) {
		reg.Register(ast.KindListItem, r.renderListItem)
	}

	if r.styles.hasAny(Link) {
		reg.Register(ast.KindLink, r.renderLink)
		reg.Register(ast.KindAutoLink, r.renderAutoLink)
	}

	if r.styles.hasAny(Code) {
		reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	}

	if r.styles.hasAny(Pre) {
		reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
		reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	}

	if r.styles.hasAny(Blockquote) {
		reg.Register(ast.KindBlockquote, r.renderBlockquote)
	}
}

// open writes the start tag of el, leaving it unclosed.
func (r *styledRenderer) open(w util.BufWriter, el Element) {
	_ = w.WriteByte('<')
	_, _ = w.WriteString(string(el))
	if st, ok := r.styles[el]; ok {
		st.write(w)
	}
}

func (r *styledRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	el := headings[n.Level]
	if entering {
		r.open(w, el)
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.HeadingAttributeFilter)
		}

		_ = w.WriteByte('>')
		return ast.WalkContinue, nil
	}

	_, _ = fmt.Fprintf(w, "</%s>\n", el)
	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderParagraph(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.open(w, Paragraph)
		_ = w.WriteByte('>')
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("</p>\n")
	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	el := UnorderedList
	if n.IsOrdered() {
		el = OrderedList
	}

	if entering {
		r.open(w, el)
		if n.IsOrdered() && n.Start != 1 {
			_, _ = fmt.Fprintf(w, ` start="%d"`, n.Start)
		}

		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = fmt.Fprintf(w, "</%s>\n", el)
	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderListItem(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.open(w, ListItem)
		_ = w.WriteByte('>')
		if fc := n.FirstChild(); fc != nil {
			if _, ok := fc.(*ast.TextBlock); !ok {
				_ = w.WriteByte('\n')
			}
		}

		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("</li>\n")
	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<a href="`)
	if !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}

	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}

	r.styles[Link].write(w)
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.AutoLink)
	if !entering {
		return ast.WalkContinue, nil
	}

	url := n.URL(source)
	_, _ = w.WriteString(`<a href="`)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		_, _ = w.WriteString("mailto:")
	}

	_, _ = w.Write(util.EscapeHTML(util.URLEscape(url, false)))
	_ = w.WriteByte('"')
	r.styles[Link].write(w)
	_ = w.WriteByte('>')
	_, _ = w.Write(util.EscapeHTML(n.Label(source)))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderCodeSpan(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")
		return ast.WalkContinue, nil
	}

	r.open(w, Code)
	_ = w.WriteByte('>')
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}

		val := t.Segment.Value(source)
		if bytes.HasSuffix(val, []byte("\n")) {
			r.writer.RawWrite(w, val[:len(val)-1])
			r.writer.RawWrite(w, []byte(" "))
			continue
		}

		r.writer.RawWrite(w, val)
	}

	return ast.WalkSkipChildren, nil
}

// renderCodeBlock wraps indented and fenced code blocks in the Pre style.
// The inner code element carries only the fence's language class.
func (r *styledRenderer) renderCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}

	r.open(w, Pre)
	_, _ = w.WriteString("><code")
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		if lang := fenced.Language(source); lang != nil {
			_, _ = w.WriteString(` class="language-`)
			r.writer.Write(w, lang)
			_ = w.WriteByte('"')
		}
	}

	_ = w.WriteByte('>')
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		r.writer.RawWrite(w, line.Value(source))
	}

	return ast.WalkContinue, nil
}

func (r *styledRenderer) renderBlockquote(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.open(w, Blockquote)
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("</blockquote>\n")
	return ast.WalkContinue, nil
}

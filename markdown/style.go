package markdown

import (
	"fmt"
	"html"
	"regexp"
	"sort"

	"github.com/yuin/goldmark/util"
)

// An Element names an output element a Style applies to.
type Element string

const (
	H1            Element = "h1"
	H2            Element = "h2"
	H3            Element = "h3"
	H4            Element = "h4"
	H5            Element = "h5"
	H6            Element = "h6"
	Paragraph     Element = "p"
	UnorderedList Element = "ul"
	OrderedList   Element = "ol"
	ListItem      Element = "li"
	Link          Element = "a"
	Code          Element = "code"
	Pre           Element = "pre"
	Blockquote    Element = "blockquote"
)

// Elements lists every Element a Style can be configured for.
var Elements = []Element{
	H1, H2, H3, H4, H5, H6,
	Paragraph,
	UnorderedList,
	OrderedList,
	ListItem,
	Link,
	Code,
	Pre,
	Blockquote,
}

// headings indexes heading Elements by level.
var headings = [...]Element{1: H1, 2: H2, 3: H3, 4: H4, 5: H5, 6: H6}

// A Style is the markup wrapped around an Element.
type Style struct {
	Class string            `json:"class,omitempty" yaml:"class,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

var attrNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// reservedAttrs are written by the renderer itself, so Attrs cannot set them.
var reservedAttrs = map[string]bool{
	"class": true,
	"href":  true,
	"id":    true,
	"start": true,
	"title": true,
}

// Validate reports the first name in Attrs the renderer would skip.
func (s Style) Validate() error {
	for _, name := range s.sortedAttrs(false) {
		if reservedAttrs[name] {
			return fmt.Errorf("%w: %q is set by the renderer", ErrBadAttr, name)
		}

		if !attrNameRegexp.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrBadAttr, name)
		}
	}

	return nil
}

// sortedAttrs lists the names in Attrs, sorted,
// leaving out reserved and malformed names when valid is set.
func (s Style) sortedAttrs(valid bool) []string {
	names := make([]string, 0, len(s.Attrs))
	for name := range s.Attrs {
		if valid && (reservedAttrs[name] || !attrNameRegexp.MatchString(name)) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// write renders the Style as HTML attributes, with Attrs sorted by name.
// Reserved and malformed names in Attrs are skipped.
func (s Style) write(w util.BufWriter) {
	if s.Class != "" {
		writeAttr(w, "class", s.Class)
	}

	names := s.sortedAttrs(true)
	for _, name := range names {
		writeAttr(w, name, s.Attrs[name])
	}
}

func writeAttr(w util.BufWriter, name, val string) {
	_ = w.WriteByte(' ')
	_, _ = w.WriteString(name)
	_, _ = w.WriteString(`="`)
	_, _ = w.WriteString(html.EscapeString(val))
	_ = w.WriteByte('"')
}

// Styles maps Elements to the Style each is wrapped in.
// Elements without an entry render as goldmark does by default.
type Styles map[Element]Style

// DefaultWrapperClass is the class of the element DefaultStyles output is meant to sit in.
const DefaultWrapperClass = "prose dark:prose-invert max-w-none"

// DefaultStyles returns the basecamp theme.
func DefaultStyles() Styles {
	return Styles{
		H1:            {Class: "text-heading1 mb-4"},
		H2:            {Class: "text-heading2 mb-3 mt-6"},
		H3:            {Class: "text-heading3 mb-2 mt-4"},
		Paragraph:     {Class: "mb-4 text-muted-foreground"},
		UnorderedList: {Class: "list-disc ml-6 mb-4"},
		OrderedList:   {Class: "list-decimal ml-6 mb-4"},
		ListItem:      {Class: "mb-1"},
		Link: {
			Class: "text-primary hover:underline",
			Attrs: map[string]string{"target": "_blank", "rel": "noopener noreferrer"},
		},
		Code:       {Class: "bg-muted px-1.5 py-0.5 rounded-md text-sm font-mono"},
		Pre:        {Class: "bg-muted p-4 rounded-lg overflow-x-auto mb-4 text-black dark:text-white"},
		Blockquote: {Class: "border-l-4 border-primary pl-4 italic mb-4"},
	}
}

// Validate reports the first Style, by Element order, with a name in Attrs the renderer would skip.
func (s Styles) Validate() error {
	for _, el := range Elements {
		st, ok := s[el]
		if !ok {
			continue
		}

		if err := st.Validate(); err != nil {
			return fmt.Errorf("%s: %w", el, err)
		}
	}

	return nil
}

// Lookup retrieves the Style for el.
func (s Styles) Lookup(el Element) (Style, bool) {
	st, ok := s[el]
	return st, ok
}

// clone deep copies Styles so a Renderer is unaffected by later changes to the map it was given.
func (s Styles) clone() Styles {
	c := make(Styles, len(s))
	for el, st := range s {
		cp := Style{Class: st.Class}
		if st.Attrs != nil {
			cp.Attrs = make(map[string]string, len(st.Attrs))
			for k, v := range st.Attrs {
				cp.Attrs[k] = v
			}
		}

		c[el] = cp
	}

	return c
}

func (s Styles) hasAny(els ...Element) bool {
	for _, el := range els {
		if _, ok := s[el]; ok {
			return true
		}
	}

	return false
}

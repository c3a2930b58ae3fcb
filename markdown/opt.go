package markdown

import "github.com/yuin/goldmark"

// A RendererOptFn configures a Renderer.
type RendererOptFn func(*Renderer)

// WithExtensions adds goldmark extensions beyond GitHub Flavored Markdown.
func WithExtensions(exts ...goldmark.Extender) RendererOptFn {
	return func(r *Renderer) {
		r.exts = append(r.exts, exts...)
	}
}

// WithHeadingIDs generates an id attribute for each heading.
func WithHeadingIDs() RendererOptFn {
	return func(r *Renderer) {
		r.headingIDs = true
	}
}

// WithWrapper wraps rendered output in a div with the class.
func WithWrapper(class string) RendererOptFn {
	return func(r *Renderer) {
		r.wrapper = class
	}
}

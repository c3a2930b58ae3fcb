package resp

import (
	"net/url"
	"slices"

	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/template"
	"github.com/xy-planning-network/basecamp/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithContactErrMsg sets the message the error template shows.
func WithContactErrMsg(msg string) ResponderOptFn {
	return func(d *Responder) {
		d.contactErrMsg = msg
	}
}

// WithCtxKeys sets the keys whose values Html pulls out of the *http.Request.Context
// and exposes to templates under .Ctx.
//
// Keys are sorted and deduplicated; zero-value keys are dropped.
func WithCtxKeys(keys ...basecamp.Key) ResponderOptFn {
	filtered := make([]basecamp.Key, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			filtered = append(filtered, k)
		}
	}

	slices.Sort(filtered)
	filtered = slices.Compact(filtered)
	if len(filtered) == 0 {
		filtered = nil
	}

	return func(d *Responder) {
		d.ctxKeys = filtered
		if filtered == nil {
			d.injector = NoopInjector{}
			return
		}

		d.injector = DefaultInjector{Keys: filtered}
	}
}

// WithErrTemplate sets the template identified by the filepath to use for rendering
// when an unexpected, unhandled error occurs while rendering HTML.
//
// If not set, the template package's own tmpl/error.tmpl is used.
func WithErrTemplate(fp string) ResponderOptFn {
	return func(d *Responder) {
		d.templates.err = fp
	}
}

// WithLayout sets the template identified by the filepath that Layout prepends
// to the templates rendered.
func WithLayout(fp string) ResponderOptFn {
	return func(d *Responder) {
		d.templates.layout = fp
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, logger.New configures one.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithParser sets the *template.Parser to use for parsing HTML templates.
func WithParser(p *template.Parser) ResponderOptFn {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithRootUrl sets the provided URL after parsing it into a *url.URL to use for rendering and redirecting
//
// NOTE: If u fails parsing by url.ParseRequestURI, the root URL becomes http://localhost
func WithRootUrl(u string) ResponderOptFn {
	good, err := url.ParseRequestURI(u)
	if err != nil {
		good, _ = url.ParseRequestURI("http://localhost")
	}

	return func(d *Responder) {
		d.rootUrl = good
	}
}

package resp

import (
	"fmt"
	"net/http"
	"net/url"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w     http.ResponseWriter
	r     *http.Request
	code  int
	data  any
	tmpls []string
	url   *url.URL
}

// Back sets the redirect destination to the path of the referring page,
// resolved against the Responder's root URL.
// Without a usable Referer header, Back behaves as ToRoot.
//
// Used with Responder.Redirect.
func Back() Fn {
	return func(d Responder, r *Response) error {
		if err := ToRoot()(d, r); err != nil {
			return err
		}

		ref, err := url.Parse(r.r.Referer())
		if err != nil || ref.Path == "" || r.url == nil {
			return nil
		}

		r.url.Path = ref.Path
		r.url.RawQuery = ref.RawQuery
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Html and Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Layout prepends the layout template set by WithLayout to all templates.
// Calling Layout more than once has no further effect.
//
// If WithLayout was not called setting up the Responder, ErrBadConfig returns.
//
// Used with Responder.Html.
func Layout() Fn {
	return func(d Responder, r *Response) error {
		if d.templates.layout == "" {
			return fmt.Errorf("%w: no layout tmpl", ErrBadConfig)
		}

		if len(r.tmpls) > 0 && r.tmpls[0] == d.templates.layout {
			return nil
		}

		r.tmpls = append([]string{d.templates.layout}, r.tmpls...)
		return nil
	}
}

// Param adds the query parameter to the response's URL.
//
// Used with Responder.Redirect.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: Url() has not been called", ErrMissingData)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// Tmpls appends to the templates to be rendered.
//
// Used with Responder.Html.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// ToRoot sets a copy of the Responder's root URL as the response's URL.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		if d.rootUrl == nil {
			r.url = nil
			return nil
		}

		u := *d.rootUrl
		r.url = &u
		return nil
	}
}

// Url parses raw the URL string and sets it in the *Response if successful.
//
// Used with Responder.Redirect.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: u is not a valid URL: %v", ErrInvalid, err)
		}

		r.url = parsed
		return nil
	}
}

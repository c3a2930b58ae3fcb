/*
Package resp provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three main ways of responding to an HTTP request:
  - rendering HTML templates, optionally inside a layout
  - rendering JSON data
  - redirecting

Handlers build each response from Fn options:

	err := responder.Html(w, r, resp.Layout(), resp.Tmpls("tmpl/pages/about.tmpl"), resp.Data(d))
*/
package resp

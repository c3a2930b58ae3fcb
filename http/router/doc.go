/*
Package router defines how basecamp routes HTTP requests, thinly wrapping [mux.Router].

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

Pages differ: rather than one Route per page, [Router.Pages] registers a single catch-all
that resolves the request path against a [route.Registry] and mounts the page component
the registry resolves to. Register it last.
*/
package router

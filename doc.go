/*
Package basecamp holds what every package in a basecamp app shares:
the [Environment] the app runs in, helpers for reading configuration
from environment variables, context keys, sentinel errors and the [Toolbox] of developer links
shown outside of Production.

A basecamp app is a server-rendered web application.
Its pages are declared once in a route table (package web),
resolved per request by package route,
and rendered through html/template by package http/resp.
Package camp composes all of it into a running web server.
*/
package basecamp

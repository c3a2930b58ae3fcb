/*
Package scaffold adds pages to a basecamp site.

A page is a template stub under web/tmpl/pages plus an entry in the route manifest, web/routes.yaml.
The Go route table, web/routes_gen.go, is generated from the manifest,
so adding a page never rewrites the entries already declared.

	s := scaffold.New(".", scaffold.WithLogger(l))
	res, err := s.Page(scaffold.Request{Name: "Pricing Plans", Path: "/pricing"})
*/
package scaffold

package page

import (
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/content"
)

// Data is what every page template receives under .Data.
type Data struct {
	AppDescription string
	AppTitle       string

	// Set by Docs pages: the list of documents, or the one requested.
	Doc  *content.Doc
	Docs []content.Doc

	Nav    []NavItem
	Params map[string]string
	Path   string
	Status string
	Title  string

	// Empty in Production.
	Tools basecamp.Toolbox
}

// A NavItem is one link in the site navigation.
type NavItem struct {
	Active bool
	Path   string
	Title  string
}

// Command scaffold adds a page to the basecamp site.
//
//	scaffold --name "Pricing Plans" [--path /pricing] [--title "Plans"]
//
// It writes web/tmpl/pages/<slug>.tmpl, appends the route to web/routes.yaml
// and regenerates web/routes_gen.go. Run it from the module root.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/route"
	"github.com/xy-planning-network/basecamp/scaffold"
)

var cli struct {
	Name  string `short:"n" required:"" help:"Name of the page; its slug names the template and the route id."`
	Path  string `short:"p" help:"Path pattern of the route. Defaults to / followed by the slug."`
	Title string `short:"t" help:"Title shown in navigation. Defaults to the name in title case."`
	Root  string `default:"." type:"existingdir" help:"Module directory holding web/."`
	Mode  string `default:"prefer_static" enum:"prefer_static,strict" env:"ROUTE_CONFLICT_MODE" help:"How overlapping routes conflict."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("scaffold"),
		kong.Description("Add a page and its route to the basecamp site."),
		kong.UsageOnError(),
	)

	l := logger.New()
	s := scaffold.New(cli.Root,
		scaffold.WithConflictMode(route.NewConflictMode(cli.Mode)),
		scaffold.WithLogger(l),
	)

	res, err := s.Page(scaffold.Request{Name: cli.Name, Path: cli.Path, Title: cli.Title})
	if err != nil {
		l.Fatal("could not add page: "+err.Error(), &logger.LogContext{Error: err})
		os.Exit(1)
	}

	l.Info("added page "+res.Entry.ID+" at "+res.Entry.Path, nil)
}

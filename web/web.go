package web

import (
	"embed"
	"io/fs"
)

// Paths of the web directory relative to the module root,
// read from disk when developing and written by cmd/scaffold.
const (
	Dir           = "web"
	ContentDir    = "web/content"
	GeneratedFile = "web/routes_gen.go"
	ManifestFile  = "web/routes.yaml"
	PagesDir      = "web/tmpl/pages"
	PublicDir     = "web/public"
)

//go:embed content public tmpl routes.yaml
var files embed.FS

// Content returns the Markdown documents pages render.
func Content() fs.FS { return sub("content") }

// Manifest returns the route manifest Definitions is generated from.
func Manifest() []byte {
	b, err := files.ReadFile("routes.yaml")
	if err != nil {
		panic(err)
	}

	return b
}

// Public returns the static assets served under the router's assets path.
func Public() fs.FS { return sub("public") }

// Templates returns the HTML templates, rooted so paths start with "tmpl/".
func Templates() fs.FS { return files }

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}

	return fsys
}

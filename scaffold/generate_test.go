package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp/scaffold"
	"github.com/xy-planning-network/basecamp/web"
)

func TestGenerate(t *testing.T) {
	// Arrange
	m, err := scaffold.ParseManifest([]byte(manifestYAML + "  - id: missing\n    title: Missing\n    kind: template\n    template: tmpl/pages/missing.tmpl\n    fallback: true\n    hidden: true\n"))
	require.NoError(t, err)

	// Act
	src, err := scaffold.Generate(m, "site")

	// Assert
	require.NoError(t, err)
	require.Contains(t, string(src), "// Code generated by scaffold from routes.yaml. DO NOT EDIT.\n\npackage site\n")
	require.Contains(t, string(src), `{ID: "home", Path: "/", Component: site.Markdown("Home", "readme")},`)
	require.Contains(t, string(src), `{ID: "items", Path: "/items/{id}", Component: site.Template("Item", "tmpl/pages/item.tmpl")},`)
	require.Contains(t, string(src), `{ID: "missing", Component: site.Hidden("Missing", "tmpl/pages/missing.tmpl"), Fallback: true},`)
}

func TestGenerateQuotes(t *testing.T) {
	// Arrange
	m := &scaffold.Manifest{Routes: []scaffold.Entry{
		{ID: "quote", Path: "/quote", Title: `Say "hi"`, Kind: scaffold.KindDocs},
	}}

	// Act
	src, err := scaffold.Generate(m, "web")

	// Assert
	require.NoError(t, err)
	require.Contains(t, string(src), `site.Docs("Say \"hi\"")`)
}

func TestGeneratedRoutesUpToDate(t *testing.T) {
	// Arrange
	m, err := scaffold.ParseManifest(web.Manifest())
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", filepath.FromSlash(web.GeneratedFile)))
	require.NoError(t, err)

	// Act
	src, err := scaffold.Generate(m, "web")

	// Assert
	require.NoError(t, err)
	require.Equal(t, string(want), string(src))
}

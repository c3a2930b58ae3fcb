package route_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/route"
)

func component(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(name))
	})
}

func TestNew(t *testing.T) {
	// Arrange
	defs := []route.Definition{
		{ID: "home", Path: "/", Component: component("home")},
		{Path: "/about", Component: component("about")},
		{ID: "item", Path: "/items/{id}", Component: component("item")},
		{Fallback: true, Component: component("not found")},
	}

	// Act
	reg, err := route.New(defs)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 4, reg.Len())

	actual := reg.Definitions()
	require.Len(t, actual, 4)
	require.Equal(t, "home", actual[0].ID)
	require.Equal(t, "/about", actual[1].ID)
	require.Equal(t, "item", actual[2].ID)
	require.Equal(t, route.FallbackID, actual[3].ID)

	def, ok := reg.ByID("item")
	require.True(t, ok)
	require.Equal(t, "/items/{id}", def.Path)

	def, ok = reg.ByPattern("/items/{id}/")
	require.True(t, ok)
	require.Equal(t, "item", def.ID)

	_, ok = reg.ByPattern("/items/42")
	require.False(t, ok)

	def, ok = reg.Fallback()
	require.True(t, ok)
	require.True(t, def.Fallback)

	require.Equal(t, route.ConflictPreferStatic, reg.ConflictMode())
}

func TestNewDefinitionsIsACopy(t *testing.T) {
	// Arrange
	reg, err := route.New([]route.Definition{{Path: "/", Component: component("home")}})
	require.NoError(t, err)

	// Act
	defs := reg.Definitions()
	defs[0].Path = "/changed"

	// Assert
	def, ok := reg.ByID("/")
	require.True(t, ok)
	require.Equal(t, "/", def.Path)
}

func TestNewErrors(t *testing.T) {
	tcs := []struct {
		name string
		defs []route.Definition
		opts []route.Option
		err  error
	}{
		{
			"Duplicate-Path",
			[]route.Definition{
				{Path: "/about", Component: component("a")},
				{ID: "about-again", Path: "/about/", Component: component("b")},
			},
			nil,
			route.ErrPathConflict,
		},
		{
			"Duplicate-ID",
			[]route.Definition{
				{ID: "about", Path: "/about", Component: component("a")},
				{ID: "about", Path: "/team", Component: component("b")},
			},
			nil,
			route.ErrDuplicateID,
		},
		{
			"Same-Shape-Params",
			[]route.Definition{
				{Path: "/items/{id}", Component: component("a")},
				{Path: "/items/{slug}", Component: component("b")},
			},
			nil,
			route.ErrPathConflict,
		},
		{
			"Strict-Static-And-Param",
			[]route.Definition{
				{Path: "/items/{id}", Component: component("a")},
				{Path: "/items/new", Component: component("b")},
			},
			[]route.Option{route.WithConflictMode(route.ConflictStrict)},
			route.ErrPathConflict,
		},
		{
			"Two-Fallbacks",
			[]route.Definition{
				{ID: "a", Fallback: true, Component: component("a")},
				{ID: "b", Fallback: true, Component: component("b")},
			},
			nil,
			route.ErrDuplicateFallback,
		},
		{
			"Malformed",
			[]route.Definition{{Path: "about", Component: component("a")}},
			nil,
			route.ErrMalformedPattern,
		},
		{
			"No-Path",
			[]route.Definition{{ID: "orphan", Component: component("a")}},
			nil,
			route.ErrMalformedPattern,
		},
		{
			"No-Component",
			[]route.Definition{{Path: "/about"}},
			nil,
			route.ErrNoComponent,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			reg, err := route.New(tc.defs, tc.opts...)

			// Assert
			require.Nil(t, reg)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, basecamp.ErrBadConfig)
		})
	}
}

func TestNewReportsEveryError(t *testing.T) {
	// Arrange
	defs := []route.Definition{
		{Path: "/about", Component: component("a")},
		{Path: "/about", Component: component("b")},
		{Path: "/items/{}", Component: component("c")},
		{Path: "/contact"},
	}

	// Act
	_, err := route.New(defs)

	// Assert
	require.ErrorIs(t, err, route.ErrDuplicateID)
	require.ErrorIs(t, err, route.ErrMalformedPattern)
	require.ErrorIs(t, err, route.ErrNoComponent)
}

func TestValidate(t *testing.T) {
	// Arrange
	defs := []route.Definition{
		{Path: "/"},
		{Path: "/docs/{slug}"},
		{Fallback: true},
	}

	// Act + Assert
	require.NoError(t, route.Validate(defs))

	// Arrange
	defs = append(defs, route.Definition{ID: "docs", Path: "/docs/{name}"})

	// Act + Assert
	require.ErrorIs(t, route.Validate(defs), route.ErrPathConflict)
}

func TestNilRegistry(t *testing.T) {
	// Arrange
	var reg *route.Registry

	// Act
	res := reg.Resolve("/")

	// Assert
	require.Zero(t, reg.Len())
	require.Nil(t, reg.Definitions())
	require.Equal(t, route.StatusNotFound, res.Status)
	require.ErrorIs(t, res.Err(), route.ErrNotFound)

	_, ok := reg.Fallback()
	require.False(t, ok)
}

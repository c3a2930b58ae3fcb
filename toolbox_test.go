package basecamp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
)

func TestNewToolbox(t *testing.T) {
	routes := basecamp.Tool{
		Title: "Routes",
		Actions: []basecamp.ToolAction{
			{Name: "Route table", URL: "/api/routes"},
			{Name: "Resolve /docs", URL: "/api/resolve?path=/docs"},
		},
	}
	health := basecamp.Tool{
		Title:   "Health",
		Actions: []basecamp.ToolAction{{Name: "Status", URL: "/healthz"}, {Name: "Metrics"}},
	}
	unlinked := basecamp.Tool{Title: "Drafts", Actions: []basecamp.ToolAction{{Name: "Preview"}}}

	tcs := []struct {
		name     string
		env      basecamp.Environment
		tools    []basecamp.Tool
		expected basecamp.Toolbox
	}{
		{"Production", basecamp.Production, []basecamp.Tool{routes, health}, basecamp.Toolbox{}},
		{"No-Tools", basecamp.Development, nil, basecamp.Toolbox{}},
		{"Development", basecamp.Development, []basecamp.Tool{routes}, basecamp.Toolbox{routes}},
		{"Staging", basecamp.Staging, []basecamp.Tool{routes}, basecamp.Toolbox{routes}},
		{
			"Drops-Unlinked-Actions",
			basecamp.Testing,
			[]basecamp.Tool{health},
			basecamp.Toolbox{{Title: "Health", Actions: []basecamp.ToolAction{{Name: "Status", URL: "/healthz"}}}},
		},
		{"Drops-Empty-Tools", basecamp.Testing, []basecamp.Tool{unlinked, routes, {Title: "Empty"}}, basecamp.Toolbox{routes}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := basecamp.NewToolbox(tc.env, tc.tools...)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestNewToolboxKeepsInput(t *testing.T) {
	// Arrange
	health := basecamp.Tool{
		Title:   "Health",
		Actions: []basecamp.ToolAction{{Name: "Metrics"}, {Name: "Status", URL: "/healthz"}},
	}

	// Act
	basecamp.NewToolbox(basecamp.Development, health)

	// Assert
	require.Equal(t, "Metrics", health.Actions[0].Name)
	require.Len(t, health.Actions, 2)
}

func TestToolboxLen(t *testing.T) {
	// Arrange
	tb := basecamp.NewToolbox(
		basecamp.Demo,
		basecamp.Tool{Title: "Routes", Actions: []basecamp.ToolAction{{Name: "Route table", URL: "/api/routes"}}},
		basecamp.Tool{Title: "Health", Actions: []basecamp.ToolAction{{Name: "Status", URL: "/healthz"}, {Name: "Metrics", URL: "/metrics"}}},
	)

	// Act
	n := tb.Len()

	// Assert
	require.Equal(t, 3, n)
	require.Zero(t, basecamp.NewToolbox(basecamp.Production).Len())
}

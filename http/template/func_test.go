package template_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/template"
)

func TestEnv(t *testing.T) {
	// Act
	name, fn := template.Env(basecamp.Staging)

	// Assert
	require.Equal(t, "env", name)
	require.Equal(t, "STAGING", fn())
}

func TestNonce(t *testing.T) {
	// Act
	name, fn := template.Nonce()

	// Assert
	require.Equal(t, "nonce", name)
	require.NotEqual(t, fn(), fn())
}

func TestRootUrl(t *testing.T) {
	// Arrange
	tcs := []struct {
		name     string
		u        *url.URL
		expected string
	}{
		{"nil", nil, ""},
		{"zero-value", new(url.URL), ""},
		{"example", &url.URL{Scheme: "https", Host: "example.com", Path: "/"}, "https://example.com/"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			name, fn := template.RootUrl(tc.u)

			// Assert
			require.Equal(t, "rootUrl", name)
			require.Equal(t, tc.expected, fn())
		})
	}
}

package route

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tcs := []struct {
		name     string
		raw      string
		expected string
		params   int
		err      error
	}{
		{"Root", "/", "/", 0, nil},
		{"Literal", "/about", "/about", 0, nil},
		{"Trailing-Slash", "/about/", "/about", 0, nil},
		{"Param", "/items/{id}", "/items/{id}", 1, nil},
		{"Two-Params", "/users/{user}/posts/{post_id}", "/users/{user}/posts/{post_id}", 2, nil},
		{"Empty", "", "", 0, ErrMalformedPattern},
		{"No-Leading-Slash", "about", "", 0, ErrMalformedPattern},
		{"Query", "/about?x=1", "", 0, ErrMalformedPattern},
		{"Fragment", "/about#top", "", 0, ErrMalformedPattern},
		{"Wildcard", "/docs/*", "", 0, ErrMalformedPattern},
		{"Empty-Segment", "/a//b", "", 0, ErrMalformedPattern},
		{"Relative", "/a/../b", "", 0, ErrMalformedPattern},
		{"Bad-Param-Name", "/items/{1d}", "", 0, ErrMalformedPattern},
		{"Empty-Param-Name", "/items/{}", "", 0, ErrMalformedPattern},
		{"Repeated-Param", "/{id}/{id}", "", 0, ErrMalformedPattern},
		{"Partial-Param", "/items/id-{id}", "", 0, ErrMalformedPattern},
		{"Unclosed-Param", "/items/{id", "", 0, ErrMalformedPattern},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := parsePattern(tc.raw)

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, actual.raw)
			require.Equal(t, tc.params, actual.params)
		})
	}
}

func TestPatternShape(t *testing.T) {
	// Arrange
	a, err := parsePattern("/items/{id}/edit")
	require.NoError(t, err)

	b, err := parsePattern("/items/{slug}/edit")
	require.NoError(t, err)

	// Act + Assert
	require.Equal(t, "/items/{}/edit", a.shape())
	require.Equal(t, a.shape(), b.shape())
}

func TestPatternOverlaps(t *testing.T) {
	tcs := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"Static-And-Param", "/items/new", "/items/{id}", true},
		{"Param-Each-Side", "/{a}/x", "/x/{b}", true},
		{"Different-Static", "/items/new", "/users/{id}", false},
		{"Different-Length", "/items/{id}", "/items/{id}/edit", false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			a, err := parsePattern(tc.a)
			require.NoError(t, err)

			b, err := parsePattern(tc.b)
			require.NoError(t, err)

			// Act + Assert
			require.Equal(t, tc.expected, a.overlaps(b))
			require.Equal(t, tc.expected, b.overlaps(a))
		})
	}
}

func TestPatternMoreSpecific(t *testing.T) {
	// Arrange
	static, err := parsePattern("/items/new")
	require.NoError(t, err)

	param, err := parsePattern("/items/{id}")
	require.NoError(t, err)

	left, err := parsePattern("/x/{b}")
	require.NoError(t, err)

	right, err := parsePattern("/{a}/x")
	require.NoError(t, err)

	// Act + Assert
	require.True(t, static.moreSpecific(param))
	require.False(t, param.moreSpecific(static))
	require.True(t, left.moreSpecific(right))
	require.False(t, right.moreSpecific(left))
	require.False(t, param.moreSpecific(param))
}

func TestPatternMatch(t *testing.T) {
	// Arrange
	p, err := parsePattern("/users/{user}/posts/{post}")
	require.NoError(t, err)

	// Act
	actual, ok := p.match(splitPath("/users/ada/posts/7"))

	// Assert
	require.True(t, ok)
	require.Equal(t, Params{{Key: "user", Value: "ada"}, {Key: "post", Value: "7"}}, actual)

	// Act
	_, ok = p.match(splitPath("/users/ada/comments/7"))

	// Assert
	require.False(t, ok)

	// Act
	_, ok = p.match(splitPath("/users/ada/posts"))

	// Assert
	require.False(t, ok)
}

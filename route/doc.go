/*
Package route maps URL paths onto the page components a basecamp app renders.

# Registry

A [Registry] is built once, at startup, from a set of [Definition]s.
A Definition binds a path pattern to a component:

	reg, err := route.New([]route.Definition{
		{Path: "/", Component: home},
		{Path: "/about", Component: about},
		{Path: "/items/{id}", Component: item},
		{Component: notFound, Fallback: true},
	})

A pattern is either literal ("/about") or parameterized,
where a parameter spans one whole segment and is named in braces ("/items/{id}").
[New] refuses to build a Registry from an inconsistent table:
malformed patterns, duplicate identifiers, two patterns matching identical concrete paths,
more than one fallback, or a definition with no component.
Every such error wraps [basecamp.ErrBadConfig].
A Registry is never mutated after [New] returns,
so it is safe to share between goroutines.

[Init] publishes a Registry process-wide exactly once; [Default] reads it back.

# Resolution

[*Registry.Resolve] selects the Definition for a requested path:
an exact literal match first,
then the most specific parameterized match,
then the fallback Definition if one was registered.
Resolve never fails; a miss is a [Result] whose Status is [StatusNotFound].
Parameter values are bound by name from the raw path text
and are neither decoded nor coerced.
*/
package route

package basecamp

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by basecamp.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResolutionKey stashes the route.Result the page dispatcher resolved for an HTTP request.
	ResolutionKey Key = "ResolutionKey"

	// ThemeKey stashes the theme preference read from the session.
	ThemeKey Key = "ThemeKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "basecamp context key: " + string(k)
}

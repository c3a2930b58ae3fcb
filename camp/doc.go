/*
Package camp composes a basecamp app from its parts and runs its web server.

# Camp

Construct a [Camp] with [New], then begin the web server with [*Camp.Guide].
[New] reads its configuration from environment variables,
which options passed to it override.

	c, err := camp.New(camp.WithGlobalRegistry())
	if err != nil {
		log.Fatal(err)
	}

	if err := c.Guide(); err != nil {
		log.Fatal(err)
	}

[*Camp.Guide] stops on a signal, on cancelling the context set with [WithContext],
or on [*Camp.Shutdown].

# Configuration

Environment variables ought to be set in a file called ".env"
found at the directory the application is executed from.

  - APP_DESCRIPTION: a short description of the application
  - APP_TITLE: a short title for the application; default: basecamp
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CONTACT_US_EMAIL: the address shown to visitors when something goes wrong
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; unset disables CORS
  - ENVIRONMENT: the environment the application is running in; cf. [basecamp.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :8080
  - ROUTE_CONFLICT_MODE: prefer_static or strict; cf. [route.ConflictMode]
  - SENTRY_DSN: where errors and panics are reported; unset disables reporting
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for idling between requests; default: 120s
  - SERVER_READ_TIMEOUT: the timeout, as understood by [time.ParseDuration], for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]

In development, templates, content and assets are read from the web directory on disk,
and content reloads as it changes.
*/
package camp

/*
Package middleware defines what a middleware is in basecamp and a set of basic middlewares.

The available middlewares are:
  - CORS
  - ForceHTTPS
  - InjectIPAddress
  - InjectTheme
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

The camp package assembles the default chain, which looks like this:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.RateLimit(vs),
		middleware.CORS(origin),
		middleware.InjectTheme(sessionStore),
	}
*/
package middleware

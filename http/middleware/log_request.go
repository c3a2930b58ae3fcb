package middleware

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/metrics"
)

// LogMaskVal replaces the values of query parameters LogRequest scrubs.
const LogMaskVal = "xxxxxxx"

// maskedParams are the query parameters LogRequest scrubs.
var maskedParams = []string{"password", "token"}

// LogRequest logs the request's method, requested URL, response status code
// and originating IP address using the enclosed implementation of logger.Logger.
// It also observes the request's duration in metrics.RequestSeconds.
//
// LogRequest scrubs the values for the following keys:
//   - password
//   - token
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, h, func(_ io.Writer, p handlers.LogFormatterParams) {
			metrics.ObserveRequest(p.Request.Method, p.StatusCode, p.TimeStamp)

			data := map[string]any{
				"duration_ms": time.Since(p.TimeStamp).Milliseconds(),
				"size":        p.Size,
				"status":      p.StatusCode,
			}

			if ip, ok := p.Request.Context().Value(basecamp.IpAddrKey).(string); ok {
				data["ip_address"] = ip
			}

			if id, ok := p.Request.Context().Value(basecamp.RequestIDKey).(string); ok {
				data["request_id"] = id
			}

			msg := fmt.Sprintf("%s %s %d", p.Request.Method, maskedURI(p.URL.Path, p.URL.Query()), p.StatusCode)
			ls.Info(msg, &logger.LogContext{Caller: "middleware.LogRequest", Data: data})
		})
	}
}

// maskedURI joins path and query after scrubbing maskedParams.
func maskedURI(path string, q url.Values) string {
	for _, k := range maskedParams {
		if _, ok := q[k]; ok {
			q[k] = []string{LogMaskVal}
		}
	}

	query := q.Encode()
	if query == "" {
		return path
	}

	return path + "?" + query
}

package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/middleware"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/metrics"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		method   string
		target   string
		code     int
		ip       string
		expected []string
	}{
		{"Zero-Value", http.MethodGet, "/", http.StatusOK, "", []string{"'GET / 200'"}},
		{"With-IP", http.MethodPost, "/theme", http.StatusFound, "1.1.1.1", []string{"'POST /theme 302'", `"ip_address":"1.1.1.1"`}},
		{"With-Query-Params", http.MethodGet, "/docs/field-notes?tab=2", http.StatusOK, "", []string{"'GET /docs/field-notes?tab=2 200'"}},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			"/?param=true&password=hunter2",
			http.StatusNotFound,
			"",
			[]string{"'GET /?param=true&password=" + middleware.LogMaskVal + " 404'"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			ls := logger.New(logger.WithLogger(log.New(b, "", 0)))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)
			r = r.Clone(context.WithValue(r.Context(), basecamp.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), basecamp.IpAddrKey, tc.ip))
			}

			// Act
			middleware.LogRequest(ls)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(tc.code)
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			actual := b.String()
			require.Contains(t, actual, "[INFO]")
			require.Contains(t, actual, `"request_id":"test-id"`)
			require.Contains(t, actual, `"size":4`)
			require.NotContains(t, actual, "hunter2")
			for _, e := range tc.expected {
				require.Contains(t, actual, e)
			}

			require.GreaterOrEqual(t, testutil.CollectAndCount(metrics.RequestSeconds), 1)
		})
	}
}

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp/metrics"
	"github.com/xy-planning-network/basecamp/route"
)

func TestObserveResolution(t *testing.T) {
	// Arrange
	res := route.Result{Definition: route.Definition{ID: "about"}, Status: route.StatusMatched}
	before := testutil.ToFloat64(metrics.Resolutions.WithLabelValues("matched", "about"))

	// Act
	metrics.ObserveResolution(res)

	// Assert
	actual := testutil.ToFloat64(metrics.Resolutions.WithLabelValues("matched", "about"))
	require.Equal(t, before+1, actual)
}

func TestObserveRender(t *testing.T) {
	// Act
	metrics.ObserveRender(time.Now())

	// Assert
	require.Equal(t, 1, testutil.CollectAndCount(metrics.MarkdownRenderSeconds))
}

func TestHandler(t *testing.T) {
	// Arrange
	metrics.ObserveRequest(http.MethodGet, http.StatusOK, time.Now())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	// Act
	metrics.Handler().ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "basecamp_http_request_seconds")
}

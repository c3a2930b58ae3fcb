package resp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/resp"
	tt "github.com/xy-planning-network/basecamp/http/template/templatetest"
	"github.com/xy-planning-network/basecamp/logger"
)

const (
	htmlMediaType = "text/html; charset=utf-8"
	jsonMediaType = "application/json; charset=UTF-8"
)

func TestResponderDo(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)

		w := httptest.NewRecorder()
		w.WriteHeader(http.StatusPaymentRequired)

		cancel()

		d := resp.NewResponder(resp.WithLogger(quietLogger()))

		// Act
		err := d.Json(w, r, resp.Code(http.StatusTeapot))

		// Assert
		require.ErrorIs(t, err, resp.ErrDone)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Retries-Out-Of-Order", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		d := resp.NewResponder(resp.WithLogger(quietLogger()))

		// Act
		err := d.Redirect(w, r, resp.Param("k", "v"), resp.Url("https://example.com/docs"))

		// Assert
		require.NoError(t, err)
		require.Equal(t, "https://example.com/docs?k=v", w.Header().Get("Location"))
	})
}

func TestResponderErr(t *testing.T) {
	tcs := []struct {
		name     string
		opts     []resp.Fn
		expected int
	}{
		{"Default", nil, http.StatusInternalServerError},
		{"Code-Overwritten", []resp.Fn{resp.Code(http.StatusBadRequest)}, http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			d := resp.NewResponder(resp.WithLogger(logger.New(logger.WithLogger(log.New(b, "", 0)))))
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			// Act
			d.Err(w, r, errors.New("boom"), tc.opts...)

			// Assert
			require.Equal(t, tc.expected, w.Code)
			require.Contains(t, w.Body.String(), "boom")
			require.Contains(t, b.String(), "boom")
		})
	}
}

func TestResponderHtml(t *testing.T) {
	layout := tt.NewMockFile("layout.tmpl", []byte(`<main data-theme="{{ .Theme }}">{{ template "content" . }}</main>`))
	page := tt.NewMockFile("page.tmpl", []byte(`{{ define "content" }}<h1>{{ .Data.Title }}</h1><p>{{ .Ctx.RequestIDKey }}</p>{{ end }}`))
	broken := tt.NewMockFile("broken.tmpl", []byte(`{{ template "missing" . }}`))

	newResponder := func() *resp.Responder {
		return resp.NewResponder(
			resp.WithCtxKeys(basecamp.RequestIDKey),
			resp.WithLayout("layout.tmpl"),
			resp.WithLogger(quietLogger()),
			resp.WithParser(tt.NewParser(layout, page, broken)),
			resp.WithRootUrl("https://example.com"),
		)
	}

	t.Run("Renders", func(t *testing.T) {
		// Arrange
		ctx := context.WithValue(context.Background(), basecamp.RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, basecamp.ThemeKey, "dark")
		r := httptest.NewRequest(http.MethodGet, "/about", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		// Act
		err := newResponder().Html(w, r, resp.Layout(), resp.Tmpls("page.tmpl"), resp.Data(map[string]any{"Title": "About"}))

		// Assert
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, htmlMediaType, w.Header().Get("Content-Type"))
		require.Equal(t, `<main data-theme="dark"><h1>About</h1><p>req-1</p></main>`, w.Body.String())
	})

	t.Run("Code", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()

		// Act
		err := newResponder().Html(w, r, resp.Code(http.StatusNotFound), resp.Layout(), resp.Tmpls("page.tmpl"), resp.Data(map[string]any{"Title": "Gone"}))

		// Assert
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), `data-theme=""`)
	})

	t.Run("No-Tmpls", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		// Act
		err := newResponder().Html(w, r)

		// Assert
		require.ErrorIs(t, err, resp.ErrMissingData)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "Something went wrong")
		require.Contains(t, w.Body.String(), `href="https://example.com"`)
	})

	t.Run("Exec-Error", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		// Act
		err := newResponder().Html(w, r, resp.Tmpls("broken.tmpl"))

		// Assert
		require.Error(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "Something went wrong")
	})

	t.Run("No-Parser", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(resp.WithLogger(quietLogger()))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		// Act
		err := d.Html(w, r, resp.Tmpls("page.tmpl"))

		// Assert
		require.ErrorIs(t, err, resp.ErrBadConfig)
		require.ErrorIs(t, err, basecamp.ErrBadConfig)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("No-Layout", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(resp.WithLogger(quietLogger()), resp.WithParser(tt.NewParser(page)))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		// Act
		err := d.Html(w, r, resp.Layout(), resp.Tmpls("page.tmpl"))

		// Assert
		require.ErrorIs(t, err, resp.ErrBadConfig)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestResponderJson(t *testing.T) {
	tcs := []struct {
		name     string
		opts     []resp.Fn
		code     int
		expected string
	}{
		{"Empty", nil, http.StatusOK, `{}`},
		{"Data", []resp.Fn{resp.Data(map[string]any{"id": "home"})}, http.StatusOK, `{"data":{"id":"home"}}`},
		{"Code", []resp.Fn{resp.Code(http.StatusNotFound), resp.Data("nope")}, http.StatusNotFound, `{"data":"nope"}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(quietLogger()))
			r := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
			w := httptest.NewRecorder()

			// Act
			err := d.Json(w, r, tc.opts...)

			// Assert
			require.NoError(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, jsonMediaType, w.Header().Get("Content-Type"))
			require.JSONEq(t, tc.expected, w.Body.String())
		})
	}

	t.Run("Unencodable", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(resp.WithLogger(quietLogger()))
		r := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
		w := httptest.NewRecorder()

		// Act
		err := d.Json(w, r, resp.Data(make(chan int)))

		// Assert
		var target *json.UnsupportedTypeError
		require.ErrorAs(t, err, &target)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestResponderRedirect(t *testing.T) {
	tcs := []struct {
		name     string
		opts     []resp.Fn
		code     int
		location string
	}{
		{"Default", nil, http.StatusFound, "https://example.com"},
		{"Url", []resp.Fn{resp.Url("/about")}, http.StatusFound, "/about"},
		{"3xx", []resp.Fn{resp.Code(http.StatusMovedPermanently)}, http.StatusMovedPermanently, "https://example.com"},
		{"4xx", []resp.Fn{resp.Code(http.StatusBadRequest)}, http.StatusSeeOther, "https://example.com"},
		{"5xx", []resp.Fn{resp.Code(http.StatusBadGateway)}, http.StatusTemporaryRedirect, "https://example.com"},
		{"Param", []resp.Fn{resp.Param("theme", "dark")}, http.StatusFound, "https://example.com?theme=dark"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(quietLogger()), resp.WithRootUrl("https://example.com"))
			r := httptest.NewRequest(http.MethodPost, "/theme", nil)
			w := httptest.NewRecorder()

			// Act
			err := d.Redirect(w, r, tc.opts...)

			// Assert
			require.NoError(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}

	t.Run("No-Root", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(resp.WithLogger(quietLogger()))
		r := httptest.NewRequest(http.MethodPost, "/theme", nil)
		w := httptest.NewRecorder()

		// Act
		err := d.Redirect(w, r)

		// Assert
		require.ErrorIs(t, err, resp.ErrMissingData)
	})
}

func quietLogger() logger.Logger {
	return logger.New(logger.WithLogger(log.New(new(bytes.Buffer), "", 0)))
}

func TestResponderHtmlErr(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	d := resp.NewResponder(
		resp.WithContactErrMsg("Write to help@example.com."),
		resp.WithLogger(logger.New(logger.WithLogger(log.New(b, "", 0)))),
		resp.WithParser(tt.NewParser()),
	)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	// Act
	err := d.HtmlErr(w, r, errors.New("boom"))

	// Assert
	require.EqualError(t, err, "boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Write to help@example.com.")
	require.NotContains(t, w.Body.String(), "boom")
	require.Contains(t, b.String(), "boom")
}

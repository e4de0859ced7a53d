package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRouter_RouteMiddlewaresRunInOrder(t *testing.T) {
	var calls []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/v1/shorts/report",
		Method:      http.MethodGet,
		Handler:     okHandler(),
		Middlewares: []func(http.Handler) http.Handler{mark("first"), mark("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shorts/report", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{Path: "/v1/shorts/report", Method: http.MethodGet, Handler: okHandler()}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/shorts/report", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VAL_004"`)
	assert.Contains(t, rec.Body.String(), "Method not allowed. Use GET.")
}

func TestRouter_NotFound(t *testing.T) {
	rt := New()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found: /nope")
}

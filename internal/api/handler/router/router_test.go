package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

func header(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:        "/ping",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
		Middlewares: []func(http.Handler) http.Handler{header("first"), header("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Order"))
	assert.Equal(t, []string{"GET /ping"}, rt.Routes())
}

func TestRouter_NotFound(t *testing.T) {
	rt := New(WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nada", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRouter_AnnotatesRoutePattern(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/items/:id",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	ctx, fields := log.WithRequestFields(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/v1/items/42", nil).WithContext(ctx)

	rt.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/v1/items/:id", fields.Fields()["route"])
}

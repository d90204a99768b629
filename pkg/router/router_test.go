package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestGroupPrefixes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.Get("/product/list", "product.list", ok)

	admin := api.Group("/product")
	admin.Post("/add", "product.add", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/product/list")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/product/add", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "product.show", ok)

	path, found := r.Path("product.show")
	require.True(t, found)
	assert.Equal(t, "/products/{id}", path)

	url, err := r.URL("product.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/products/42", url)

	_, err = r.URL("product.show", nil)
	assert.Error(t, err, "unresolved params must error")

	_, err = r.URL("missing.route", nil)
	assert.Error(t, err)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var touched []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				touched = append(touched, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("group"))
	g.Post("/thing", "thing", ok, mw("route"))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/thing", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"group", "route"}, touched)
}

package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func preflight(r http.Handler, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_PreflightFromDashboard(t *testing.T) {
	env := newTestEnv()

	w := preflight(env.router, "/graphql", dashboardOrigin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dashboardOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodPost, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	env := newTestEnv()

	w := preflight(env.router, "/graphql", "http://evil.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_SimpleRequestCarriesOrigin(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/warehouses", nil)
	req.Header.Set("Origin", dashboardOrigin)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dashboardOrigin, w.Header().Get("Access-Control-Allow-Origin"))
}

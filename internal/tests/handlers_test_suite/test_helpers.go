package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rs/zerolog"

	api "github.com/rogerio-castellano/supplysight/internal/http"
	"github.com/rogerio-castellano/supplysight/internal/http/ban"
	handler "github.com/rogerio-castellano/supplysight/internal/http/handlers"
	rl "github.com/rogerio-castellano/supplysight/internal/http/rate_limiter"
	"github.com/rogerio-castellano/supplysight/internal/inventory"
	"github.com/rogerio-castellano/supplysight/internal/repo"
)

var fixedNow = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

const dashboardOrigin = "http://localhost:5173"

type testEnv struct {
	router    http.Handler
	products  *repo.InMemoryProductRepository
	movements *repo.InMemoryMovementRepository
}

// setupTestRepos builds a seeded service with a fixed clock and KPI seed.
func setupTestRepos() (*inventory.Service, *repo.InMemoryProductRepository, *repo.InMemoryMovementRepository) {
	products := repo.NewInMemoryProductRepository()
	warehouses := repo.NewInMemoryWarehouseRepository()
	movements := repo.NewInMemoryMovementRepository()
	if err := repo.Seed(products, warehouses); err != nil {
		panic(fmt.Sprintf("seeding repos: %v", err))
	}

	svc := inventory.NewService(products, warehouses, movements,
		repo.NewInMemoryMetricsRepository(products),
		inventory.WithClock(func() time.Time { return fixedNow }),
		inventory.WithKPIGenerator(inventory.NewRandomKPIGenerator(42)),
	)
	return svc, products, movements
}

func newTestEnv() testEnv {
	return newTestEnvWithLimits(nil, nil)
}

func newTestEnvWithLimits(limiter *rl.Limiter, bans ban.Store) testEnv {
	svc, products, movements := setupTestRepos()
	r, err := api.NewRouter(api.Dependencies{
		Service:        svc,
		Logger:         zerolog.Nop(),
		Limiter:        limiter,
		Bans:           bans,
		AllowedOrigins: []string{dashboardOrigin},
	})
	if err != nil {
		panic(fmt.Sprintf("building router: %v", err))
	}
	return testEnv{router: r, products: products, movements: movements}
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateDemand(r http.Handler, productID string, demand int) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPut, fmt.Sprintf("/products/%s/demand", productID),
		handler.DemandUpdateRequest{Demand: &demand})
}

func transferStock(r http.Handler, productID, from, to string, qty int) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/products/%s/transfer", productID),
		handler.TransferRequest{From: &from, To: &to, Qty: &qty})
}

type graphqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

func graphqlQuery(r http.Handler, query string, variables map[string]any) (*httptest.ResponseRecorder, graphqlResponse) {
	w := doRequest(r, http.MethodPost, "/graphql", map[string]any{
		"query":     query,
		"variables": variables,
	})

	var resp graphqlResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/rogerio-castellano/supplysight/internal/http/handlers"
)

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) handler.ProductsSearchResult {
	t.Helper()
	var resp handler.ProductsSearchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestListProductsHandler_All(t *testing.T) {
	env := newTestEnv()

	w := doRequest(env.router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeProducts(t, w)
	assert.Equal(t, 10, resp.Meta.TotalCount)
	require.Len(t, resp.Data, 10)
	for i, p := range resp.Data {
		assert.Equal(t, []string{
			"P-1001", "P-1002", "P-1003", "P-1004", "P-1005",
			"P-1006", "P-1007", "P-1008", "P-1009", "P-1010",
		}[i], p.ID)
	}
}

func TestListProductsHandler_Filters(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{name: "Search by name", query: "?search=hex", expectedIDs: []string{"P-1001"}},
		{name: "Search by SKU, mixed case", query: "?search=wSr", expectedIDs: []string{"P-1002"}},
		{name: "Search by ID", query: "?search=p-1010", expectedIDs: []string{"P-1010"}},
		{name: "Critical only", query: "?status=Critical", expectedIDs: []string{"P-1002", "P-1004", "P-1009"}},
		{name: "Low only", query: "?status=Low", expectedIDs: []string{"P-1003"}},
		{name: "All status", query: "?status=All", expectedIDs: []string{
			"P-1001", "P-1002", "P-1003", "P-1004", "P-1005",
			"P-1006", "P-1007", "P-1008", "P-1009", "P-1010",
		}},
		{name: "Unknown status is ignored", query: "?status=Whatever&warehouse=DEL-B", expectedIDs: []string{"P-1004", "P-1007", "P-1010"}},
		{name: "Warehouse and status", query: "?warehouse=BLR-A&status=Healthy", expectedIDs: []string{"P-1001", "P-1005", "P-1008"}},
		{name: "Empty warehouse", query: "?warehouse=MUM-D", expectedIDs: []string{}},
		{name: "No match", query: "?search=zzz", expectedIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(env.router, http.MethodGet, "/products"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decodeProducts(t, w)
			ids := make([]string, 0, len(resp.Data))
			for _, p := range resp.Data {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(tt.expectedIDs), resp.Meta.TotalCount)
		})
	}
}

func TestListProductsHandler_Pagination(t *testing.T) {
	env := newTestEnv()

	w := doRequest(env.router, http.MethodGet, "/products?offset=2&limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeProducts(t, w)
	assert.Equal(t, 10, resp.Meta.TotalCount)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "P-1003", resp.Data[0].ID)
	assert.Equal(t, "P-1005", resp.Data[2].ID)

	for _, q := range []string{"?limit=0", "?limit=abc", "?offset=-1"} {
		w := doRequest(env.router, http.MethodGet, "/products"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	env := newTestEnv()

	w := doRequest(env.router, http.MethodGet, "/products/P-1004", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p handler.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "Bearing 608ZZ", p.Name)
	assert.Equal(t, "Critical", p.Status)

	w = doRequest(env.router, http.MethodGet, "/products/P-9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, "Product with ID P-9999 not found", errResp.Error)
}

func TestUpdateDemandHandler(t *testing.T) {
	env := newTestEnv()

	w := updateDemand(env.router, "P-1004", 50)
	require.Equal(t, http.StatusOK, w.Code)

	var p handler.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, 50, p.Demand)
	assert.Equal(t, 24, p.Stock)
	assert.Equal(t, "Critical", p.Status)

	stored, err := env.products.GetByID("P-1004")
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Demand)

	count, err := env.movements.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateDemandHandler_Invalid(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name       string
		id         string
		demand     int
		expectCode int
		expectMsg  string
	}{
		{name: "Negative demand", id: "P-1004", demand: -1, expectCode: http.StatusBadRequest, expectMsg: "Demand cannot be negative"},
		{name: "Unknown product", id: "P-0000", demand: 10, expectCode: http.StatusNotFound, expectMsg: "Product with ID P-0000 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := updateDemand(env.router, tt.id, tt.demand)
			assert.Equal(t, tt.expectCode, w.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectMsg, resp.Error)
		})
	}

	stored, err := env.products.GetByID("P-1004")
	require.NoError(t, err)
	assert.Equal(t, 120, stored.Demand)

	count, err := env.movements.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateDemandHandler_MissingField(t *testing.T) {
	env := newTestEnv()

	w := doRequest(env.router, http.MethodPut, "/products/P-1004/demand", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errs []handler.ValidationError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errs))
	require.Len(t, errs, 1)
	assert.Equal(t, "demand", errs[0].Field)
}

func TestUpdateDemandHandler_MalformedJSON(t *testing.T) {
	env := newTestEnv()

	badJSON := `{"demand": 5` // missing brace
	req := httptest.NewRequest(http.MethodPut, "/products/P-1004/demand", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid input"}`, w.Body.String())
}

func TestTransferStockHandler(t *testing.T) {
	env := newTestEnv()

	w := transferStock(env.router, "P-1001", "BLR-A", "DEL-B", 50)
	require.Equal(t, http.StatusOK, w.Code)

	var p handler.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "DEL-B", p.Warehouse)
	assert.Equal(t, 130, p.Stock)
	assert.Equal(t, "Healthy", p.Status)
}

func TestTransferStockHandler_Invalid(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name       string
		id         string
		from       string
		qty        int
		expectCode int
		expectMsg  string
	}{
		{name: "Insufficient stock", id: "P-1001", from: "BLR-A", qty: 1000, expectCode: http.StatusBadRequest, expectMsg: "Insufficient stock for transfer"},
		{name: "Zero quantity", id: "P-1001", from: "BLR-A", qty: 0, expectCode: http.StatusBadRequest, expectMsg: "Transfer quantity must be positive"},
		{name: "Wrong source", id: "P-1001", from: "PNQ-C", qty: 1, expectCode: http.StatusBadRequest, expectMsg: "Product is not in warehouse PNQ-C"},
		{name: "Wrong source wins over bad quantity", id: "P-1001", from: "PNQ-C", qty: -5, expectCode: http.StatusBadRequest, expectMsg: "Product is not in warehouse PNQ-C"},
		{name: "Unknown product", id: "P-0000", from: "BLR-A", qty: 1, expectCode: http.StatusNotFound, expectMsg: "Product with ID P-0000 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := transferStock(env.router, tt.id, tt.from, "DEL-B", tt.qty)
			assert.Equal(t, tt.expectCode, w.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectMsg, resp.Error)
		})
	}

	stored, err := env.products.GetByID("P-1001")
	require.NoError(t, err)
	assert.Equal(t, "BLR-A", stored.Warehouse)
	assert.Equal(t, 180, stored.Stock)
}

func TestTransferStockHandler_MissingFields(t *testing.T) {
	env := newTestEnv()

	w := doRequest(env.router, http.MethodPost, "/products/P-1001/transfer", map[string]any{"from": "BLR-A"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errs []handler.ValidationError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errs))
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"to", "qty"}, fields)
}

func TestMovementsHandler(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, http.StatusOK, updateDemand(env.router, "P-1001", 90).Code)
	require.Equal(t, http.StatusOK, transferStock(env.router, "P-1001", "BLR-A", "CHN-E", 30).Code)

	w := doRequest(env.router, http.MethodGet, "/products/P-1001/movements", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.MovementsSearchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Meta.TotalCount)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "demand", resp.Data[0].Kind)
	assert.Equal(t, 120, resp.Data[0].PreviousDemand)
	assert.Equal(t, 90, resp.Data[0].Demand)
	assert.Equal(t, "transfer", resp.Data[1].Kind)
	assert.Equal(t, "CHN-E", resp.Data[1].To)
	assert.Equal(t, 30, resp.Data[1].Quantity)

	w = doRequest(env.router, http.MethodGet, "/products/P-1001/movements?limit=1&offset=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = handler.MovementsSearchResult{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "transfer", resp.Data[0].Kind)

	w = doRequest(env.router, http.MethodGet, "/products/P-1001/movements?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(env.router, http.MethodGet, "/products/P-0000/movements", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportMovementsHandler(t *testing.T) {
	env := newTestEnv()
	require.Equal(t, http.StatusOK, updateDemand(env.router, "P-1002", 60).Code)

	w := doRequest(env.router, http.MethodGet, "/products/P-1002/movements/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	lines := bytes.Split(bytes.TrimSpace(w.Body.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[1]), "P-1002,demand")

	w = doRequest(env.router, http.MethodGet, "/products/P-1002/movements/export?format=json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movements []handler.MovementResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&movements))
	require.Len(t, movements, 1)
	assert.Equal(t, 60, movements[0].Demand)

	w = doRequest(env.router, http.MethodGet, "/products/P-1002/movements/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMutationHandlers_UnknownProductWinsOverBody(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "Transfer with only qty", method: http.MethodPost, path: "/products/P-9999/transfer", body: map[string]any{"qty": 1}},
		{name: "Transfer without from", method: http.MethodPost, path: "/products/P-9999/transfer", body: map[string]any{"to": "DEL-B", "qty": 1}},
		{name: "Demand without value", method: http.MethodPut, path: "/products/P-9999/demand", body: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(env.router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "Product with ID P-9999 not found", resp.Error)
		})
	}
}

func TestTransferStockHandler_EmptyWarehouseCodes(t *testing.T) {
	env := newTestEnv()

	w := transferStock(env.router, "P-1001", "", "DEL-B", 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, "Product is not in warehouse ", errResp.Error)

	// the destination is not validated, REST and GraphQL must agree on that
	w = transferStock(env.router, "P-1002", "BLR-A", "", 1)
	require.Equal(t, http.StatusOK, w.Code)
	var p handler.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "", p.Warehouse)
	assert.Equal(t, 49, p.Stock)

	_, resp := graphqlQuery(env.router,
		`mutation { transferStock(id: "P-1005", from: "BLR-A", to: "", qty: 1) { warehouse stock } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"transferStock":{"warehouse":"","stock":199}}`, string(resp.Data))
}

func TestUpdateDemandHandler_TooLarge(t *testing.T) {
	env := newTestEnv()

	w := updateDemand(env.router, "P-1004", 3000000000)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Demand cannot exceed 2147483647", resp.Error)

	stored, err := env.products.GetByID("P-1004")
	require.NoError(t, err)
	assert.Equal(t, 120, stored.Demand)
}

func TestMovementsHandler_KeepsZeroValues(t *testing.T) {
	env := newTestEnv()
	require.Equal(t, http.StatusOK, updateDemand(env.router, "P-1003", 0).Code)

	w := doRequest(env.router, http.MethodGet, "/products/P-1003/movements", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, float64(0), resp.Data[0]["demand"])
	assert.Equal(t, float64(80), resp.Data[0]["previous_demand"])
	assert.Equal(t, float64(0), resp.Data[0]["quantity"])
}

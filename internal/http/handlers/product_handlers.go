package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/supplysight/internal/inventory"
	"github.com/rogerio-castellano/supplysight/internal/models"
)

func productQuery(r *http.Request) (inventory.ProductQuery, error) {
	q := r.URL.Query()
	offset, limit, err := pagination(q)
	if err != nil {
		return inventory.ProductQuery{}, err
	}
	return inventory.ProductQuery{
		Search:    q.Get("search"),
		Status:    models.ParseStatus(q.Get("status")),
		Warehouse: q.Get("warehouse"),
		Offset:    offset,
		Limit:     limit,
	}, nil
}

// ListProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Produce json
// @Param search query string false "Case-insensitive match on name, SKU or ID"
// @Param status query string false "All, Healthy, Low or Critical"
// @Param warehouse query string false "Exact warehouse code"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (s *Server) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	query, err := productQuery(r)
	if err != nil {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	products, total, err := s.svc.ListProducts(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = newProductResponse(p)
	}
	s.respond(w, r, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, newProductResponse(product))
}

// UpdateDemandHandler godoc
// @Summary Set the demand of a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param demand body DemandUpdateRequest true "New demand"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/demand [put]
func (s *Server) UpdateDemandHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.productExists(w, r, id) {
		return
	}

	var req DemandUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}
	if errs := validateDemandUpdate(req); len(errs) > 0 {
		s.respond(w, r, http.StatusBadRequest, errs)
		return
	}

	product, err := s.svc.UpdateDemand(r.Context(), id, *req.Demand)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, newProductResponse(product))
}

// TransferStockHandler godoc
// @Summary Move a product to another warehouse
// @Description Relocates the product and consumes qty units of its stock.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param transfer body TransferRequest true "Transfer"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/transfer [post]
func (s *Server) TransferStockHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.productExists(w, r, id) {
		return
	}

	var req TransferRequest
	if err := readJSON(w, r, &req); err != nil {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}
	if errs := validateTransfer(req); len(errs) > 0 {
		s.respond(w, r, http.StatusBadRequest, errs)
		return
	}

	product, err := s.svc.TransferStock(r.Context(), id, *req.From, *req.To, *req.Qty)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, newProductResponse(product))
}

// productExists writes the not-found response for an unknown id so that it
// wins over body validation, matching the service's check order.
func (s *Server) productExists(w http.ResponseWriter, r *http.Request, id string) bool {
	if _, err := s.svc.GetProduct(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return false
	}
	return true
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListWarehousesHandler godoc
// @Summary List all warehouses
// @Tags warehouses
// @Produce json
// @Success 200 {array} models.Warehouse
// @Router /warehouses [get]
func (s *Server) ListWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	warehouses, err := s.svc.ListWarehouses(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, warehouses)
}

// GetWarehouseHandler godoc
// @Summary Get warehouse by code
// @Tags warehouses
// @Produce json
// @Param code path string true "Warehouse code"
// @Success 200 {object} models.Warehouse
// @Failure 404 {object} ErrorResponse
// @Router /warehouses/{code} [get]
func (s *Server) GetWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	warehouse, err := s.svc.GetWarehouse(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, warehouse)
}

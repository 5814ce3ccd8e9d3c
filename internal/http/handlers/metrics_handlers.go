package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/supplysight/internal/models"
)

// GetKPIsHandler godoc
// @Summary Daily stock/demand trend
// @Tags metrics
// @Produce json
// @Param range query string false "7d, 14d or 30d (default)"
// @Success 200 {array} models.KPIPoint
// @Router /kpis [get]
func (s *Server) GetKPIsHandler(w http.ResponseWriter, r *http.Request) {
	kpiRange := models.ParseKPIRange(r.URL.Query().Get("range"))
	s.respond(w, r, http.StatusOK, s.svc.KPISeries(r.Context(), kpiRange))
}

// GetSummaryHandler godoc
// @Summary Totals, status counts and fill rate
// @Tags metrics
// @Produce json
// @Param search query string false "Case-insensitive match on name, SKU or ID"
// @Param status query string false "All, Healthy, Low or Critical"
// @Param warehouse query string false "Exact warehouse code"
// @Success 200 {object} models.Summary
// @Failure 400 {object} ErrorResponse
// @Router /metrics/summary [get]
func (s *Server) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	query, err := productQuery(r)
	if err != nil {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := s.svc.Summary(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, summary)
}

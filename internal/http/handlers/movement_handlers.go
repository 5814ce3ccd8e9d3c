package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/supplysight/internal/repo"
)

func movementFilter(q url.Values, paginated bool) (repo.MovementFilter, error) {
	var mf repo.MovementFilter
	var err error

	if mf.Since, err = queryTime(q, "since"); err != nil {
		return mf, err
	}
	if mf.Until, err = queryTime(q, "until"); err != nil {
		return mf, err
	}
	if paginated {
		if mf.Offset, mf.Limit, err = pagination(q); err != nil {
			return mf, err
		}
	}
	return mf, nil
}

// GetMovementsHandler godoc
// @Summary Get product movement logs
// @Tags movements
// @Produce json
// @Param id path string true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/movements [get]
func (s *Server) GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	mf, err := movementFilter(r.URL.Query(), true)
	if err != nil {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	movements, total, err := s.svc.Movements(r.Context(), chi.URLParam(r, "id"), mf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		resp.Data[i] = newMovementResponse(m)
	}
	s.respond(w, r, http.StatusOK, resp)
}

// ExportMovementsHandler godoc
// @Summary Export product movement logs
// @Tags movements
// @Produce text/csv, application/json
// @Param id path string true "Product ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/movements/export [get]
func (s *Server) ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "format must be 'csv' or 'json'"})
		return
	}

	mf, err := movementFilter(r.URL.Query(), false)
	if err != nil {
		s.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	movements, _, err := s.svc.Movements(r.Context(), chi.URLParam(r, "id"), mf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch format {
	case "json":
		out := make([]MovementResponse, len(movements))
		for i, m := range movements {
			out[i] = newMovementResponse(m)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.json"`)
		if err := json.NewEncoder(w).Encode(out); err != nil {
			s.logger(r).Error().Err(err).Msg("failed to encode movements")
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "kind", "from", "to", "quantity", "previous_demand", "demand", "created_at"})
		for _, m := range movements {
			resp := newMovementResponse(m)
			_ = csvWriter.Write([]string{
				resp.ID,
				resp.ProductID,
				resp.Kind,
				resp.From,
				resp.To,
				strconv.Itoa(resp.Quantity),
				strconv.Itoa(resp.PreviousDemand),
				strconv.Itoa(resp.Demand),
				resp.CreatedAt,
			})
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			s.logger(r).Error().Err(err).Msg("failed to write csv")
		}
	}
}

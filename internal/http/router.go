package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/supplysight/docs"
	"github.com/rogerio-castellano/supplysight/internal/graphql"
	"github.com/rogerio-castellano/supplysight/internal/http/ban"
	"github.com/rogerio-castellano/supplysight/internal/http/handlers"
	rl "github.com/rogerio-castellano/supplysight/internal/http/rate_limiter"
	"github.com/rogerio-castellano/supplysight/internal/inventory"
)

// Dependencies are the collaborators the router wires into its routes.
// A nil Limiter disables rate limiting; a nil Bans store falls back to memory.
// AllowedOrigins feeds the CORS handler; empty allows any origin.
type Dependencies struct {
	Service        *inventory.Service
	Logger         zerolog.Logger
	Limiter        *rl.Limiter
	Bans           ban.Store
	AllowedOrigins []string
}

func NewRouter(d Dependencies) (http.Handler, error) {
	schema, err := graphql.NewSchema(d.Service, d.Logger)
	if err != nil {
		return nil, err
	}
	h := handlers.NewServer(d.Service, d.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			bans := d.Bans
			if bans == nil {
				bans = ban.NewMemoryStore(ban.Policy{})
			}
			r.Use(RateLimit(d.Limiter, bans))
		}

		r.Handle("/graphql", graphql.NewHandler(schema))

		r.Get("/products", h.ListProductsHandler)
		r.Get("/products/{id}", h.GetProductByIDHandler)
		r.Put("/products/{id}/demand", h.UpdateDemandHandler)
		r.Post("/products/{id}/transfer", h.TransferStockHandler)
		r.Get("/products/{id}/movements", h.GetMovementsHandler)
		r.Get("/products/{id}/movements/export", h.ExportMovementsHandler)

		r.Get("/warehouses", h.ListWarehousesHandler)
		r.Get("/warehouses/{code}", h.GetWarehouseHandler)

		r.Get("/kpis", h.GetKPIsHandler)
		r.Get("/metrics/summary", h.GetSummaryHandler)
	})

	return r, nil
}

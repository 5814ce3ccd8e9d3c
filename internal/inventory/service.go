// Package inventory answers product, warehouse and KPI queries and applies
// the demand and transfer mutations on top of the repositories.
package inventory

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/supplysight/internal/models"
	"github.com/rogerio-castellano/supplysight/internal/repo"
)

// ProductQuery selects products. Empty fields disable their predicate.
type ProductQuery struct {
	Search    string
	Status    models.Status
	Warehouse string
	Offset    *int
	Limit     *int
}

func (q ProductQuery) filter() repo.ProductFilter {
	return repo.ProductFilter{
		Search:    q.Search,
		Status:    q.Status,
		Warehouse: q.Warehouse,
		Offset:    q.Offset,
		Limit:     q.Limit,
	}
}

// Service is the single entry point used by the GraphQL and REST transports.
type Service struct {
	products   repo.ProductRepository
	warehouses repo.WarehouseRepository
	movements  repo.MovementRepository
	metrics    repo.MetricsRepository
	kpis       KPIGenerator
	now        func() time.Time
	log        zerolog.Logger
}

type Option func(*Service)

// WithClock overrides the time source used for KPI dates and movement timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithKPIGenerator(g KPIGenerator) Option {
	return func(s *Service) { s.kpis = g }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l.With().Str("component", "inventory").Logger() }
}

func NewService(
	products repo.ProductRepository,
	warehouses repo.WarehouseRepository,
	movements repo.MovementRepository,
	metrics repo.MetricsRepository,
	opts ...Option,
) *Service {
	s := &Service{
		products:   products,
		warehouses: warehouses,
		movements:  movements,
		metrics:    metrics,
		kpis:       NewRandomKPIGenerator(0),
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns the matching products in storage order together with
// the number of matches before pagination.
func (s *Service) ListProducts(_ context.Context, q ProductQuery) ([]models.Product, int, error) {
	return s.products.Filter(q.filter())
}

func (s *Service) GetProduct(_ context.Context, id string) (models.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return models.Product{}, productError(id, err)
	}
	return p, nil
}

func (s *Service) ListWarehouses(context.Context) ([]models.Warehouse, error) {
	return s.warehouses.GetAll()
}

func (s *Service) GetWarehouse(_ context.Context, code string) (models.Warehouse, error) {
	w, err := s.warehouses.GetByCode(code)
	if errors.Is(err, repo.ErrWarehouseNotFound) {
		return models.Warehouse{}, notFound("Warehouse %s not found", code)
	}
	return w, err
}

// Summary aggregates every product matching q; pagination is ignored.
func (s *Service) Summary(_ context.Context, q ProductQuery) (models.Summary, error) {
	return s.metrics.GetSummary(q.filter())
}

// KPISeries returns one point per calendar day, oldest first, ending today.
func (s *Service) KPISeries(_ context.Context, r models.KPIRange) []models.KPIPoint {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := r.Days()
	points := make([]models.KPIPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		stock, demand := s.kpis.Point(day)
		points = append(points, models.KPIPoint{
			Date:   day.Format(models.DateLayout),
			Stock:  stock,
			Demand: demand,
		})
	}
	return points
}

// UpdateDemand sets the demand of product id.
func (s *Service) UpdateDemand(_ context.Context, id string, demand int) (models.Product, error) {
	var previous int
	updated, err := s.products.Update(id, func(p *models.Product) error {
		if demand < 0 {
			return invalidArgument("Demand cannot be negative")
		}
		if demand > math.MaxInt32 {
			return invalidArgument("Demand cannot exceed %d", math.MaxInt32)
		}
		previous = p.Demand
		p.Demand = demand
		return nil
	})
	if err != nil {
		return models.Product{}, productError(id, err)
	}

	s.record(models.Movement{
		ProductID:      id,
		Kind:           models.MovementDemand,
		PreviousDemand: previous,
		Demand:         demand,
	})
	s.log.Info().Str("product_id", id).Int("previous", previous).Int("demand", demand).Msg("demand updated")
	return updated, nil
}

// TransferStock relocates product id from one warehouse to another and
// consumes qty units of its stock. The checks run in a fixed order and the
// first failure is returned. The destination is not credited: a product has
// a single location and a single stock figure.
func (s *Service) TransferStock(_ context.Context, id, from, to string, qty int) (models.Product, error) {
	updated, err := s.products.Update(id, func(p *models.Product) error {
		if p.Warehouse != from {
			return invalidArgument("Product is not in warehouse %s", from)
		}
		if qty <= 0 {
			return invalidArgument("Transfer quantity must be positive")
		}
		if qty > p.Stock {
			return invalidArgument("Insufficient stock for transfer")
		}
		p.Warehouse = to
		p.Stock -= qty
		return nil
	})
	if err != nil {
		return models.Product{}, productError(id, err)
	}

	s.record(models.Movement{
		ProductID: id,
		Kind:      models.MovementTransfer,
		From:      from,
		To:        to,
		Quantity:  qty,
	})
	s.log.Info().Str("product_id", id).Str("from", from).Str("to", to).Int("qty", qty).
		Int("stock", updated.Stock).Msg("stock transferred")
	return updated, nil
}

// Movements returns the audit log of product id.
func (s *Service) Movements(_ context.Context, id string, mf repo.MovementFilter) ([]models.Movement, int, error) {
	if _, err := s.products.GetByID(id); err != nil {
		return nil, 0, productError(id, err)
	}
	return s.movements.GetByProductID(id, mf)
}

func (s *Service) record(m models.Movement) {
	m.ID = uuid.NewString()
	m.CreatedAt = s.now().UTC()
	if err := s.movements.Log(m); err != nil {
		s.log.Warn().Err(err).Str("product_id", m.ProductID).Msg("could not log movement")
	}
}

func productError(id string, err error) error {
	if errors.Is(err, repo.ErrProductNotFound) {
		return notFound("Product with ID %s not found", id)
	}
	return err
}

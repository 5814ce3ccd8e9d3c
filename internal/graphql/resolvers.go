package graphql

import (
	"context"
	"errors"

	gqlgo "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/supplysight/internal/inventory"
	"github.com/rogerio-castellano/supplysight/internal/models"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc *inventory.Service
	log zerolog.Logger
}

type productFilterArgs struct {
	Search    *string
	Status    *string
	Warehouse *string
}

func (a productFilterArgs) query() inventory.ProductQuery {
	var q inventory.ProductQuery
	if a.Search != nil {
		q.Search = *a.Search
	}
	if a.Status != nil {
		q.Status = models.ParseStatus(*a.Status)
	}
	if a.Warehouse != nil {
		q.Warehouse = *a.Warehouse
	}
	return q
}

func (r *Resolver) Products(ctx context.Context, args productFilterArgs) ([]*productResolver, error) {
	products, _, err := r.svc.ListProducts(ctx, args.query())
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*productResolver, len(products))
	for i, p := range products {
		out[i] = &productResolver{p: p}
	}
	return out, nil
}

func (r *Resolver) Warehouses(ctx context.Context) ([]*warehouseResolver, error) {
	warehouses, err := r.svc.ListWarehouses(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*warehouseResolver, len(warehouses))
	for i, w := range warehouses {
		out[i] = &warehouseResolver{w: w}
	}
	return out, nil
}

func (r *Resolver) Kpis(ctx context.Context, args struct{ Range string }) []*kpiResolver {
	points := r.svc.KPISeries(ctx, models.ParseKPIRange(args.Range))
	out := make([]*kpiResolver, len(points))
	for i, p := range points {
		out[i] = &kpiResolver{k: p}
	}
	return out
}

func (r *Resolver) Summary(ctx context.Context, args productFilterArgs) (*summaryResolver, error) {
	s, err := r.svc.Summary(ctx, args.query())
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &summaryResolver{s: s}, nil
}

func (r *Resolver) UpdateDemand(ctx context.Context, args struct {
	ID     gqlgo.ID
	Demand int32
}) (*productResolver, error) {
	p, err := r.svc.UpdateDemand(ctx, string(args.ID), int(args.Demand))
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &productResolver{p: p}, nil
}

func (r *Resolver) TransferStock(ctx context.Context, args struct {
	ID   gqlgo.ID
	From string
	To   string
	Qty  int32
}) (*productResolver, error) {
	p, err := r.svc.TransferStock(ctx, string(args.ID), args.From, args.To, int(args.Qty))
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &productResolver{p: p}, nil
}

// resolverError adds a machine-readable code under "extensions".
type resolverError struct {
	msg  string
	code string
}

func (e *resolverError) Error() string { return e.msg }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func (r *Resolver) toGraphQLError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return &resolverError{msg: err.Error(), code: "NOT_FOUND"}
	case errors.Is(err, inventory.ErrInvalidArgument):
		return &resolverError{msg: err.Error(), code: "BAD_USER_INPUT"}
	default:
		r.log.Error().Err(err).Msg("resolver failed")
		return &resolverError{msg: "internal error", code: "INTERNAL_SERVER_ERROR"}
	}
}

type productResolver struct{ p models.Product }

func (r *productResolver) ID() gqlgo.ID      { return gqlgo.ID(r.p.ID) }
func (r *productResolver) Name() string      { return r.p.Name }
func (r *productResolver) SKU() string       { return r.p.SKU }
func (r *productResolver) Warehouse() string { return r.p.Warehouse }
func (r *productResolver) Stock() int32      { return int32(r.p.Stock) }
func (r *productResolver) Demand() int32     { return int32(r.p.Demand) }
func (r *productResolver) Status() string    { return string(r.p.Status()) }

type warehouseResolver struct{ w models.Warehouse }

func (r *warehouseResolver) Code() gqlgo.ID  { return gqlgo.ID(r.w.Code) }
func (r *warehouseResolver) Name() string    { return r.w.Name }
func (r *warehouseResolver) City() string    { return r.w.City }
func (r *warehouseResolver) Country() string { return r.w.Country }

type kpiResolver struct{ k models.KPIPoint }

func (r *kpiResolver) Date() string  { return r.k.Date }
func (r *kpiResolver) Stock() int32  { return int32(r.k.Stock) }
func (r *kpiResolver) Demand() int32 { return int32(r.k.Demand) }

type summaryResolver struct{ s models.Summary }

func (r *summaryResolver) TotalProducts() int32 { return int32(r.s.TotalProducts) }
func (r *summaryResolver) TotalStock() int32    { return int32(r.s.TotalStock) }
func (r *summaryResolver) TotalDemand() int32   { return int32(r.s.TotalDemand) }
func (r *summaryResolver) FillRate() int32      { return int32(r.s.FillRate) }
func (r *summaryResolver) Healthy() int32       { return int32(r.s.Healthy) }
func (r *summaryResolver) Low() int32           { return int32(r.s.Low) }
func (r *summaryResolver) Critical() int32      { return int32(r.s.Critical) }

package models

import "github.com/shopspring/decimal"

// Summary aggregates a list of products for the dashboard cards.
type Summary struct {
	TotalProducts int `json:"total_products"`
	TotalStock    int `json:"total_stock"`
	TotalDemand   int `json:"total_demand"`
	FillRate      int `json:"fill_rate"`
	Healthy       int `json:"healthy"`
	Low           int `json:"low"`
	Critical      int `json:"critical"`
}

// Summarize computes totals, status counts and the fill rate of products.
func Summarize(products []Product) Summary {
	s := Summary{TotalProducts: len(products)}
	for _, p := range products {
		s.TotalStock += p.Stock
		s.TotalDemand += p.Demand
		switch p.Status() {
		case StatusHealthy:
			s.Healthy++
		case StatusLow:
			s.Low++
		case StatusCritical:
			s.Critical++
		}
	}
	s.FillRate = FillRate(products)
	return s
}

// FillRate is the percentage of total demand covered by stock, counting at
// most a product's own demand as filled. It is 0 when there is no demand.
func FillRate(products []Product) int {
	var filled, demand int64
	for _, p := range products {
		filled += int64(min(p.Stock, p.Demand))
		demand += int64(p.Demand)
	}
	if demand == 0 {
		return 0
	}

	pct := decimal.NewFromInt(filled).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(demand)).
		Round(0)
	return int(pct.IntPart())
}

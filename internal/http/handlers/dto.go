package handlers

import (
	"time"

	"github.com/rogerio-castellano/supplysight/internal/models"
)

type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

func newProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(p.Status()),
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type DemandUpdateRequest struct {
	Demand *int `json:"demand"`
}

type TransferRequest struct {
	From *string `json:"from"`
	To   *string `json:"to"`
	Qty  *int    `json:"qty"`
}

type MovementResponse struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	Kind           string `json:"kind"`
	From           string `json:"from,omitempty"`
	To             string `json:"to,omitempty"`
	Quantity       int    `json:"quantity"`
	PreviousDemand int    `json:"previous_demand"`
	Demand         int    `json:"demand"`
	CreatedAt      string `json:"created_at"`
}

func newMovementResponse(m models.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Kind:           string(m.Kind),
		From:           m.From,
		To:             m.To,
		Quantity:       m.Quantity,
		PreviousDemand: m.PreviousDemand,
		Demand:         m.Demand,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

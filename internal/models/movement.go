package models

import "time"

type MovementKind string

const (
	MovementDemand   MovementKind = "demand"
	MovementTransfer MovementKind = "transfer"
)

// Movement records one applied mutation on a product.
type Movement struct {
	ID             string       `json:"id"`
	ProductID      string       `json:"product_id"`
	Kind           MovementKind `json:"kind"`
	From           string       `json:"from,omitempty"`
	To             string       `json:"to,omitempty"`
	Quantity       int          `json:"quantity"`
	PreviousDemand int          `json:"previous_demand"`
	Demand         int          `json:"demand"`
	CreatedAt      time.Time    `json:"created_at"`
}

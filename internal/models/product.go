package models

// Product represents a product entity in the inventory system.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
}

// Status classifies the product by comparing stock against demand.
func (p Product) Status() Status {
	switch {
	case p.Stock > p.Demand:
		return StatusHealthy
	case p.Stock == p.Demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

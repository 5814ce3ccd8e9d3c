package models

// Warehouse is a storage location referenced by Product.Warehouse.
type Warehouse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

package repo

import (
	"fmt"

	"github.com/rogerio-castellano/supplysight/internal/models"
)

// SeedProducts is the product list the service starts with.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Aluminum Plate", SKU: "ALP-05-200", Warehouse: "BLR-A", Stock: 200, Demand: 150},
		{ID: "P-1006", Name: "Rubber Gasket", SKU: "RUB-02-100", Warehouse: "PNQ-C", Stock: 300, Demand: 250},
		{ID: "P-1007", Name: "Copper Wire", SKU: "COP-01-500", Warehouse: "DEL-B", Stock: 75, Demand: 60},
		{ID: "P-1008", Name: "Steel Screw", SKU: "SCR-06-300", Warehouse: "BLR-A", Stock: 120, Demand: 100},
		{ID: "P-1009", Name: "Plastic Clip", SKU: "PLC-03-150", Warehouse: "PNQ-C", Stock: 90, Demand: 95},
		{ID: "P-1010", Name: "Ceramic Insulator", SKU: "CER-04-80", Warehouse: "DEL-B", Stock: 45, Demand: 40},
	}
}

// SeedWarehouses is the warehouse list the service starts with.
func SeedWarehouses() []models.Warehouse {
	return []models.Warehouse{
		{Code: "BLR-A", Name: "Bangalore Central", City: "Bangalore", Country: "India"},
		{Code: "DEL-B", Name: "Delhi North", City: "Delhi", Country: "India"},
		{Code: "PNQ-C", Name: "Pune West", City: "Pune", Country: "India"},
		{Code: "MUM-D", Name: "Mumbai Port", City: "Mumbai", Country: "India"},
		{Code: "CHN-E", Name: "Chennai South", City: "Chennai", Country: "India"},
	}
}

// Seed loads the seed lists into the given repositories.
func Seed(products ProductRepository, warehouses WarehouseRepository) error {
	for _, w := range SeedWarehouses() {
		if _, err := warehouses.Create(w); err != nil {
			return fmt.Errorf("seed warehouse %s: %w", w.Code, err)
		}
	}
	for _, p := range SeedProducts() {
		if _, err := products.Create(p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	return nil
}

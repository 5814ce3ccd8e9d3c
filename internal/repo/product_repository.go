package repo

import "github.com/rogerio-castellano/supplysight/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
	// Update applies fn to a copy of the product and stores the result only
	// when fn returns nil. The read-modify-write is atomic to other callers.
	Update(id string, fn func(p *models.Product) error) (models.Product, error)
}

package repo

import (
	"strings"
	"sync"

	"github.com/rogerio-castellano/supplysight/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are keyed by ID and listed in insertion order.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Search != "" {
		needle := strings.ToLower(pf.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.SKU), needle) &&
			!strings.Contains(strings.ToLower(p.ID), needle) {
			return false
		}
	}
	if pf.Warehouse != "" && p.Warehouse != pf.Warehouse {
		return false
	}
	if pf.Status.IsKnown() && p.Status() != pf.Status {
		return false
	}
	return true
}

// Filter returns the page of matching products and the total match count.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, id := range r.order {
		if p := r.products[id]; matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}

	start, end := paginate(len(filtered), pf.Offset, pf.Limit)
	return filtered[start:end], len(filtered), nil
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.products[id])
	}
	return all, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Update implements ProductRepository.
func (r *InMemoryProductRepository) Update(id string, fn func(p *models.Product) error) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	if err := fn(&p); err != nil {
		return models.Product{}, err
	}
	p.ID = id
	r.products[id] = p
	return p, nil
}

package repo

import (
	"sync"

	"github.com/rogerio-castellano/supplysight/internal/models"
)

type InMemoryWarehouseRepository struct {
	mu         sync.RWMutex
	warehouses []models.Warehouse
}

func NewInMemoryWarehouseRepository() *InMemoryWarehouseRepository {
	return &InMemoryWarehouseRepository{
		warehouses: []models.Warehouse{},
	}
}

func (r *InMemoryWarehouseRepository) Create(w models.Warehouse) (models.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.warehouses {
		if existing.Code == w.Code {
			return models.Warehouse{}, ErrDuplicatedValueUnique
		}
	}
	r.warehouses = append(r.warehouses, w)
	return w, nil
}

func (r *InMemoryWarehouseRepository) GetAll() ([]models.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Warehouse, len(r.warehouses))
	copy(out, r.warehouses)
	return out, nil
}

func (r *InMemoryWarehouseRepository) GetByCode(code string) (models.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.warehouses {
		if w.Code == code {
			return w, nil
		}
	}
	return models.Warehouse{}, ErrWarehouseNotFound
}

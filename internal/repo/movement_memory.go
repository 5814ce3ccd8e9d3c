package repo

import (
	"sync"

	"github.com/rogerio-castellano/supplysight/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log appends a movement to the journal.
func (r *InMemoryMovementRepository) Log(m models.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = append(r.movements, m)
	return nil
}

// GetByProductID returns all movements for a specific product, optionally filtered by date range and paginated
func (r *InMemoryMovementRepository) GetByProductID(productID string, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Movement{}
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) ||
			(mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}

	start, end := paginate(len(filtered), mf.Offset, mf.Limit)
	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryMovementRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movements), nil
}

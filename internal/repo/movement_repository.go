package repo

import (
	"github.com/rogerio-castellano/supplysight/internal/models"
)

type MovementRepository interface {
	Log(m models.Movement) error
	GetByProductID(productID string, mf MovementFilter) ([]models.Movement, int, error)
	Count() (int, error)
}

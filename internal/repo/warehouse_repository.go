package repo

import "github.com/rogerio-castellano/supplysight/internal/models"

type WarehouseRepository interface {
	Create(w models.Warehouse) (models.Warehouse, error)
	GetAll() ([]models.Warehouse, error)
	GetByCode(code string) (models.Warehouse, error)
}

package repo

import "github.com/rogerio-castellano/supplysight/internal/models"

// ProductFilter selects products. Zero values disable the matching predicate.
type ProductFilter struct {
	Search    string
	Warehouse string
	Status    models.Status
	Offset    *int
	Limit     *int
}

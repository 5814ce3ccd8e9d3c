package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrWarehouseNotFound is returned when no warehouse has the requested code.
	ErrWarehouseNotFound = errors.New("warehouse not found")
	// ErrDuplicatedValueUnique is returned when creating a record whose key already exists.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique key")
)

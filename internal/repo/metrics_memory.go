package repo

import "github.com/rogerio-castellano/supplysight/internal/models"

type InMemoryMetricsRepository struct {
	productRepo ProductRepository
}

func NewInMemoryMetricsRepository(productRepo ProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{productRepo: productRepo}
}

// GetSummary implements MetricsRepository. Pagination fields of pf are
// ignored: the summary always covers every matching product.
func (i *InMemoryMetricsRepository) GetSummary(pf ProductFilter) (models.Summary, error) {
	pf.Offset, pf.Limit = nil, nil

	products, _, err := i.productRepo.Filter(pf)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(products), nil
}

package repo

import "github.com/rogerio-castellano/supplysight/internal/models"

type MetricsRepository interface {
	GetSummary(pf ProductFilter) (models.Summary, error)
}

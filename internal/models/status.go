package models

// Status is the health classification of a product. StatusAll is only
// meaningful as a filter value.
type Status string

const (
	StatusAll      Status = "All"
	StatusHealthy  Status = "Healthy"
	StatusLow      Status = "Low"
	StatusCritical Status = "Critical"
)

// ParseStatus converts s into a Status without validating it. Values other
// than the known classifications are kept as-is and act as "no filter".
func ParseStatus(s string) Status {
	return Status(s)
}

// IsKnown reports whether s is one of the three concrete classifications.
func (s Status) IsKnown() bool {
	switch s {
	case StatusHealthy, StatusLow, StatusCritical:
		return true
	}
	return false
}

package models

// DateLayout is the calendar date format used by KPI points.
const DateLayout = "2006-01-02"

// KPIPoint is an aggregate stock/demand snapshot for one day.
type KPIPoint struct {
	Date   string `json:"date"`
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// KPIRange selects how many days a KPI series covers.
type KPIRange string

const (
	KPIRange7d  KPIRange = "7d"
	KPIRange14d KPIRange = "14d"
	KPIRange30d KPIRange = "30d"
)

// ParseKPIRange returns the matching range, defaulting to 30 days for
// anything unrecognised.
func ParseKPIRange(s string) KPIRange {
	switch KPIRange(s) {
	case KPIRange7d, KPIRange14d:
		return KPIRange(s)
	default:
		return KPIRange30d
	}
}

func (r KPIRange) Days() int {
	switch r {
	case KPIRange7d:
		return 7
	case KPIRange14d:
		return 14
	default:
		return 30
	}
}

package inventory

import (
	"math/rand"
	"sync"
	"time"
)

const (
	baseStock       = 1500
	stockVariation  = 100
	baseDemand      = 1200
	demandVariation = 75
)

// KPIGenerator produces the aggregate stock and demand shown for a day.
type KPIGenerator interface {
	Point(day time.Time) (stock, demand int)
}

// RandomKPIGenerator draws values around fixed baselines. It is safe for
// concurrent use.
type RandomKPIGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomKPIGenerator returns a generator seeded with seed; a zero seed
// uses the current time.
func NewRandomKPIGenerator(seed int64) *RandomKPIGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomKPIGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *RandomKPIGenerator) Point(time.Time) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stock := baseStock + g.rnd.Intn(2*stockVariation) - stockVariation
	demand := baseDemand + g.rnd.Intn(2*demandVariation) - demandVariation
	return max(0, stock), max(0, demand)
}

// Package ban tracks clients that keep hitting the rate limit and bans them
// for a while once they collect enough strikes.
package ban

import (
	"context"
	"time"
)

// LogEntry describes one ban decision.
type LogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Store keeps strike counters and active bans.
type Store interface {
	IsBanned(ctx context.Context, target string) (bool, error)
	// Strike records a rate-limit violation and reports whether target is
	// now banned together with the strikes counted so far.
	Strike(ctx context.Context, target, route string) (banned bool, strikes int, err error)
	// Log returns the bans recorded since the last DrainLog.
	Log(ctx context.Context) ([]LogEntry, error)
	DrainLog(ctx context.Context) ([]LogEntry, error)
}

// Policy is shared by the store implementations.
type Policy struct {
	MaxStrikes int           // strikes that trigger a ban
	Window     time.Duration // strikes older than this are forgotten
	BanTTL     time.Duration
}

func (p Policy) withDefaults() Policy {
	if p.MaxStrikes <= 0 {
		p.MaxStrikes = 20
	}
	if p.Window <= 0 {
		p.Window = time.Minute
	}
	if p.BanTTL <= 0 {
		p.BanTTL = 15 * time.Minute
	}
	return p
}

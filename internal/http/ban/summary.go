package ban

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Summary aggregates a batch of ban log entries.
type Summary struct {
	Total    int
	ByRoute  map[string]int
	ByTarget map[string]int
}

func Summarize(entries []LogEntry) Summary {
	s := Summary{
		Total:    len(entries),
		ByRoute:  make(map[string]int),
		ByTarget: make(map[string]int),
	}
	for _, e := range entries {
		s.ByRoute[e.Route]++
		s.ByTarget[e.Target]++
	}
	return s
}

// ReportSummary drains the ban log of store and logs a summary when there
// were any bans.
func ReportSummary(ctx context.Context, store Store, log zerolog.Logger) {
	entries, err := store.DrainLog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not read ban log")
		return
	}
	if len(entries) == 0 {
		return
	}

	s := Summarize(entries)
	log.Warn().
		Int("total", s.Total).
		Interface("by_route", s.ByRoute).
		Interface("by_target", s.ByTarget).
		Msg("ban summary")
}

// StartSummaryLoop reports a summary every interval until ctx is done.
func StartSummaryLoop(ctx context.Context, store Store, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ReportSummary(ctx, store, log)
		}
	}
}

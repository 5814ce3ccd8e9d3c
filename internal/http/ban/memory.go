package ban

import (
	"context"
	"sync"
	"time"
)

type strikeCounter struct {
	count   int
	expires time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.Mutex
	policy  Policy
	strikes map[string]strikeCounter
	bans    map[string]time.Time
	log     []LogEntry
	now     func() time.Time
}

func NewMemoryStore(p Policy) *MemoryStore {
	return &MemoryStore{
		policy:  p.withDefaults(),
		strikes: make(map[string]strikeCounter),
		bans:    make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) IsBanned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.bans[target]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.bans, target)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Strike(_ context.Context, target, route string) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := s.strikes[target]
	if now.After(c.expires) {
		c = strikeCounter{expires: now.Add(s.policy.Window)}
	}
	c.count++

	if c.count < s.policy.MaxStrikes {
		s.strikes[target] = c
		return false, c.count, nil
	}

	delete(s.strikes, target)
	s.bans[target] = now.Add(s.policy.BanTTL)
	s.log = append(s.log, LogEntry{Target: target, Route: route, Strikes: c.count, Time: now})
	return true, c.count, nil
}

func (s *MemoryStore) Log(context.Context) ([]LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LogEntry, len(s.log))
	copy(out, s.log)
	return out, nil
}

func (s *MemoryStore) DrainLog(context.Context) ([]LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.log
	s.log = nil
	return out, nil
}

package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DailyBanLogKey = "ratelimit:banlog:daily"
	strikesPrefix  = "ratelimit:strikes:"
	banPrefix      = "ratelimit:ban:"
)

// RedisStore shares strikes and bans between instances through Redis.
type RedisStore struct {
	rdb    *redis.Client
	policy Policy
	now    func() time.Time
}

func NewRedisStore(rdb *redis.Client, p Policy) *RedisStore {
	return &RedisStore{rdb: rdb, policy: p.withDefaults(), now: time.Now}
}

func (s *RedisStore) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banPrefix+target).Result()
	if err != nil {
		return false, fmt.Errorf("check ban: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Strike(ctx context.Context, target, route string) (bool, int, error) {
	key := strikesPrefix + target

	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("count strike: %w", err)
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, s.policy.Window).Err(); err != nil {
			return false, int(n), fmt.Errorf("expire strikes: %w", err)
		}
	}
	if int(n) < s.policy.MaxStrikes {
		return false, int(n), nil
	}

	entry, err := json.Marshal(LogEntry{Target: target, Route: route, Strikes: int(n), Time: s.now()})
	if err != nil {
		return false, int(n), err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, banPrefix+target, route, s.policy.BanTTL)
	pipe.Del(ctx, key)
	pipe.RPush(ctx, DailyBanLogKey, entry)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, int(n), fmt.Errorf("store ban: %w", err)
	}
	return true, int(n), nil
}

func (s *RedisStore) Log(ctx context.Context) ([]LogEntry, error) {
	items, err := s.rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read ban log: %w", err)
	}
	return decodeEntries(items), nil
}

// DrainLog reads and clears the ban log in one transaction.
func (s *RedisStore) DrainLog(ctx context.Context) ([]LogEntry, error) {
	pipe := s.rdb.TxPipeline()
	items := pipe.LRange(ctx, DailyBanLogKey, 0, -1)
	pipe.Del(ctx, DailyBanLogKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("drain ban log: %w", err)
	}
	return decodeEntries(items.Val()), nil
}

func decodeEntries(items []string) []LogEntry {
	entries := make([]LogEntry, 0, len(items))
	for _, item := range items {
		var entry LogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

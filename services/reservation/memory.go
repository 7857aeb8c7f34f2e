package reservation

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"slotify/models"

	"github.com/google/uuid"
)

const shardCount = 32

// MemoryLedger is an in-process Ledger. Holds are sharded by key hash so
// claims on different keys never contend; the per-shard mutex is the
// serialized critical section that makes check-and-set atomic per key.
// Expired holds are garbage-collected lazily on the next claim of their key.
type MemoryLedger struct {
	shards [shardCount]ledgerShard
	tokens sync.Map // token -> slot key string
}

type ledgerShard struct {
	mu    sync.Mutex
	holds map[string]models.Reservation
}

// NewMemoryLedger returns an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	l := &MemoryLedger{}
	for i := range l.shards {
		l.shards[i].holds = make(map[string]models.Reservation)
	}
	return l
}

func (l *MemoryLedger) shard(key string) *ledgerShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &l.shards[h.Sum32()%shardCount]
}

// Claim implements Ledger.
func (l *MemoryLedger) Claim(_ context.Context, res models.Reservation, ttl time.Duration) (*models.Reservation, error) {
	key := keyFor(res).String()
	now := time.Now()

	s := l.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.holds[key]; ok {
		if !cur.Expired(now) {
			if cur.HolderID != res.HolderID {
				return nil, ErrConflict
			}
			// Same holder asking again: refresh instead of conflicting.
			cur.ExpiresAt = now.Add(ttl)
			s.holds[key] = cur
			return &cur, nil
		}
		l.tokens.Delete(cur.Token)
	}

	res.Token = uuid.New().String()
	res.CreatedAt = now
	res.ExpiresAt = now.Add(ttl)
	s.holds[key] = res
	l.tokens.Store(res.Token, key)
	return &res, nil
}

// Release implements Ledger.
func (l *MemoryLedger) Release(_ context.Context, token string) error {
	l.remove(token)
	return nil
}

// Confirm implements Ledger.
func (l *MemoryLedger) Confirm(_ context.Context, token string) (*models.Reservation, error) {
	return l.remove(token), nil
}

// remove deletes the hold matching token and returns it, or nil when the
// token is unknown, expired, or the key has since been re-claimed.
func (l *MemoryLedger) remove(token string) *models.Reservation {
	v, ok := l.tokens.Load(token)
	if !ok {
		return nil
	}
	key := v.(string)

	s := l.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	l.tokens.Delete(token)
	cur, ok := s.holds[key]
	if !ok || cur.Token != token {
		return nil
	}
	delete(s.holds, key)
	if cur.Expired(time.Now()) {
		return nil
	}
	return &cur
}

package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotify/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	holdKeyPrefix  = "hold:"
	tokenKeyPrefix = "holdToken:"
)

// claimScript installs a hold unless a live one exists for another holder.
// Both the hold and its token index expire together; Redis TTL is the expiry
// mechanism, so an expired key is simply absent and treated as FREE.
var claimScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
  local obj = cjson.decode(cur)
  if obj.holderId ~= ARGV[2] then
    return false
  end
  redis.call('PEXPIRE', KEYS[1], ARGV[3])
  redis.call('PEXPIRE', ARGV[4] .. obj.token, ARGV[3])
  return cur
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
redis.call('SET', ARGV[4] .. ARGV[5], KEYS[1], 'PX', ARGV[3])
return ARGV[1]
`)

// removeScript resolves the token index and deletes the hold when the token
// still owns it, returning the stored payload. Missing token or mismatched
// hold returns false, which callers treat as an idempotent no-op.
var removeScript = redis.NewScript(`
local slotKey = redis.call('GET', KEYS[1])
if not slotKey then
  return false
end
redis.call('DEL', KEYS[1])
local cur = redis.call('GET', slotKey)
if not cur then
  return false
end
local obj = cjson.decode(cur)
if obj.token ~= ARGV[1] then
  return false
end
redis.call('DEL', slotKey)
return cur
`)

// RedisLedger is a Ledger backed by Redis, for deployments where multiple
// API replicas must agree on holds. Claims are single-key atomic via Lua.
type RedisLedger struct {
	client *redis.Client
}

// NewRedisLedger wraps an initialized Redis client.
func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

// Claim implements Ledger.
func (l *RedisLedger) Claim(ctx context.Context, res models.Reservation, ttl time.Duration) (*models.Reservation, error) {
	now := time.Now()
	res.Token = uuid.New().String()
	res.CreatedAt = now
	res.ExpiresAt = now.Add(ttl)

	payload, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reservation: %w", err)
	}

	slotKey := holdKeyPrefix + keyFor(res).String()
	result, err := claimScript.Run(ctx, l.client,
		[]string{slotKey},
		string(payload), res.HolderID, ttl.Milliseconds(), tokenKeyPrefix, res.Token,
	).Result()
	if err == redis.Nil {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("claim script failed for key %s: %w", slotKey, err)
	}

	stored, ok := result.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected claim script reply %T for key %s", result, slotKey)
	}
	var out models.Reservation
	if err := json.Unmarshal([]byte(stored), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation for key %s: %w", slotKey, err)
	}
	if out.Token != res.Token {
		// Refreshed an existing hold by the same holder; its expiry moved.
		out.ExpiresAt = now.Add(ttl)
	}
	return &out, nil
}

// Release implements Ledger.
func (l *RedisLedger) Release(ctx context.Context, token string) error {
	_, err := l.remove(ctx, token)
	return err
}

// Confirm implements Ledger.
func (l *RedisLedger) Confirm(ctx context.Context, token string) (*models.Reservation, error) {
	return l.remove(ctx, token)
}

func (l *RedisLedger) remove(ctx context.Context, token string) (*models.Reservation, error) {
	result, err := removeScript.Run(ctx, l.client, []string{tokenKeyPrefix + token}, token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("remove script failed for token %s: %w", token, err)
	}
	stored, ok := result.(string)
	if !ok {
		return nil, nil
	}
	var res models.Reservation
	if err := json.Unmarshal([]byte(stored), &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation for token %s: %w", token, err)
	}
	return &res, nil
}

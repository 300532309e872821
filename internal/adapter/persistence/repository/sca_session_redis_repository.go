package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const (
	scaSessionKeyPrefix = "worldpay:sca:"
	scaClaimKeySuffix   = ":claim"
)

// ScaSessionRedisRepository keeps SCA sessions as JSON strings whose key TTL
// is the session expiry. Take uses GETDEL so a session is consumed once;
// Claim uses SET NX on a sibling key that lives as long as the session.
type ScaSessionRedisRepository struct {
	client *redis.Client
	now    func() time.Time
}

var _ interfaces.IScaSessionRepository = (*ScaSessionRedisRepository)(nil)

func NewScaSessionRedisRepository(client *redis.Client) *ScaSessionRedisRepository {
	return &ScaSessionRedisRepository{client: client, now: time.Now}
}

func (r *ScaSessionRedisRepository) Save(ctx context.Context, s entities.ScaSession) error {
	ttl := sessionTTL(s.ExpiresAt, r.now())
	if ttl < 0 {
		return fmt.Errorf("sca session %s already expired", s.ID)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode sca session: %w", err)
	}
	if err := r.client.Set(ctx, scaSessionKey(s.ID), b, ttl).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

func (r *ScaSessionRedisRepository) Get(ctx context.Context, id string) (entities.ScaSession, error) {
	return decodeRedisSession(r.client.Get(ctx, scaSessionKey(id)).Bytes())
}

func (r *ScaSessionRedisRepository) Claim(ctx context.Context, id string) (entities.ScaSession, bool, error) {
	s, err := r.Get(ctx, id)
	if err != nil || s.ID == "" {
		return s, false, err
	}
	ttl := sessionTTL(s.ExpiresAt, r.now())
	if ttl < 0 {
		return entities.ScaSession{}, false, nil
	}
	won, err := r.client.SetNX(ctx, scaClaimKey(id), "1", ttl).Result()
	if err != nil {
		return entities.ScaSession{}, false, fmt.Errorf("redis SETNX error: %w", err)
	}
	s.Initiated = true
	return s, won, nil
}

func (r *ScaSessionRedisRepository) Take(ctx context.Context, id string) (entities.ScaSession, error) {
	s, err := decodeRedisSession(r.client.GetDel(ctx, scaSessionKey(id)).Bytes())
	if err != nil || s.ID == "" {
		return s, err
	}
	if err := r.client.Del(ctx, scaClaimKey(id)).Err(); err != nil {
		log.Printf("[worldpay][store] redis DEL claim failed session_id=%s err=%v", id, err)
	}
	return s, nil
}

func decodeRedisSession(b []byte, err error) (entities.ScaSession, error) {
	if errors.Is(err, redis.Nil) {
		return entities.ScaSession{}, nil
	}
	if err != nil {
		return entities.ScaSession{}, fmt.Errorf("redis GET error: %w", err)
	}
	var s entities.ScaSession
	if err := json.Unmarshal(b, &s); err != nil {
		return entities.ScaSession{}, fmt.Errorf("decode sca session: %w", err)
	}
	return s, nil
}

func scaSessionKey(id string) string {
	return scaSessionKeyPrefix + id
}

func scaClaimKey(id string) string {
	return scaSessionKey(id) + scaClaimKeySuffix
}

// sessionTTL is the time left until expiresAt. Zero means no expiry; a
// negative value means the session has already expired.
func sessionTTL(expiresAt, now time.Time) time.Duration {
	if expiresAt.IsZero() {
		return 0
	}
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return -1
	}
	return ttl
}

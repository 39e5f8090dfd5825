package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"hr-registry/internal/config"
	"hr-registry/internal/domain/skill"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const approvedSkillsKey = "taxonomy:approved"

// Redis caches the approved-skill taxonomy. When the server is
// unreachable every read is a miss and every write is a no-op, so the
// service keeps working against Postgres alone.
type Redis struct {
	client *redis.Client
	logger zerolog.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger zerolog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, taxonomy cache bypassed")
		_ = client.Close()
		return &Redis{client: nil, logger: logger, ttl: cfg.TTL}
	}

	return &Redis{client: client, logger: logger, ttl: cfg.TTL}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn().Err(err).Msg("redis unavailable, taxonomy cache bypassed")
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return fmt.Errorf("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) GetApproved(ctx context.Context) ([]skill.Skill, bool) {
	if r.isUnavailable() {
		return nil, false
	}

	b, err := r.client.Get(ctx, approvedSkillsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.warnUnavailableOnce(err)
		}
		return nil, false
	}
	if len(b) == 0 {
		return nil, false
	}

	var out []skill.Skill
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (r *Redis) SetApproved(ctx context.Context, skills []skill.Skill) {
	if r.isUnavailable() {
		return
	}

	b, err := json.Marshal(skills)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, approvedSkillsKey, b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

func (r *Redis) Invalidate(ctx context.Context) {
	if r.isUnavailable() {
		return
	}
	if err := r.client.Del(ctx, approvedSkillsKey).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

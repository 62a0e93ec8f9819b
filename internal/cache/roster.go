package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/garage-scheduler/internal/dto"
)

const rosterKey = "garage:mechanic_roster"

// Roster caches the public mechanic picker in redis. A nil *Roster is
// a valid no-op cache, so callers never branch on whether redis is
// configured.
type Roster struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRoster(redisURL string) *Roster {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, roster cache disabled: %v", err)
		return nil
	}

	return &Roster{
		rdb: redis.NewClient(opt),
		ttl: 5 * time.Minute,
	}
}

func (r *Roster) Get(ctx context.Context) ([]dto.MechanicOptionDTO, bool) {
	if r == nil {
		return nil, false
	}

	raw, err := r.rdb.Get(ctx, rosterKey).Bytes()
	if err != nil {
		return nil, false
	}

	var options []dto.MechanicOptionDTO
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, false
	}
	return options, true
}

func (r *Roster) Set(ctx context.Context, options []dto.MechanicOptionDTO) {
	if r == nil {
		return
	}

	raw, err := json.Marshal(options)
	if err != nil {
		return
	}

	if err := r.rdb.Set(ctx, rosterKey, raw, r.ttl).Err(); err != nil {
		log.Println("roster cache set failed:", err)
	}
}

// Invalidate drops the cached roster after any mechanic mutation.
func (r *Roster) Invalidate(ctx context.Context) {
	if r == nil {
		return
	}

	if err := r.rdb.Del(ctx, rosterKey).Err(); err != nil {
		log.Println("roster cache invalidate failed:", err)
	}
}

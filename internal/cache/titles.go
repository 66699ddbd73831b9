package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TitleCache keeps rendered title payloads (including the derived rating)
// in redis so listing-heavy read traffic doesn't recompute the aggregate
// on every request. A nil client turns every method into a no-op, which
// is also the testing/mock mode.
type TitleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTitleCache(client *redis.Client, ttl time.Duration) *TitleCache {
	return &TitleCache{client: client, ttl: ttl}
}

func titleKey(id int64) string {
	return fmt.Sprintf("title:%d", id)
}

// Get unmarshals the cached payload into dest and reports whether it hit.
func (c *TitleCache) Get(ctx context.Context, id int64, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, titleKey(id)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores the payload; marshal or transport errors are swallowed, the
// cache is an optimization and never a source of truth.
func (c *TitleCache) Set(ctx context.Context, id int64, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, titleKey(id), raw, c.ttl)
}

// Invalidate drops the payload after a review write changes the rating.
func (c *TitleCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, titleKey(id))
}

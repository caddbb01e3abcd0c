package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const slotsTTL = 30 * time.Second

// SlotCache keeps the computed slot projection hot for a few seconds. It is
// purely an optimization: every write path invalidates, every error degrades
// to a recompute. A nil *SlotCache is a valid no-op cache.
type SlotCache struct {
	client *redis.Client
}

func NewSlotCache(addr string) *SlotCache {
	if addr == "" {
		return nil
	}
	return &SlotCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(duration int) string {
	return fmt.Sprintf("slots:%d", duration)
}

func (c *SlotCache) Get(ctx context.Context, duration int, out any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key(duration)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("slot cache get error:", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

func (c *SlotCache) Set(ctx context.Context, duration int, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(duration), raw, slotsTTL).Err(); err != nil {
		log.Println("slot cache set error:", err)
	}
}

// Invalidate drops every cached duration. Called after any window or booking
// write.
func (c *SlotCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, key(30), key(60), key(90)).Err(); err != nil {
		log.Println("slot cache invalidate error:", err)
	}
}

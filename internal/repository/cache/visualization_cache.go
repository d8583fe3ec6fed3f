package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VisualizationCache keeps rendered visualization payloads in Redis, keyed
// by file id plus the exact query window. All operations are best effort:
// a Redis outage degrades to cache misses, never to request failures.
type VisualizationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVisualizationCache(rdb *redis.Client) *VisualizationCache {
	return &VisualizationCache{
		rdb: rdb,
		ttl: 10 * time.Minute,
	}
}

// Key hashes the JSON-encoded curve list so names containing the key
// separator cannot alias another selection.
func (c *VisualizationCache) Key(fileID string, curves []string, start, end float64) string {
	encoded, _ := json.Marshal(curves)
	return fmt.Sprintf("viz:%s:%x:%g:%g", fileID, sha256.Sum256(encoded), start, end)
}

func (c *VisualizationCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *VisualizationCache) Set(ctx context.Context, key string, payload []byte) {
	if c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, key, payload, c.ttl)
}

// InvalidateFile drops every cached window for the given file.
func (c *VisualizationCache) InvalidateFile(ctx context.Context, fileID string) {
	if c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("viz:%s:*", fileID), 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}

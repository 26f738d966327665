package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"career-match/internal/domain"
)

// ResultCache guarda resultados de assessment por fingerprint de respuestas.
// Get devuelve (resultado, true, nil) en un hit y (_, false, nil) en un miss.
type ResultCache interface {
	Get(ctx context.Context, fingerprint string) (domain.AssessmentResult, bool, error)
	Set(ctx context.Context, fingerprint string, result domain.AssessmentResult, ttl time.Duration) error
	Invalidate(ctx context.Context, fingerprint string) error
}

type cachedResult struct {
	result  domain.AssessmentResult
	expires time.Time
}

type memoryResultCache struct {
	mu    sync.Mutex
	items map[string]cachedResult
	now   func() time.Time
}

func NewMemoryResultCache() ResultCache {
	return &memoryResultCache{
		items: make(map[string]cachedResult),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (c *memoryResultCache) Get(_ context.Context, fingerprint string) (domain.AssessmentResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[fingerprint]
	if !ok {
		return domain.AssessmentResult{}, false, nil
	}
	if !item.expires.IsZero() && c.now().After(item.expires) {
		delete(c.items, fingerprint)
		return domain.AssessmentResult{}, false, nil
	}
	return item.result, true, nil
}

func (c *memoryResultCache) Set(_ context.Context, fingerprint string, result domain.AssessmentResult, ttl time.Duration) error {
	if strings.TrimSpace(fingerprint) == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	item := cachedResult{result: result}
	if ttl > 0 {
		item.expires = c.now().Add(ttl)
	}
	c.items[fingerprint] = item
	return nil
}

func (c *memoryResultCache) Invalidate(_ context.Context, fingerprint string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, fingerprint)
	return nil
}

// redisKV es el subconjunto de comandos de redis que usa la cache.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisResultCache struct {
	client redisKV
	prefix string
}

func NewRedisResultCache(client *redis.Client) ResultCache {
	if client == nil {
		return nil
	}
	return newRedisResultCache(client)
}

func newRedisResultCache(client redisKV) *redisResultCache {
	return &redisResultCache{
		client: client,
		prefix: "assess:result:",
	}
}

func (c *redisResultCache) Get(ctx context.Context, fingerprint string) (domain.AssessmentResult, bool, error) {
	if strings.TrimSpace(fingerprint) == "" {
		return domain.AssessmentResult{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.AssessmentResult{}, false, nil
	}
	if err != nil {
		return domain.AssessmentResult{}, false, err
	}
	var result domain.AssessmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.AssessmentResult{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	return result, true, nil
}

func (c *redisResultCache) Set(ctx context.Context, fingerprint string, result domain.AssessmentResult, ttl time.Duration) error {
	if strings.TrimSpace(fingerprint) == "" {
		return nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode cached result: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+fingerprint, payload, ttl).Err()
}

func (c *redisResultCache) Invalidate(ctx context.Context, fingerprint string) error {
	if strings.TrimSpace(fingerprint) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Del(ctx, c.prefix+fingerprint).Err()
}

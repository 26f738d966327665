package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestMemorySubmissionLimiter(t *testing.T) {
	l := NewMemorySubmissionLimiter(time.Minute, 2)
	if !l.Allow("user-1") || !l.Allow(" USER-1 ") {
		t.Fatalf("expected first two submissions to pass")
	}
	if l.Allow("user-1") {
		t.Fatalf("expected third submission to be limited")
	}
	if !l.Allow("user-2") {
		t.Fatalf("limits must be per key")
	}
	if l.Allow("  ") {
		t.Fatalf("expected empty key to be rejected")
	}
}

func TestRedisSubmissionLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisSubmissionLimiter
		if !l.Allow("user-1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("key normalized and window in seconds", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 1}
		l := &redisSubmissionLimiter{client: mock, window: 2 * time.Minute, max: 3, prefix: "assess:rl:"}
		if !l.Allow(" User-1 ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "assess:rl:user-1" {
			t.Fatalf("unexpected key, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("expected TTL seconds=120, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisSubmissionAllowScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisSubmissionLimiter{client: &mockRedisEvaler{result: 4}, window: time.Minute, max: 3, prefix: "assess:rl:"}
		if l.Allow("user-1") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisSubmissionLimiter{client: &mockRedisEvaler{err: errors.New("redis down")}, window: time.Minute, max: 3, prefix: "assess:rl:"}
		if !l.Allow("user-1") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}

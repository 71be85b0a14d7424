package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garnizeh/jobboard/internal/cache"
	"github.com/garnizeh/jobboard/internal/config"
)

func TestCache_UnreachableServer(t *testing.T) {
	c := New(config.CacheConfig{RedisURL: "127.0.0.1:1", TTL: time.Minute})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var s string
	err := c.Get(ctx, "k", &s)
	if err == nil {
		t.Fatalf("expected error from unreachable server")
	}
	if errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("connection errors must not look like a miss")
	}
	if err := c.Ping(ctx); err == nil {
		t.Fatalf("expected ping to fail")
	}
}

func TestNew_DefaultTTL(t *testing.T) {
	c := New(config.CacheConfig{RedisURL: "127.0.0.1:1", TTL: 3 * time.Minute})
	defer c.Close()

	if c.defaultTTL != 3*time.Minute {
		t.Fatalf("unexpected default ttl %v", c.defaultTTL)
	}
}

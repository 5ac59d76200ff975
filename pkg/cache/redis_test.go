package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) Cache {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), srv.Addr())
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	if err := c.Set(ctx, "border:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "border:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != "<svg/>" {
		t.Errorf("data = %q, want %q", data, "<svg/>")
	}
}

func TestRedisCache_Miss(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	data, hit, err := c.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit || data != nil {
		t.Error("missing key should be a clean miss")
	}
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, hit, _ := c.Get(ctx, "key")
	if hit {
		t.Error("entry survived Delete")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestRedisCache_ConnectFailure(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "127.0.0.1:1")
	if err == nil {
		t.Error("expected connection error for unreachable address")
	}
}

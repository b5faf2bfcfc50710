package config

import (
    "testing"
    "time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
    for _, k := range []string{
        "RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS",
        "RATE_LIMIT_REFILL_INTERVAL", "RATE_LIMIT_TTL", "RATE_LIMIT_PREFIX", "RATE_LIMIT_DEBUG",
    } {
        t.Setenv(k, "")
    }
    cfg := LoadRateLimitConfig()
    if !cfg.Enabled {
        t.Fatal("limiter should default on")
    }
    if cfg.Capacity != 30 || cfg.RefillTokens != 1 {
        t.Fatalf("capacity/refill = %d/%d, want 30/1", cfg.Capacity, cfg.RefillTokens)
    }
    if cfg.RefillInterval != 2*time.Second || cfg.TTL != 10*time.Minute {
        t.Fatalf("interval/ttl = %v/%v", cfg.RefillInterval, cfg.TTL)
    }
    if cfg.Prefix != "rl" {
        t.Fatalf("prefix = %q, want rl", cfg.Prefix)
    }
}

func TestLoadRateLimitConfigFloors(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
    t.Setenv("RATE_LIMIT_TTL", "1s")
    cfg := LoadRateLimitConfig()
    if cfg.Capacity != 1 || cfg.RefillTokens != 1 {
        t.Fatalf("floors not applied: capacity=%d refill=%d", cfg.Capacity, cfg.RefillTokens)
    }
    // TTL must outlive several refill intervals or buckets reset early.
    if cfg.TTL < 5*cfg.RefillInterval {
        t.Fatalf("ttl %v below floor for interval %v", cfg.TTL, cfg.RefillInterval)
    }
}

func TestLoadRateLimitConfigEnv(t *testing.T) {
    t.Setenv("RATE_LIMIT_ENABLED", "off")
    t.Setenv("RATE_LIMIT_CAPACITY", "100")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "500ms")
    t.Setenv("RATE_LIMIT_PREFIX", "park")
    cfg := LoadRateLimitConfig()
    if cfg.Enabled {
        t.Fatal("RATE_LIMIT_ENABLED=off ignored")
    }
    if cfg.Capacity != 100 || cfg.RefillInterval != 500*time.Millisecond || cfg.Prefix != "park" {
        t.Fatalf("env overrides not applied: %+v", cfg)
    }
}

func TestEnvHelpers(t *testing.T) {
    t.Setenv("X_STR", "")
    if envStr("X_STR", "fallback") != "fallback" {
        t.Fatal("empty string must fall back")
    }
    t.Setenv("X_INT", "abc")
    if envInt("X_INT", 7) != 7 {
        t.Fatal("unparseable int must fall back")
    }
    t.Setenv("X_BOOL", "maybe")
    if envBool("X_BOOL", true) != true {
        t.Fatal("unparseable bool must fall back")
    }
    t.Setenv("X_DUR", "soon")
    if envDur("X_DUR", time.Minute) != time.Minute {
        t.Fatal("unparseable duration must fall back")
    }
}

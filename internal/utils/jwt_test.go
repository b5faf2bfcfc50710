package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
    secret := "test-secret"
    at, err := NewAccessToken(secret, 42, "ADMIN", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if at.Token == "" {
        t.Fatal("empty token string")
    }
    if remain := time.Until(at.Exp); remain < 14*time.Minute || remain > 15*time.Minute {
        t.Fatalf("expiry %v is not ~15 minutes out", remain)
    }

    parsed, err := jwt.Parse(at.Token, func(tok *jwt.Token) (any, error) {
        return []byte(secret), nil
    })
    if err != nil || !parsed.Valid {
        t.Fatalf("parse signed token: %v", err)
    }
    claims := parsed.Claims.(jwt.MapClaims)
    if claims["role"] != "ADMIN" {
        t.Fatalf("role claim = %v, want ADMIN", claims["role"])
    }
    // Numeric claims come back as float64 from encoding/json.
    if sub, ok := claims["sub"].(float64); !ok || uint64(sub) != 42 {
        t.Fatalf("sub claim = %v, want 42", claims["sub"])
    }
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
    at, err := NewAccessToken("right", 1, "STAFF", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if _, err := jwt.Parse(at.Token, func(tok *jwt.Token) (any, error) {
        return []byte("wrong"), nil
    }); err == nil {
        t.Fatal("token verified with the wrong secret")
    }
}

func TestNewRefreshToken(t *testing.T) {
    a, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if len(a.Raw) != 96 {
        t.Fatalf("raw length = %d, want 96", len(a.Raw))
    }
    b, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if a.Raw == b.Raw {
        t.Fatal("two refresh tokens collided")
    }
}

func TestHashRefreshRaw(t *testing.T) {
    h1 := HashRefreshRaw("abc")
    h2 := HashRefreshRaw("abc")
    if h1 != h2 {
        t.Fatal("hash is not deterministic")
    }
    if len(h1) != 64 {
        t.Fatalf("hash length = %d, want 64", len(h1))
    }
    if h1 == HashRefreshRaw("abd") {
        t.Fatal("different inputs hashed equal")
    }
}

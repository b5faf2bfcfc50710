package utils

import (
    "testing"

    "golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
    hash, err := HashPassword("hunter22", bcrypt.MinCost)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if hash == "hunter22" {
        t.Fatal("password stored in plaintext")
    }
    if !VerifyPassword(hash, "hunter22") {
        t.Fatal("correct password rejected")
    }
    if VerifyPassword(hash, "hunter23") {
        t.Fatal("wrong password accepted")
    }
}

func TestHashPasswordDefaultCost(t *testing.T) {
    hash, err := HashPassword("swordfish", 0)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    cost, err := bcrypt.Cost([]byte(hash))
    if err != nil {
        t.Fatalf("Cost: %v", err)
    }
    if cost != bcrypt.DefaultCost {
        t.Fatalf("cost = %d, want default %d", cost, bcrypt.DefaultCost)
    }
}

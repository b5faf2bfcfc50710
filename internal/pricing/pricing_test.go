package pricing

import (
    "testing"
    "time"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
)

func TestSessionSubtotal(t *testing.T) {
    r := DefaultRates()

    // 2 adults + 1 kid, one hour: 2*899.00 + 500.00 = 2298.00
    got := SessionSubtotal(r, GuestCounts{Adults: 2, Kids: 1}, 60)
    if got != 229800 {
        t.Fatalf("60min subtotal = %d, want 229800", got)
    }

    // Two-hour sessions add the surcharge per jumper, not per spectator.
    got = SessionSubtotal(r, GuestCounts{Adults: 2, Kids: 1, Spectators: 2}, 120)
    want := int64(229800 + 2*15000 + 3*50000)
    if got != want {
        t.Fatalf("120min subtotal = %d, want %d", got, want)
    }

    if got := SessionSubtotal(r, GuestCounts{}, 60); got != 0 {
        t.Fatalf("empty party subtotal = %d, want 0", got)
    }
}

func TestPartySubtotal(t *testing.T) {
    pkg := model.PartyPackage{PricePaise: 150000, MinParticipants: 10}

    // Below the minimum the package still charges for the minimum.
    if got := PartySubtotal(pkg, 6); got != 1500000 {
        t.Fatalf("below-min subtotal = %d, want 1500000", got)
    }
    if got := PartySubtotal(pkg, 12); got != 1800000 {
        t.Fatalf("above-min subtotal = %d, want 1800000", got)
    }
}

func activeVoucher() *model.Voucher {
    return &model.Voucher{
        ID:            7,
        Code:          "SAVE10",
        DiscountType:  model.DiscountPercentage,
        DiscountValue: 10,
        IsActive:      true,
    }
}

func TestVoucherDiscountPercentage(t *testing.T) {
    now := time.Now().UTC()
    v := activeVoucher()

    if got := VoucherDiscount(v, 100000, now); got != 10000 {
        t.Fatalf("10%% of 100000 = %d, want 10000", got)
    }
    // Half-up rounding: 10% of 335 paise is 33.5, rounds to 34.
    if got := VoucherDiscount(v, 335, now); got != 34 {
        t.Fatalf("rounded discount = %d, want 34", got)
    }
}

func TestVoucherDiscountFixedClamped(t *testing.T) {
    now := time.Now().UTC()
    v := &model.Voucher{
        ID:            3,
        Code:          "FLAT500",
        DiscountType:  model.DiscountFixed,
        DiscountValue: 50000,
        IsActive:      true,
    }
    if got := VoucherDiscount(v, 120000, now); got != 50000 {
        t.Fatalf("fixed discount = %d, want 50000", got)
    }
    // Never discount below zero payable.
    if got := VoucherDiscount(v, 30000, now); got != 30000 {
        t.Fatalf("clamped discount = %d, want 30000", got)
    }
}

func TestVoucherLenientFallback(t *testing.T) {
    now := time.Now().UTC()

    cases := []struct {
        name string
        v    *model.Voucher
    }{
        {"nil", nil},
        {"inactive", func() *model.Voucher { v := activeVoucher(); v.IsActive = false; return v }()},
        {"expired", func() *model.Voucher {
            v := activeVoucher()
            past := now.Add(-time.Hour)
            v.ExpiresAt = &past
            return v
        }()},
        {"exhausted", func() *model.Voucher {
            v := activeVoucher()
            v.UsageLimit = 5
            v.UsedCount = 5
            return v
        }()},
        {"below-minimum", func() *model.Voucher {
            v := activeVoucher()
            v.MinOrderPaise = 500000
            return v
        }()},
    }
    for _, tc := range cases {
        q := Compute(100000, tc.v, now)
        if q.DiscountPaise != 0 {
            t.Fatalf("%s: discount = %d, want 0", tc.name, q.DiscountPaise)
        }
        if q.VoucherID != nil {
            t.Fatalf("%s: voucher id should not be set", tc.name)
        }
        if q.AmountPaise != 100000 {
            t.Fatalf("%s: amount = %d, want full price", tc.name, q.AmountPaise)
        }
    }
}

func TestComputeAppliesVoucher(t *testing.T) {
    now := time.Now().UTC()
    q := Compute(100000, activeVoucher(), now)
    if q.SubtotalPaise != 100000 || q.DiscountPaise != 10000 || q.AmountPaise != 90000 {
        t.Fatalf("quote = %+v, want 100000/10000/90000", q)
    }
    if q.VoucherID == nil || *q.VoucherID != 7 {
        t.Fatalf("voucher id = %v, want 7", q.VoucherID)
    }
    if q.AmountPaise != q.SubtotalPaise-q.DiscountPaise {
        t.Fatalf("amount invariant broken: %+v", q)
    }
}

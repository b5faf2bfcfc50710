// Package pricing computes booking quotes.  All arithmetic is integer
// paise so the two-decimal invariant amount = subtotal - discount holds
// exactly for every persisted booking.  The package is pure: it never
// touches the database, callers load the voucher row and pass it in.
package pricing

import (
    "time"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
)

// Rates carries the per-category session prices in paise.
type Rates struct {
    AdultPaise     int64 // per jumping adult
    KidPaise       int64 // per jumping kid
    SpectatorPaise int64 // per non-jumping spectator
    ExtraHourPaise int64 // per jumper surcharge for 120-minute sessions
}

// DefaultRates returns the park's standard price card (INR).
func DefaultRates() Rates {
    return Rates{
        AdultPaise:     89900,
        KidPaise:       50000,
        SpectatorPaise: 15000,
        ExtraHourPaise: 50000,
    }
}

// GuestCounts is the composition of a session booking.
type GuestCounts struct {
    Adults     int
    Kids       int
    Spectators int
}

// Jumpers returns the number of participants on the equipment.
func (g GuestCounts) Jumpers() int { return g.Adults + g.Kids }

// Total returns the full head count including spectators.
func (g GuestCounts) Total() int { return g.Adults + g.Kids + g.Spectators }

// Quote is the computed pricing breakdown for a booking.
type Quote struct {
    SubtotalPaise int64
    DiscountPaise int64
    AmountPaise   int64
    VoucherID     *uint64 // set only when a voucher discount was applied
}

// SessionSubtotal prices a session booking before any discount.  Sessions
// of 120 minutes pay the extra-hour surcharge per jumper; spectators are
// never charged the surcharge.
func SessionSubtotal(r Rates, g GuestCounts, durationMin int) int64 {
    sub := int64(g.Adults)*r.AdultPaise +
        int64(g.Kids)*r.KidPaise +
        int64(g.Spectators)*r.SpectatorPaise
    if durationMin >= 120 {
        sub += int64(g.Jumpers()) * r.ExtraHourPaise
    }
    return sub
}

// PartySubtotal prices a party booking.  Packages charge per child with a
// minimum head count; adults and spectators are included in the package.
func PartySubtotal(pkg model.PartyPackage, kids int) int64 {
    billed := kids
    if billed < pkg.MinParticipants {
        billed = pkg.MinParticipants
    }
    return pkg.PricePaise * int64(billed)
}

// VoucherEligible reports whether v can discount an order of the given
// subtotal at the given instant.  A nil voucher is never eligible.
func VoucherEligible(v *model.Voucher, subtotalPaise int64, now time.Time) bool {
    if v == nil || !v.IsActive {
        return false
    }
    if v.ExpiresAt != nil && v.ExpiresAt.Before(now) {
        return false
    }
    if v.UsageLimit > 0 && v.UsedCount >= v.UsageLimit {
        return false
    }
    if v.MinOrderPaise > 0 && subtotalPaise < v.MinOrderPaise {
        return false
    }
    return true
}

// VoucherDiscount returns the discount an eligible voucher grants on the
// subtotal, clamped so the payable amount never goes negative.  Percentage
// discounts round half-up to the nearest paisa.  An ineligible voucher
// yields zero — the lenient fallback the booking flow relies on.
func VoucherDiscount(v *model.Voucher, subtotalPaise int64, now time.Time) int64 {
    if !VoucherEligible(v, subtotalPaise, now) {
        return 0
    }
    var disc int64
    switch v.DiscountType {
    case model.DiscountPercentage:
        disc = (subtotalPaise*v.DiscountValue + 50) / 100
    case model.DiscountFixed:
        disc = v.DiscountValue
    default:
        return 0
    }
    if disc < 0 {
        disc = 0
    }
    if disc > subtotalPaise {
        disc = subtotalPaise
    }
    return disc
}

// Compute builds the final quote for a subtotal and optional voucher.  A
// missing, inactive, expired, exhausted or below-minimum voucher is not an
// error: the booking proceeds at full price with a zero discount.  The
// caller is responsible for redeeming the voucher (usage increment) in the
// same transaction that persists the booking when Quote.VoucherID is set.
func Compute(subtotalPaise int64, v *model.Voucher, now time.Time) Quote {
    q := Quote{SubtotalPaise: subtotalPaise}
    q.DiscountPaise = VoucherDiscount(v, subtotalPaise, now)
    if q.DiscountPaise > 0 && v != nil {
        id := v.ID
        q.VoucherID = &id
    }
    q.AmountPaise = q.SubtotalPaise - q.DiscountPaise
    return q
}

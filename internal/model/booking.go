package model

import "time"

// Booking is a session booking: an open-jump slot for a party of adults,
// kids and spectators.  The numeric ID stays internal; PublicID is the
// only handle handed to customers (printed on tickets, used for
// self-service lookup), so tickets cannot be enumerated.
//
// All money fields are int64 paise.  AmountPaise is always recomputed
// server-side as SubtotalPaise - DiscountPaise; client-supplied totals are
// ignored.
//
// Fields:
//  ID            – primary key identifier.
//  PublicID      – immutable UUID exposed to customers.
//  Name/Email/Phone – contact details captured at booking time.
//  Date          – visit date (date only, park-local).
//  Time          – slot start, "HH:MM" 24h.
//  DurationMin   – session length in minutes (60 or 120).
//  Adults/Kids/Spectators – guest counts, each >= 0.
//  SubtotalPaise – price before discount.
//  DiscountPaise – voucher discount applied.
//  AmountPaise   – SubtotalPaise - DiscountPaise, never negative.
//  VoucherCode   – code as submitted, if any.
//  VoucherID     – resolved voucher, set only when a discount applied.
//  CustomerID    – matched or created customer record.
//  BookingStatus / PaymentStatus / WaiverStatus – independent enums, see status.go.
//  CreatedAt/UpdatedAt – row timestamps.
type Booking struct {
    ID            uint64    // bookings.id
    PublicID      string    // bookings.public_id
    Name          string    // bookings.name
    Email         string    // bookings.email
    Phone         string    // bookings.phone
    Date          string    // bookings.date (YYYY-MM-DD)
    Time          string    // bookings.time (HH:MM)
    DurationMin   int       // bookings.duration_min
    Adults        int       // bookings.adults
    Kids          int       // bookings.kids
    Spectators    int       // bookings.spectators
    SubtotalPaise int64     // bookings.subtotal_paise
    DiscountPaise int64     // bookings.discount_paise
    AmountPaise   int64     // bookings.amount_paise
    VoucherCode   *string   // bookings.voucher_code (nullable)
    VoucherID     *uint64   // bookings.voucher_id (nullable)
    CustomerID    *uint64   // bookings.customer_id (nullable)
    BookingStatus string    // bookings.booking_status
    PaymentStatus string    // bookings.payment_status
    WaiverStatus  string    // bookings.waiver_status
    CreatedAt     time.Time // bookings.created_at
    UpdatedAt     time.Time // bookings.updated_at
}

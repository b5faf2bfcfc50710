package model

import "time"

// PartyBooking is a birthday-party booking.  It shares the session
// booking's shape (public UUID, contact details, pricing breakdown, three
// independent statuses) and adds the package, birthday-child metadata and
// add-on flags.  The participant roster is not stored here: each
// participant becomes a Waiver row referencing this booking.
type PartyBooking struct {
    ID                uint64    // party_bookings.id
    PublicID          string    // party_bookings.public_id
    Name              string    // party_bookings.name
    Email             string    // party_bookings.email
    Phone             string    // party_bookings.phone
    Date              string    // party_bookings.date (YYYY-MM-DD)
    Time              string    // party_bookings.time (HH:MM)
    DurationMin       int       // party_bookings.duration_min
    PackageName       string    // party_bookings.package_name
    Adults            int       // party_bookings.adults
    Kids              int       // party_bookings.kids
    Spectators        int       // party_bookings.spectators
    SubtotalPaise     int64     // party_bookings.subtotal_paise
    DiscountPaise     int64     // party_bookings.discount_paise
    AmountPaise       int64     // party_bookings.amount_paise
    VoucherCode       *string   // party_bookings.voucher_code (nullable)
    VoucherID         *uint64   // party_bookings.voucher_id (nullable)
    CustomerID        *uint64   // party_bookings.customer_id (nullable)
    BirthdayChildName *string   // party_bookings.birthday_child_name (nullable)
    BirthdayChildAge  *int      // party_bookings.birthday_child_age (nullable)
    Decorations       bool      // party_bookings.decorations
    Catering          bool      // party_bookings.catering
    Cake              bool      // party_bookings.cake
    Photographer      bool      // party_bookings.photographer
    BookingStatus     string    // party_bookings.booking_status
    PaymentStatus     string    // party_bookings.payment_status
    WaiverStatus      string    // party_bookings.waiver_status
    CreatedAt         time.Time // party_bookings.created_at
    UpdatedAt         time.Time // party_bookings.updated_at
}

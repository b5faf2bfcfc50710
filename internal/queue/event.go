// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a public visitor submits a session
// booking. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
    BookingID    uint64 `json:"booking_id"`
    PublicID     string `json:"public_id"`
    CustomerName string `json:"customer_name"`
    Email        string `json:"email"`
    Date         string `json:"date"`
    Time         string `json:"time"`
    Adults       int    `json:"adults"`
    Kids         int    `json:"kids"`
    Spectators   int    `json:"spectators"`
    AmountPaise  int64  `json:"amount_paise"`
    VoucherCode  string `json:"voucher_code,omitempty"`
    CreatedAt    string `json:"created_at"`
}

// PartyCreatedEvent is published when a public visitor books a birthday
// party package.
type PartyCreatedEvent struct {
    PartyBookingID uint64 `json:"party_booking_id"`
    PublicID       string `json:"public_id"`
    CustomerName   string `json:"customer_name"`
    Email          string `json:"email"`
    PackageName    string `json:"package_name"`
    Date           string `json:"date"`
    Time           string `json:"time"`
    Kids           int    `json:"kids"`
    AmountPaise    int64  `json:"amount_paise"`
    CreatedAt      string `json:"created_at"`
}

// BookingStatusChangedEvent is published when staff move a booking or party
// booking to a new lifecycle status.
type BookingStatusChangedEvent struct {
    BookingType string `json:"booking_type"` // SESSION or PARTY
    BookingID   uint64 `json:"booking_id"`
    PublicID    string `json:"public_id"`
    FromStatus  string `json:"from_status"`
    ToStatus    string `json:"to_status"`
    ChangedBy   uint64 `json:"changed_by"`
    ChangedAt   string `json:"changed_at"`
}

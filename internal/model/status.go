package model

// Status enumerations for the booking lifecycle.  A booking carries three
// independent status fields: the booking itself, its payment and its
// waiver coverage.  They are deliberately not a single state machine —
// a cancelled booking can still be marked PAID while a refund is handled
// manually, and waivers arrive on their own schedule.

// Booking statuses.  CANCELLED and COMPLETED are terminal: once reached,
// booking_status can no longer change.  Payment and waiver statuses stay
// mutable regardless.
const (
    BookingPending   = "PENDING"
    BookingConfirmed = "CONFIRMED"
    BookingCancelled = "CANCELLED"
    BookingCompleted = "COMPLETED"
)

// Payment statuses.
const (
    PaymentPending  = "PENDING"
    PaymentPaid     = "PAID"
    PaymentRefunded = "REFUNDED"
    PaymentFailed   = "FAILED"
)

// Waiver statuses, shared by session and party bookings.
const (
    WaiverPending = "PENDING"
    WaiverSigned  = "SIGNED"
)

// ValidBookingStatus reports whether s is a known booking_status value.
func ValidBookingStatus(s string) bool {
    switch s {
    case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
        return true
    }
    return false
}

// ValidPaymentStatus reports whether s is a known payment_status value.
func ValidPaymentStatus(s string) bool {
    switch s {
    case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
        return true
    }
    return false
}

// ValidWaiverStatus reports whether s is a known waiver_status value.
func ValidWaiverStatus(s string) bool {
    switch s {
    case WaiverPending, WaiverSigned:
        return true
    }
    return false
}

// TerminalBookingStatus reports whether s forbids further booking_status
// transitions.
func TerminalBookingStatus(s string) bool {
    return s == BookingCancelled || s == BookingCompleted
}

// CanTransitionBookingStatus decides whether booking_status may move from
// one value to another.  Re-stating the current value is a no-op and always
// allowed; leaving a terminal state is not.  Any live booking may be
// cancelled or completed directly.
func CanTransitionBookingStatus(from, to string) bool {
    if !ValidBookingStatus(from) || !ValidBookingStatus(to) {
        return false
    }
    if from == to {
        return true
    }
    return !TerminalBookingStatus(from)
}

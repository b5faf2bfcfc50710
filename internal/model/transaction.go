package model

import "time"

// Payment methods accepted by the park.
const (
    MethodStripe   = "STRIPE"
    MethodCash     = "CASH"
    MethodRazorpay = "RAZORPAY"
)

// Transaction records one payment attempt against a session booking.  A
// booking can accumulate several rows (retries, partial captures); the
// booking's own payment_status remains the authoritative summary and is
// maintained by staff, not derived from these rows.  Rows are removed
// together with their booking.
//
// Fields:
//  ID            – primary key identifier.
//  BookingID     – booking this attempt belongs to (cascade delete).
//  AmountPaise   – attempted amount in paise.
//  Currency      – ISO currency code, INR by default.
//  TransactionID – external gateway reference, unique.
//  PaymentMethod – STRIPE, CASH or RAZORPAY.
//  Status        – PENDING, PAID, REFUNDED or FAILED.
//  CreatedAt     – creation timestamp.
type Transaction struct {
    ID            uint64    // transactions.id
    BookingID     uint64    // transactions.booking_id
    AmountPaise   int64     // transactions.amount_paise
    Currency      string    // transactions.currency
    TransactionID string    // transactions.transaction_id
    PaymentMethod string    // transactions.payment_method
    Status        string    // transactions.status
    CreatedAt     time.Time // transactions.created_at
}

// ValidPaymentMethod reports whether s is a known payment method.
func ValidPaymentMethod(s string) bool {
    switch s {
    case MethodStripe, MethodCash, MethodRazorpay:
        return true
    }
    return false
}

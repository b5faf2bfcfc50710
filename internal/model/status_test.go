package model

import "testing"

func TestValidStatuses(t *testing.T) {
    for _, s := range []string{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
        if !ValidBookingStatus(s) {
            t.Fatalf("ValidBookingStatus(%q) = false", s)
        }
    }
    for _, s := range []string{"", "pending", "DONE"} {
        if ValidBookingStatus(s) {
            t.Fatalf("ValidBookingStatus(%q) = true", s)
        }
    }
    if !ValidPaymentStatus(PaymentRefunded) || ValidPaymentStatus("REFUND") {
        t.Fatal("payment status validation broken")
    }
    if !ValidWaiverStatus(WaiverSigned) || ValidWaiverStatus("SIGNED ") {
        t.Fatal("waiver status validation broken")
    }
}

func TestTerminalBookingStatus(t *testing.T) {
    if TerminalBookingStatus(BookingPending) || TerminalBookingStatus(BookingConfirmed) {
        t.Fatal("live statuses must not be terminal")
    }
    if !TerminalBookingStatus(BookingCancelled) || !TerminalBookingStatus(BookingCompleted) {
        t.Fatal("cancelled and completed must be terminal")
    }
}

func TestCanTransitionBookingStatus(t *testing.T) {
    cases := []struct {
        from, to string
        want     bool
    }{
        {BookingPending, BookingConfirmed, true},
        {BookingPending, BookingCancelled, true},
        {BookingPending, BookingCompleted, true},
        {BookingConfirmed, BookingCompleted, true},
        {BookingConfirmed, BookingCancelled, true},
        {BookingConfirmed, BookingPending, true},

        // Re-stating the current value is a no-op, even in terminal states.
        {BookingCancelled, BookingCancelled, true},
        {BookingCompleted, BookingCompleted, true},

        // Terminal states never move to anything else.
        {BookingCancelled, BookingPending, false},
        {BookingCancelled, BookingConfirmed, false},
        {BookingCancelled, BookingCompleted, false},
        {BookingCompleted, BookingCancelled, false},
        {BookingCompleted, BookingConfirmed, false},

        // Unknown values are rejected outright.
        {"ARCHIVED", BookingPending, false},
        {BookingPending, "ARCHIVED", false},
        {"", "", false},
    }
    for _, tc := range cases {
        if got := CanTransitionBookingStatus(tc.from, tc.to); got != tc.want {
            t.Fatalf("CanTransitionBookingStatus(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
        }
    }
}

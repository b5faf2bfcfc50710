package model

import "time"

// Participant types for waivers.
const (
    ParticipantAdult = "ADULT"
    ParticipantMinor = "MINOR"
)

// Waiver is a per-participant liability acknowledgment.  Rows are
// append-only evidence: SignedAt is set at creation and never mutated, and
// no public endpoint updates or deletes a waiver.  At most one of
// BookingID / PartyBookingID is set; both nil means a walk-in signer.
//
// Fields:
//  ID               – primary key identifier.
//  Name             – participant name (required).
//  Email/Phone/DOB  – optional signer details.
//  ParticipantType  – ADULT or MINOR.
//  IsPrimarySigner  – true for the adult who signed for a group.
//  EmergencyContact – optional emergency contact line.
//  Version          – waiver document version accepted.
//  IPAddress        – request source IP captured at signing.
//  SignedAt         – signing timestamp, immutable.
//  BookingID        – owning session booking, if any.
//  PartyBookingID   – owning party booking, if any.
type Waiver struct {
    ID               uint64    // waivers.id
    Name             string    // waivers.name
    Email            *string   // waivers.email (nullable)
    Phone            *string   // waivers.phone (nullable)
    DOB              *string   // waivers.dob (nullable, YYYY-MM-DD)
    ParticipantType  string    // waivers.participant_type
    IsPrimarySigner  bool      // waivers.is_primary_signer
    EmergencyContact *string   // waivers.emergency_contact (nullable)
    Version          string    // waivers.version
    IPAddress        string    // waivers.ip_address
    SignedAt         time.Time // waivers.signed_at
    BookingID        *uint64   // waivers.booking_id (nullable)
    PartyBookingID   *uint64   // waivers.party_booking_id (nullable)
}

// ValidParticipantType reports whether s is a known participant type.
func ValidParticipantType(s string) bool {
    return s == ParticipantAdult || s == ParticipantMinor
}

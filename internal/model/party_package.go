package model

import "time"

// PartyPackage is catalog reference data describing a bookable party
// offer.  Pricing is per participating child; a package charges for at
// least MinParticipants even when fewer attend.
type PartyPackage struct {
    ID              uint64    // party_packages.id
    Name            string    // party_packages.name
    Description     *string   // party_packages.description (nullable)
    PricePaise      int64     // party_packages.price_paise (per child)
    MinParticipants int       // party_packages.min_participants
    MaxParticipants int       // party_packages.max_participants
    DurationMin     int       // party_packages.duration_min
    IsActive        bool      // party_packages.is_active
    CreatedAt       time.Time // party_packages.created_at
    UpdatedAt       time.Time // party_packages.updated_at
}

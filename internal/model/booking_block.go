package model

import "time"

// Booking block types.
const (
    BlockClosed       = "CLOSED"
    BlockMaintenance  = "MAINTENANCE"
    BlockPrivateEvent = "PRIVATE_EVENT"
    BlockOther        = "OTHER"
)

// BookingBlock closes a date range for new bookings (maintenance, private
// hire, seasonal closure).  Creation of session and party bookings consults
// active blocks and rejects dates that fall inside one.  A recurring block
// matches its month/day range every year.
type BookingBlock struct {
    ID        uint64    // booking_blocks.id
    StartDate string    // booking_blocks.start_date (YYYY-MM-DD)
    EndDate   string    // booking_blocks.end_date (YYYY-MM-DD)
    Reason    string    // booking_blocks.reason
    BlockType string    // booking_blocks.block_type
    Recurring bool      // booking_blocks.recurring
    CreatedAt time.Time // booking_blocks.created_at
    UpdatedAt time.Time // booking_blocks.updated_at
}

// ValidBlockType reports whether s is a known block type.
func ValidBlockType(s string) bool {
    switch s {
    case BlockClosed, BlockMaintenance, BlockPrivateEvent, BlockOther:
        return true
    }
    return false
}

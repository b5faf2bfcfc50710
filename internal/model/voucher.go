package model

import "time"

// Voucher discount types.
const (
    DiscountPercentage = "PERCENTAGE"
    DiscountFixed      = "FIXED"
)

// Voucher is a reusable discount code owned by the catalog.  The booking
// core reads vouchers to compute discounts and atomically increments
// UsedCount when one is redeemed.  A zero UsageLimit means unlimited use.
//
// Fields:
//  ID            – primary key identifier.
//  Code          – unique code, stored uppercased.
//  Description   – staff-facing description.
//  DiscountType  – PERCENTAGE or FIXED.
//  DiscountValue – percent (0-100) or a fixed amount in paise.
//  MinOrderPaise – minimum subtotal required to apply, 0 for none.
//  UsageLimit    – max redemptions, 0 for unlimited.
//  UsedCount     – redemptions so far.
//  ExpiresAt     – optional expiry.
//  IsActive      – staff kill switch.
//  CreatedAt/UpdatedAt – row timestamps.
type Voucher struct {
    ID            uint64     // vouchers.id
    Code          string     // vouchers.code
    Description   *string    // vouchers.description (nullable)
    DiscountType  string     // vouchers.discount_type
    DiscountValue int64      // vouchers.discount_value
    MinOrderPaise int64      // vouchers.min_order_paise
    UsageLimit    int        // vouchers.usage_limit
    UsedCount     int        // vouchers.used_count
    ExpiresAt     *time.Time // vouchers.expires_at (nullable)
    IsActive      bool       // vouchers.is_active
    CreatedAt     time.Time  // vouchers.created_at
    UpdatedAt     time.Time  // vouchers.updated_at
}

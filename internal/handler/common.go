package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used in getUserID
    "strconv" // strconv converts strings to numeric types
    "strings" // strings provides trimming and case helpers
    "time"    // time parses dates and slot times

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// parseDate parses a YYYY-MM-DD visit date.
func parseDate(s string) (time.Time, bool) {
    d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
    if err != nil {
        return time.Time{}, false
    }
    return d, true
}

// validSlotTime reports whether s is a well-formed HH:MM slot time.
func validSlotTime(s string) bool {
    _, err := time.Parse("15:04", strings.TrimSpace(s))
    return err == nil
}

// validationError builds the uniform 400 payload: a generic error message
// plus a per-field breakdown.
func validationError(fields map[string]string) echo.Map {
    return echo.Map{"error": "validation failed", "fields": fields}
}

// voucherModel converts a voucher row into the pricing engine's input type.
func voucherModel(v *repository.VoucherRecord) *model.Voucher {
    if v == nil {
        return nil
    }
    return &model.Voucher{
        ID:            v.ID,
        Code:          v.Code,
        Description:   v.Description,
        DiscountType:  v.DiscountType,
        DiscountValue: v.DiscountValue,
        MinOrderPaise: v.MinOrderPaise,
        UsageLimit:    v.UsageLimit,
        UsedCount:     v.UsedCount,
        ExpiresAt:     v.ExpiresAt,
        IsActive:      v.IsActive,
    }
}

// bookingJSON is the projection of a session booking returned to both
// public and staff callers.  The internal id is included for staff
// screens; public flows key on public_id.
func bookingJSON(b *repository.BookingRecord) echo.Map {
    return echo.Map{
        "id":             b.ID,
        "public_id":      b.PublicID,
        "name":           b.Name,
        "email":          b.Email,
        "phone":          b.Phone,
        "date":           b.Date.Format("2006-01-02"),
        "time":           b.Time,
        "duration_min":   b.DurationMin,
        "adults":         b.Adults,
        "kids":           b.Kids,
        "spectators":     b.Spectators,
        "subtotal_paise": b.SubtotalPaise,
        "discount_paise": b.DiscountPaise,
        "amount_paise":   b.AmountPaise,
        "voucher_code":   b.VoucherCode,
        "booking_status": b.BookingStatus,
        "payment_status": b.PaymentStatus,
        "waiver_status":  b.WaiverStatus,
        "created_at":     b.CreatedAt.UTC().Format(time.RFC3339),
        "updated_at":     b.UpdatedAt.UTC().Format(time.RFC3339),
    }
}

// partyJSON is the projection of a party booking.
func partyJSON(p *repository.PartyBookingRecord) echo.Map {
    return echo.Map{
        "id":                  p.ID,
        "public_id":           p.PublicID,
        "name":                p.Name,
        "email":               p.Email,
        "phone":               p.Phone,
        "date":                p.Date.Format("2006-01-02"),
        "time":                p.Time,
        "duration_min":        p.DurationMin,
        "package_name":        p.PackageName,
        "adults":              p.Adults,
        "kids":                p.Kids,
        "spectators":          p.Spectators,
        "subtotal_paise":      p.SubtotalPaise,
        "discount_paise":      p.DiscountPaise,
        "amount_paise":        p.AmountPaise,
        "voucher_code":        p.VoucherCode,
        "birthday_child_name": p.BirthdayChildName,
        "birthday_child_age":  p.BirthdayChildAge,
        "decorations":         p.Decorations,
        "catering":            p.Catering,
        "cake":                p.Cake,
        "photographer":        p.Photographer,
        "booking_status":      p.BookingStatus,
        "payment_status":      p.PaymentStatus,
        "waiver_status":       p.WaiverStatus,
        "created_at":          p.CreatedAt.UTC().Format(time.RFC3339),
        "updated_at":          p.UpdatedAt.UTC().Format(time.RFC3339),
    }
}

// waiverJSON is the projection of a single waiver row.
func waiverJSON(w *repository.WaiverRecord) echo.Map {
    return echo.Map{
        "id":                w.ID,
        "name":              w.Name,
        "email":             w.Email,
        "phone":             w.Phone,
        "dob":               w.DOB,
        "participant_type":  w.ParticipantType,
        "is_primary_signer": w.IsPrimarySigner,
        "emergency_contact": w.EmergencyContact,
        "version":           w.Version,
        "signed_at":         w.SignedAt.UTC().Format(time.RFC3339),
        "booking_id":        w.BookingID,
        "party_booking_id":  w.PartyBookingID,
    }
}

// voucherJSON is the projection of a voucher for the admin catalog.
func voucherJSON(v *repository.VoucherRecord) echo.Map {
    out := echo.Map{
        "id":              v.ID,
        "code":            v.Code,
        "description":     v.Description,
        "discount_type":   v.DiscountType,
        "discount_value":  v.DiscountValue,
        "min_order_paise": v.MinOrderPaise,
        "usage_limit":     v.UsageLimit,
        "used_count":      v.UsedCount,
        "is_active":       v.IsActive,
        "created_at":      v.CreatedAt.UTC().Format(time.RFC3339),
    }
    if v.ExpiresAt != nil {
        out["expires_at"] = v.ExpiresAt.UTC().Format(time.RFC3339)
    } else {
        out["expires_at"] = nil
    }
    return out
}

// transactionJSON is the projection of one payment attempt.
func transactionJSON(t *repository.TransactionRecord) echo.Map {
    return echo.Map{
        "id":             t.ID,
        "booking_id":     t.BookingID,
        "amount_paise":   t.AmountPaise,
        "currency":       t.Currency,
        "transaction_id": t.TransactionID,
        "payment_method": t.PaymentMethod,
        "status":         t.Status,
        "created_at":     t.CreatedAt.UTC().Format(time.RFC3339),
    }
}

// blockJSON is the projection of a closure block.
func blockJSON(b *repository.BlockRecord) echo.Map {
    return echo.Map{
        "id":         b.ID,
        "start_date": b.StartDate.Format("2006-01-02"),
        "end_date":   b.EndDate.Format("2006-01-02"),
        "reason":     b.Reason,
        "block_type": b.BlockType,
        "recurring":  b.Recurring,
        "created_at": b.CreatedAt.UTC().Format(time.RFC3339),
    }
}

// packageJSON is the projection of a bookable party package.
func packageJSON(p *repository.PackageRecord) echo.Map {
    return echo.Map{
        "id":               p.ID,
        "name":             p.Name,
        "description":      p.Description,
        "price_paise":      p.PricePaise,
        "min_participants": p.MinParticipants,
        "max_participants": p.MaxParticipants,
        "duration_min":     p.DurationMin,
    }
}

package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
)

// BookingRepo provides CRUD operations for session bookings.  Creation
// always happens inside a caller-owned transaction so the customer upsert,
// voucher redemption and booking insert commit or roll back together.
// Date columns are DATE in MySQL and handled as time.Time here; slot times
// are stored as "HH:MM" strings.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingRecord mirrors the bookings table.  Business logic should use
// model.Booking; this type exists for constructing and scanning rows.
type BookingRecord struct {
    ID            uint64
    PublicID      string
    Name          string
    Email         string
    Phone         string
    Date          time.Time
    Time          string
    DurationMin   int
    Adults        int
    Kids          int
    Spectators    int
    SubtotalPaise int64
    DiscountPaise int64
    AmountPaise   int64
    VoucherCode   *string
    VoucherID     *uint64
    CustomerID    *uint64
    BookingStatus string
    PaymentStatus string
    WaiverStatus  string
    CreatedAt     time.Time
    UpdatedAt     time.Time
}

const bookingCols = `id, public_id, name, email, phone, date, time, duration_min,
       adults, kids, spectators, subtotal_paise, discount_paise, amount_paise,
       voucher_code, voucher_id, customer_id,
       booking_status, payment_status, waiver_status, created_at, updated_at`

func scanBooking(row interface {
    Scan(dest ...interface{}) error
}, b *BookingRecord) error {
    return row.Scan(
        &b.ID, &b.PublicID, &b.Name, &b.Email, &b.Phone, &b.Date, &b.Time, &b.DurationMin,
        &b.Adults, &b.Kids, &b.Spectators, &b.SubtotalPaise, &b.DiscountPaise, &b.AmountPaise,
        &b.VoucherCode, &b.VoucherID, &b.CustomerID,
        &b.BookingStatus, &b.PaymentStatus, &b.WaiverStatus, &b.CreatedAt, &b.UpdatedAt,
    )
}

// CreateTx inserts a new booking within the scope of an existing
// transaction and populates the generated ID and timestamps on the record.
// The caller must commit or roll back the transaction.  Statuses must be
// valid enumeration values; creation always starts from PENDING on all
// three.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *BookingRecord) error {
    const q = `INSERT INTO bookings
        (public_id, name, email, phone, date, time, duration_min,
         adults, kids, spectators, subtotal_paise, discount_paise, amount_paise,
         voucher_code, voucher_id, customer_id,
         booking_status, payment_status, waiver_status)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, q,
        b.PublicID, b.Name, b.Email, b.Phone, b.Date.Format("2006-01-02"), b.Time, b.DurationMin,
        b.Adults, b.Kids, b.Spectators, b.SubtotalPaise, b.DiscountPaise, b.AmountPaise,
        b.VoucherCode, b.VoucherID, b.CustomerID,
        b.BookingStatus, b.PaymentStatus, b.WaiverStatus)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    // Query back the full row to populate timestamps and defaults.
    return scanBooking(tx.QueryRowContext(ctx,
        `SELECT `+bookingCols+` FROM bookings WHERE id = ?`, b.ID), b)
}

// GetByID returns a booking by its internal id.  ErrNotFound is returned
// when no row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*BookingRecord, error) {
    var b BookingRecord
    err := scanBooking(r.db.QueryRowContext(ctx,
        `SELECT `+bookingCols+` FROM bookings WHERE id = ?`, id), &b)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// GetByPublicID returns a booking by its public UUID.  This is the only
// lookup exposed to unauthenticated callers, so ticket URLs cannot be
// enumerated the way sequential ids could.
func (r *BookingRepo) GetByPublicID(ctx context.Context, publicID string) (*BookingRecord, error) {
    var b BookingRecord
    err := scanBooking(r.db.QueryRowContext(ctx,
        `SELECT `+bookingCols+` FROM bookings WHERE public_id = ?`, publicID), &b)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// List returns bookings ordered newest first, optionally filtered by
// booking_status and/or visit date.
func (r *BookingRepo) List(ctx context.Context, status string, date *time.Time) ([]BookingRecord, error) {
    q := `SELECT ` + bookingCols + ` FROM bookings WHERE 1=1`
    args := make([]interface{}, 0, 2)
    if status != "" {
        q += ` AND booking_status = ?`
        args = append(args, status)
    }
    if date != nil {
        q += ` AND date = ?`
        args = append(args, date.Format("2006-01-02"))
    }
    q += ` ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]BookingRecord, 0)
    for rows.Next() {
        var b BookingRecord
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// UpdateBookingStatus transitions booking_status, enforcing the
// terminal-state rule: CANCELLED and COMPLETED rows reject further
// booking_status changes.  The check and the write happen in one
// conditional UPDATE so concurrent transitions cannot race past the rule.
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, id uint64, to string) (*BookingRecord, error) {
    cur, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if !model.CanTransitionBookingStatus(cur.BookingStatus, to) {
        return nil, ErrInvalidTransition
    }
    res, err := r.db.ExecContext(ctx,
        `UPDATE bookings SET booking_status = ?
         WHERE id = ? AND booking_status NOT IN ('CANCELLED', 'COMPLETED')`,
        to, id)
    if err != nil {
        return nil, err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return nil, err
    }
    if n == 0 && cur.BookingStatus != to {
        // Lost a race: another request reached a terminal state first.
        return nil, ErrInvalidTransition
    }
    return r.GetByID(ctx, id)
}

// UpdatePaymentStatus sets payment_status.  Payment state stays mutable in
// every booking_status — a cancelled booking may still be marked REFUNDED.
func (r *BookingRepo) UpdatePaymentStatus(ctx context.Context, id uint64, to string) (*BookingRecord, error) {
    return r.setStatusColumn(ctx, id, "payment_status", to)
}

// UpdateWaiverStatus sets waiver_status directly.  Normally the waiver
// fan-out maintains this column; the direct setter backs the staff
// override path.
func (r *BookingRepo) UpdateWaiverStatus(ctx context.Context, id uint64, to string) (*BookingRecord, error) {
    return r.setStatusColumn(ctx, id, "waiver_status", to)
}

func (r *BookingRepo) setStatusColumn(ctx context.Context, id uint64, col, to string) (*BookingRecord, error) {
    res, err := r.db.ExecContext(ctx,
        `UPDATE bookings SET `+col+` = ? WHERE id = ?`, to, id)
    if err != nil {
        return nil, err
    }
    if n, err := res.RowsAffected(); err != nil {
        return nil, err
    } else if n == 0 {
        // Distinguish "no such row" from "no change".
        if _, err := r.GetByID(ctx, id); err != nil {
            return nil, err
        }
    }
    return r.GetByID(ctx, id)
}

// MarkWaiverSignedTx sets waiver_status to SIGNED inside the caller's
// transaction.  Used by the waiver fan-out when a signed waiver attaches
// to the booking.
func (r *BookingRepo) MarkWaiverSignedTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    _, err := tx.ExecContext(ctx,
        `UPDATE bookings SET waiver_status = ? WHERE id = ?`, model.WaiverSigned, id)
    return err
}

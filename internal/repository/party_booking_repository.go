package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
)

// PartyBookingRepo provides CRUD operations for party bookings.  Parties
// follow the same lifecycle discipline as session bookings; the roster is
// stored as waiver rows referencing the party.
type PartyBookingRepo struct {
    db *sql.DB
}

// NewPartyBookingRepo returns a new PartyBookingRepo bound to the given database.
func NewPartyBookingRepo(db *sql.DB) *PartyBookingRepo { return &PartyBookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *PartyBookingRepo) DB() *sql.DB { return r.db }

// PartyBookingRecord mirrors the party_bookings table.
type PartyBookingRecord struct {
    ID                uint64
    PublicID          string
    Name              string
    Email             string
    Phone             string
    Date              time.Time
    Time              string
    DurationMin       int
    PackageName       string
    Adults            int
    Kids              int
    Spectators        int
    SubtotalPaise     int64
    DiscountPaise     int64
    AmountPaise       int64
    VoucherCode       *string
    VoucherID         *uint64
    CustomerID        *uint64
    BirthdayChildName *string
    BirthdayChildAge  *int
    Decorations       bool
    Catering          bool
    Cake              bool
    Photographer      bool
    BookingStatus     string
    PaymentStatus     string
    WaiverStatus      string
    CreatedAt         time.Time
    UpdatedAt         time.Time
}

const partyCols = `id, public_id, name, email, phone, date, time, duration_min, package_name,
       adults, kids, spectators, subtotal_paise, discount_paise, amount_paise,
       voucher_code, voucher_id, customer_id,
       birthday_child_name, birthday_child_age, decorations, catering, cake, photographer,
       booking_status, payment_status, waiver_status, created_at, updated_at`

func scanParty(row interface {
    Scan(dest ...interface{}) error
}, p *PartyBookingRecord) error {
    return row.Scan(
        &p.ID, &p.PublicID, &p.Name, &p.Email, &p.Phone, &p.Date, &p.Time, &p.DurationMin, &p.PackageName,
        &p.Adults, &p.Kids, &p.Spectators, &p.SubtotalPaise, &p.DiscountPaise, &p.AmountPaise,
        &p.VoucherCode, &p.VoucherID, &p.CustomerID,
        &p.BirthdayChildName, &p.BirthdayChildAge, &p.Decorations, &p.Catering, &p.Cake, &p.Photographer,
        &p.BookingStatus, &p.PaymentStatus, &p.WaiverStatus, &p.CreatedAt, &p.UpdatedAt,
    )
}

// CreateTx inserts a new party booking within the caller's transaction and
// populates the generated ID, timestamps and column defaults.
func (r *PartyBookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *PartyBookingRecord) error {
    const q = `INSERT INTO party_bookings
        (public_id, name, email, phone, date, time, duration_min, package_name,
         adults, kids, spectators, subtotal_paise, discount_paise, amount_paise,
         voucher_code, voucher_id, customer_id,
         birthday_child_name, birthday_child_age, decorations, catering, cake, photographer,
         booking_status, payment_status, waiver_status)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, q,
        p.PublicID, p.Name, p.Email, p.Phone, p.Date.Format("2006-01-02"), p.Time, p.DurationMin, p.PackageName,
        p.Adults, p.Kids, p.Spectators, p.SubtotalPaise, p.DiscountPaise, p.AmountPaise,
        p.VoucherCode, p.VoucherID, p.CustomerID,
        p.BirthdayChildName, p.BirthdayChildAge, p.Decorations, p.Catering, p.Cake, p.Photographer,
        p.BookingStatus, p.PaymentStatus, p.WaiverStatus)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    p.ID = uint64(id)
    return scanParty(tx.QueryRowContext(ctx,
        `SELECT `+partyCols+` FROM party_bookings WHERE id = ?`, p.ID), p)
}

// GetByID returns a party booking by internal id, or ErrNotFound.
func (r *PartyBookingRepo) GetByID(ctx context.Context, id uint64) (*PartyBookingRecord, error) {
    var p PartyBookingRecord
    err := scanParty(r.db.QueryRowContext(ctx,
        `SELECT `+partyCols+` FROM party_bookings WHERE id = ?`, id), &p)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// GetByPublicID returns a party booking by its public UUID, or ErrNotFound.
func (r *PartyBookingRepo) GetByPublicID(ctx context.Context, publicID string) (*PartyBookingRecord, error) {
    var p PartyBookingRecord
    err := scanParty(r.db.QueryRowContext(ctx,
        `SELECT `+partyCols+` FROM party_bookings WHERE public_id = ?`, publicID), &p)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// GetByPublicIDTx is GetByPublicID inside an existing transaction, used by
// the participant fan-out so the roster check and waiver inserts observe a
// consistent row.
func (r *PartyBookingRepo) GetByPublicIDTx(ctx context.Context, tx *sql.Tx, publicID string) (*PartyBookingRecord, error) {
    var p PartyBookingRecord
    err := scanParty(tx.QueryRowContext(ctx,
        `SELECT `+partyCols+` FROM party_bookings WHERE public_id = ?`, publicID), &p)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// List returns party bookings newest first, optionally filtered by
// booking_status and/or visit date.
func (r *PartyBookingRepo) List(ctx context.Context, status string, date *time.Time) ([]PartyBookingRecord, error) {
    q := `SELECT ` + partyCols + ` FROM party_bookings WHERE 1=1`
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
    out := make([]PartyBookingRecord, 0)
    for rows.Next() {
        var p PartyBookingRecord
        if err := scanParty(rows, &p); err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// UpdateBookingStatus transitions booking_status under the terminal-state
// rule, mirroring BookingRepo.UpdateBookingStatus.
func (r *PartyBookingRepo) UpdateBookingStatus(ctx context.Context, id uint64, to string) (*PartyBookingRecord, error) {
    cur, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if !model.CanTransitionBookingStatus(cur.BookingStatus, to) {
        return nil, ErrInvalidTransition
    }
    res, err := r.db.ExecContext(ctx,
        `UPDATE party_bookings SET booking_status = ?
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
        return nil, ErrInvalidTransition
    }
    return r.GetByID(ctx, id)
}

// UpdatePaymentStatus sets payment_status regardless of booking_status.
func (r *PartyBookingRepo) UpdatePaymentStatus(ctx context.Context, id uint64, to string) (*PartyBookingRecord, error) {
    return r.setStatusColumn(ctx, id, "payment_status", to)
}

// UpdateWaiverStatus sets waiver_status directly (staff override).
func (r *PartyBookingRepo) UpdateWaiverStatus(ctx context.Context, id uint64, to string) (*PartyBookingRecord, error) {
    return r.setStatusColumn(ctx, id, "waiver_status", to)
}

func (r *PartyBookingRepo) setStatusColumn(ctx context.Context, id uint64, col, to string) (*PartyBookingRecord, error) {
    res, err := r.db.ExecContext(ctx,
        `UPDATE party_bookings SET `+col+` = ? WHERE id = ?`, to, id)
    if err != nil {
        return nil, err
    }
    if n, err := res.RowsAffected(); err != nil {
        return nil, err
    } else if n == 0 {
        if _, err := r.GetByID(ctx, id); err != nil {
            return nil, err
        }
    }
    return r.GetByID(ctx, id)
}

// PartyDetailsUpdate carries the staff-editable party fields.  Nil fields
// are left unchanged.
type PartyDetailsUpdate struct {
    BirthdayChildName *string
    BirthdayChildAge  *int
    Decorations       *bool
    Catering          *bool
    Cake              *bool
    Photographer      *bool
}

// UpdateDetails applies a partial edit of party metadata and add-on flags.
func (r *PartyBookingRepo) UpdateDetails(ctx context.Context, id uint64, u PartyDetailsUpdate) (*PartyBookingRecord, error) {
    q := `UPDATE party_bookings SET updated_at = updated_at`
    args := make([]interface{}, 0, 6)
    if u.BirthdayChildName != nil {
        q += `, birthday_child_name = ?`
        args = append(args, *u.BirthdayChildName)
    }
    if u.BirthdayChildAge != nil {
        q += `, birthday_child_age = ?`
        args = append(args, *u.BirthdayChildAge)
    }
    if u.Decorations != nil {
        q += `, decorations = ?`
        args = append(args, *u.Decorations)
    }
    if u.Catering != nil {
        q += `, catering = ?`
        args = append(args, *u.Catering)
    }
    if u.Cake != nil {
        q += `, cake = ?`
        args = append(args, *u.Cake)
    }
    if u.Photographer != nil {
        q += `, photographer = ?`
        args = append(args, *u.Photographer)
    }
    q += ` WHERE id = ?`
    args = append(args, id)
    if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
        return nil, err
    }
    return r.GetByID(ctx, id)
}

// MarkWaiverSignedTx sets waiver_status to SIGNED inside the caller's
// transaction.  Called by the participant fan-out once an adult waiver
// exists for the party.
func (r *PartyBookingRepo) MarkWaiverSignedTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    _, err := tx.ExecContext(ctx,
        `UPDATE party_bookings SET waiver_status = ? WHERE id = ?`, model.WaiverSigned, id)
    return err
}

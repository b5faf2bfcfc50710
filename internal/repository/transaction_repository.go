package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"
)

// TransactionRepo provides access to the transactions ledger.  Rows record
// payment attempts against session bookings; they never drive the
// booking's own payment_status, which staff maintain separately.
type TransactionRepo struct {
    db *sql.DB
}

// NewTransactionRepo returns a new TransactionRepo bound to the given database.
func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// TransactionRecord mirrors the transactions table.
type TransactionRecord struct {
    ID            uint64
    BookingID     uint64
    AmountPaise   int64
    Currency      string
    TransactionID string
    PaymentMethod string
    Status        string
    CreatedAt     time.Time
}

const txnCols = `id, booking_id, amount_paise, currency, transaction_id, payment_method, status, created_at`

// Create inserts a payment attempt.  The external transaction_id is
// unique; replays of the same gateway reference yield ErrConflict.  A
// missing booking surfaces as ErrNotFound via the foreign key.
func (r *TransactionRepo) Create(ctx context.Context, t *TransactionRecord) error {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO transactions (booking_id, amount_paise, currency, transaction_id, payment_method, status)
         VALUES (?, ?, ?, ?, ?, ?)`,
        t.BookingID, t.AmountPaise, t.Currency, t.TransactionID, t.PaymentMethod, t.Status)
    if err != nil {
        low := strings.ToLower(err.Error())
        if strings.Contains(low, "1062") {
            return ErrConflict
        }
        if strings.Contains(low, "1452") { // foreign key failure -> unknown booking
            return ErrNotFound
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    return r.db.QueryRowContext(ctx,
        `SELECT `+txnCols+` FROM transactions WHERE id = ?`, t.ID).Scan(
        &t.ID, &t.BookingID, &t.AmountPaise, &t.Currency, &t.TransactionID,
        &t.PaymentMethod, &t.Status, &t.CreatedAt)
}

// ListByBooking returns all payment attempts for a booking, oldest first.
func (r *TransactionRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]TransactionRecord, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT `+txnCols+` FROM transactions WHERE booking_id = ? ORDER BY created_at ASC, id ASC`,
        bookingID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]TransactionRecord, 0)
    for rows.Next() {
        var t TransactionRecord
        if err := rows.Scan(&t.ID, &t.BookingID, &t.AmountPaise, &t.Currency,
            &t.TransactionID, &t.PaymentMethod, &t.Status, &t.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    return out, rows.Err()
}

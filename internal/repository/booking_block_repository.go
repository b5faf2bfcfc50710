package repository

import (
    "context"
    "database/sql"
    "time"
)

// BookingBlockRepo provides access to booking_blocks, the closure calendar
// consulted when new bookings are created.  A block covers an inclusive
// date range; recurring blocks repeat their month/day range every year.
type BookingBlockRepo struct {
    db *sql.DB
}

// NewBookingBlockRepo returns a new BookingBlockRepo bound to the given database.
func NewBookingBlockRepo(db *sql.DB) *BookingBlockRepo { return &BookingBlockRepo{db: db} }

// BlockRecord mirrors the booking_blocks table.
type BlockRecord struct {
    ID        uint64
    StartDate time.Time
    EndDate   time.Time
    Reason    string
    BlockType string
    Recurring bool
    CreatedAt time.Time
    UpdatedAt time.Time
}

const blockCols = `id, start_date, end_date, reason, block_type, recurring, created_at, updated_at`

// BlockFor returns the closure block covering the given date, or nil when
// the date is open.  One-off blocks match on the plain range; recurring
// blocks match when the date's month/day falls inside the block's
// month/day range in any year.
func (r *BookingBlockRepo) BlockFor(ctx context.Context, date time.Time) (*BlockRecord, error) {
    d := date.Format("2006-01-02")
    md := date.Format("01-02")
    const q = `SELECT ` + blockCols + ` FROM booking_blocks
               WHERE (recurring = 0 AND start_date <= ? AND end_date >= ?)
                  OR (recurring = 1 AND DATE_FORMAT(start_date, '%m-%d') <= ?
                                    AND DATE_FORMAT(end_date, '%m-%d') >= ?)
               ORDER BY start_date ASC
               LIMIT 1`
    var b BlockRecord
    err := r.db.QueryRowContext(ctx, q, d, d, md, md).Scan(
        &b.ID, &b.StartDate, &b.EndDate, &b.Reason, &b.BlockType, &b.Recurring,
        &b.CreatedAt, &b.UpdatedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// List returns all blocks ordered by start date.
func (r *BookingBlockRepo) List(ctx context.Context) ([]BlockRecord, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT `+blockCols+` FROM booking_blocks ORDER BY start_date ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]BlockRecord, 0)
    for rows.Next() {
        var b BlockRecord
        if err := rows.Scan(&b.ID, &b.StartDate, &b.EndDate, &b.Reason, &b.BlockType,
            &b.Recurring, &b.CreatedAt, &b.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// Create inserts a closure block.
func (r *BookingBlockRepo) Create(ctx context.Context, b *BlockRecord) error {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO booking_blocks (start_date, end_date, reason, block_type, recurring)
         VALUES (?, ?, ?, ?, ?)`,
        b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"),
        b.Reason, b.BlockType, b.Recurring)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return r.db.QueryRowContext(ctx,
        `SELECT `+blockCols+` FROM booking_blocks WHERE id = ?`, b.ID).Scan(
        &b.ID, &b.StartDate, &b.EndDate, &b.Reason, &b.BlockType, &b.Recurring,
        &b.CreatedAt, &b.UpdatedAt)
}

// Delete removes a closure block.  ErrNotFound when no row matches.
func (r *BookingBlockRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM booking_blocks WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrNotFound
    }
    return nil
}

package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"
)

// CustomerRepo provides access to the customers table.  Customers are
// keyed by lowercased email and matched or created at booking time.  Rows
// are never deleted; booking history references them.
type CustomerRepo struct {
    db *sql.DB
}

// NewCustomerRepo returns a new CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *CustomerRepo) DB() *sql.DB { return r.db }

// CustomerRecord mirrors the customers table.
type CustomerRecord struct {
    ID        uint64
    Name      string
    Email     string
    Phone     *string
    Notes     *string
    CreatedAt time.Time
    UpdatedAt time.Time
}

// GetOrCreateTx finds a customer by normalized email or inserts a new row,
// inside the caller's transaction.  On a match the stored name and phone
// are refreshed from the latest booking contact details.  It returns the
// customer id.
func (r *CustomerRepo) GetOrCreateTx(ctx context.Context, tx *sql.Tx, name, email, phone string) (uint64, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    var id uint64
    err := tx.QueryRowContext(ctx, `SELECT id FROM customers WHERE email = ?`, email).Scan(&id)
    if err == nil {
        // refresh contact details so the directory follows the most recent booking
        _, err = tx.ExecContext(ctx,
            `UPDATE customers SET name = ?, phone = ? WHERE id = ?`,
            name, phone, id)
        return id, err
    }
    if err != sql.ErrNoRows {
        return 0, err
    }
    res, err := tx.ExecContext(ctx,
        `INSERT INTO customers (name, email, phone) VALUES (?, ?, ?)`,
        name, email, phone)
    if err != nil {
        return 0, err
    }
    newID, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(newID), nil
}

// CustomerSummary is the directory projection for staff: the identity
// record plus booking aggregates computed over both booking kinds.
type CustomerSummary struct {
    ID              uint64  `json:"id"`
    Name            string  `json:"name"`
    Email           string  `json:"email"`
    Phone           *string `json:"phone,omitempty"`
    Notes           *string `json:"notes,omitempty"`
    BookingCount    int     `json:"booking_count"`
    TotalSpentPaise int64   `json:"total_spent_paise"`
    LastVisit       *string `json:"last_visit,omitempty"`
    CreatedAt       string  `json:"created_at"`
}

// List returns the customer directory ordered by most recently created.
// Booking aggregates count non-cancelled session and party bookings;
// last_visit is the latest booking date of either kind.
func (r *CustomerRepo) List(ctx context.Context) ([]CustomerSummary, error) {
    const q = `SELECT c.id, c.name, c.email, c.phone, c.notes, c.created_at,
                      COALESCE(b.cnt, 0) + COALESCE(p.cnt, 0),
                      COALESCE(b.spent, 0) + COALESCE(p.spent, 0),
                      GREATEST(COALESCE(b.last, DATE '0001-01-01'), COALESCE(p.last, DATE '0001-01-01'))
               FROM customers c
               LEFT JOIN (SELECT customer_id, COUNT(*) cnt, SUM(amount_paise) spent, MAX(date) last
                          FROM bookings WHERE booking_status <> 'CANCELLED' GROUP BY customer_id) b
                      ON b.customer_id = c.id
               LEFT JOIN (SELECT customer_id, COUNT(*) cnt, SUM(amount_paise) spent, MAX(date) last
                          FROM party_bookings WHERE booking_status <> 'CANCELLED' GROUP BY customer_id) p
                      ON p.customer_id = c.id
               ORDER BY c.created_at DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]CustomerSummary, 0)
    for rows.Next() {
        var s CustomerSummary
        var createdAt time.Time
        var last sql.NullTime
        if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Notes, &createdAt,
            &s.BookingCount, &s.TotalSpentPaise, &last); err != nil {
            return nil, err
        }
        s.CreatedAt = createdAt.UTC().Format(time.RFC3339)
        if last.Valid && last.Time.Year() > 1 {
            lv := last.Time.Format("2006-01-02")
            s.LastVisit = &lv
        }
        out = append(out, s)
    }
    return out, rows.Err()
}

// UpdateNotes stores staff notes on a customer record.
func (r *CustomerRepo) UpdateNotes(ctx context.Context, id uint64, notes string) error {
    res, err := r.db.ExecContext(ctx, `UPDATE customers SET notes = ? WHERE id = ?`, notes, id)
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

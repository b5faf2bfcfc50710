package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"
)

// WaiverRepo provides access to the waivers table.  Waivers are
// append-only: rows are created once per participant per visit and never
// updated.  Each row references at most one owner — a session booking or a
// party booking — or neither for walk-in signers.  The XOR rule is
// enforced by the handler layer before any insert reaches this repo and
// backed by a CHECK constraint in the schema.
type WaiverRepo struct {
    db *sql.DB
}

// NewWaiverRepo returns a new WaiverRepo bound to the given database.
func NewWaiverRepo(db *sql.DB) *WaiverRepo { return &WaiverRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *WaiverRepo) DB() *sql.DB { return r.db }

// WaiverRecord mirrors the waivers table.
type WaiverRecord struct {
    ID               uint64
    Name             string
    Email            *string
    Phone            *string
    DOB              *string
    ParticipantType  string
    IsPrimarySigner  bool
    EmergencyContact *string
    Version          string
    IPAddress        string
    SignedAt         time.Time
    BookingID        *uint64
    PartyBookingID   *uint64
}

const waiverCols = `id, name, email, phone, dob, participant_type, is_primary_signer,
       emergency_contact, version, ip_address, signed_at, booking_id, party_booking_id`

func scanWaiver(row interface {
    Scan(dest ...interface{}) error
}, w *WaiverRecord) error {
    return row.Scan(
        &w.ID, &w.Name, &w.Email, &w.Phone, &w.DOB, &w.ParticipantType, &w.IsPrimarySigner,
        &w.EmergencyContact, &w.Version, &w.IPAddress, &w.SignedAt, &w.BookingID, &w.PartyBookingID,
    )
}

// CreateTx inserts a waiver within the caller's transaction.  signed_at is
// stamped by the database at insert time and never changed afterwards.
func (r *WaiverRepo) CreateTx(ctx context.Context, tx *sql.Tx, w *WaiverRecord) error {
    const q = `INSERT INTO waivers
        (name, email, phone, dob, participant_type, is_primary_signer,
         emergency_contact, version, ip_address, booking_id, party_booking_id)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, q,
        w.Name, w.Email, w.Phone, w.DOB, w.ParticipantType, w.IsPrimarySigner,
        w.EmergencyContact, w.Version, w.IPAddress, w.BookingID, w.PartyBookingID)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    w.ID = uint64(id)
    return scanWaiver(tx.QueryRowContext(ctx,
        `SELECT `+waiverCols+` FROM waivers WHERE id = ?`, w.ID), w)
}

// GetByID returns a waiver by id, or ErrNotFound.
func (r *WaiverRepo) GetByID(ctx context.Context, id uint64) (*WaiverRecord, error) {
    var w WaiverRecord
    err := scanWaiver(r.db.QueryRowContext(ctx,
        `SELECT `+waiverCols+` FROM waivers WHERE id = ?`, id), &w)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &w, nil
}

// ListByBooking returns all waivers attached to a session booking in
// chronological signing order.
func (r *WaiverRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]WaiverRecord, error) {
    return r.list(ctx, `SELECT `+waiverCols+` FROM waivers WHERE booking_id = ? ORDER BY signed_at ASC, id ASC`, bookingID)
}

// ListByPartyBooking returns all waivers attached to a party booking in
// chronological signing order.
func (r *WaiverRepo) ListByPartyBooking(ctx context.Context, partyID uint64) ([]WaiverRecord, error) {
    return r.list(ctx, `SELECT `+waiverCols+` FROM waivers WHERE party_booking_id = ? ORDER BY signed_at ASC, id ASC`, partyID)
}

// ListAll returns the full waiver log newest first for the staff screen.
func (r *WaiverRepo) ListAll(ctx context.Context) ([]WaiverRecord, error) {
    return r.list(ctx, `SELECT `+waiverCols+` FROM waivers ORDER BY signed_at DESC, id DESC`)
}

func (r *WaiverRepo) list(ctx context.Context, q string, args ...interface{}) ([]WaiverRecord, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]WaiverRecord, 0)
    for rows.Next() {
        var w WaiverRecord
        if err := scanWaiver(rows, &w); err != nil {
            return nil, err
        }
        out = append(out, w)
    }
    return out, rows.Err()
}

// ExistingPartyNamesTx returns the set of participants that already hold a
// waiver for the party, keyed by normalized name plus participant type.
// The roster fan-out uses this to stay idempotent: resubmitting the same
// roster creates no duplicate waivers.
func (r *WaiverRepo) ExistingPartyNamesTx(ctx context.Context, tx *sql.Tx, partyID uint64) (map[string]struct{}, error) {
    rows, err := tx.QueryContext(ctx,
        `SELECT name, participant_type FROM waivers WHERE party_booking_id = ?`, partyID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make(map[string]struct{})
    for rows.Next() {
        var name, ptype string
        if err := rows.Scan(&name, &ptype); err != nil {
            return nil, err
        }
        out[ParticipantKey(name, ptype)] = struct{}{}
    }
    return out, rows.Err()
}

// ParticipantKey normalizes a participant identity for dedup purposes.
func ParticipantKey(name, participantType string) string {
    return strings.ToLower(strings.Join(strings.Fields(name), " ")) + "|" + strings.ToUpper(participantType)
}

// CountAdultsByPartyTx returns how many adult waivers exist for a party
// within the transaction.  The party flips to SIGNED once this is > 0.
func (r *WaiverRepo) CountAdultsByPartyTx(ctx context.Context, tx *sql.Tx, partyID uint64) (int, error) {
    var n int
    err := tx.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM waivers WHERE party_booking_id = ? AND participant_type = 'ADULT'`,
        partyID).Scan(&n)
    return n, err
}

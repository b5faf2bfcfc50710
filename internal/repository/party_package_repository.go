package repository

import (
    "context"
    "database/sql"
    "time"
)

// PartyPackageRepo provides read access to the party package catalog.
// Packages are read-mostly reference data edited rarely through the admin
// screens of the CMS collaborator; the booking core only resolves and
// lists them.
type PartyPackageRepo struct {
    db *sql.DB
}

// NewPartyPackageRepo returns a new PartyPackageRepo bound to the given database.
func NewPartyPackageRepo(db *sql.DB) *PartyPackageRepo { return &PartyPackageRepo{db: db} }

// PackageRecord mirrors the party_packages table.
type PackageRecord struct {
    ID              uint64
    Name            string
    Description     *string
    PricePaise      int64
    MinParticipants int
    MaxParticipants int
    DurationMin     int
    IsActive        bool
    CreatedAt       time.Time
    UpdatedAt       time.Time
}

const pkgCols = `id, name, description, price_paise, min_participants, max_participants,
       duration_min, is_active, created_at, updated_at`

// GetActiveByName resolves an active package by name.  ErrNotFound covers
// both unknown and deactivated packages so the public error is uniform.
func (r *PartyPackageRepo) GetActiveByName(ctx context.Context, name string) (*PackageRecord, error) {
    var p PackageRecord
    err := r.db.QueryRowContext(ctx,
        `SELECT `+pkgCols+` FROM party_packages WHERE name = ? AND is_active = 1`, name).Scan(
        &p.ID, &p.Name, &p.Description, &p.PricePaise, &p.MinParticipants, &p.MaxParticipants,
        &p.DurationMin, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// ListActive returns the bookable packages for the public party page.
func (r *PartyPackageRepo) ListActive(ctx context.Context) ([]PackageRecord, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT `+pkgCols+` FROM party_packages WHERE is_active = 1 ORDER BY price_paise ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]PackageRecord, 0)
    for rows.Next() {
        var p PackageRecord
        if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PricePaise, &p.MinParticipants,
            &p.MaxParticipants, &p.DurationMin, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

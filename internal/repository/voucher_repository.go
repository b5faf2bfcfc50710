package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"
)

// VoucherRepo provides access to the vouchers table.  The booking flow
// only reads vouchers and redeems them; full CRUD backs the admin catalog
// screens.
type VoucherRepo struct {
    db *sql.DB
}

// NewVoucherRepo returns a new VoucherRepo bound to the given database.
func NewVoucherRepo(db *sql.DB) *VoucherRepo { return &VoucherRepo{db: db} }

// VoucherRecord mirrors the vouchers table.
type VoucherRecord struct {
    ID            uint64
    Code          string
    Description   *string
    DiscountType  string
    DiscountValue int64
    MinOrderPaise int64
    UsageLimit    int
    UsedCount     int
    ExpiresAt     *time.Time
    IsActive      bool
    CreatedAt     time.Time
    UpdatedAt     time.Time
}

const voucherCols = `id, code, description, discount_type, discount_value,
       min_order_paise, usage_limit, used_count, expires_at, is_active, created_at, updated_at`

func scanVoucher(row interface {
    Scan(dest ...interface{}) error
}, v *VoucherRecord) error {
    return row.Scan(
        &v.ID, &v.Code, &v.Description, &v.DiscountType, &v.DiscountValue,
        &v.MinOrderPaise, &v.UsageLimit, &v.UsedCount, &v.ExpiresAt, &v.IsActive,
        &v.CreatedAt, &v.UpdatedAt,
    )
}

// GetByCode looks a voucher up by its normalized (uppercased) code.
// ErrNotFound when no such code exists.
func (r *VoucherRepo) GetByCode(ctx context.Context, code string) (*VoucherRecord, error) {
    code = strings.ToUpper(strings.TrimSpace(code))
    var v VoucherRecord
    err := scanVoucher(r.db.QueryRowContext(ctx,
        `SELECT `+voucherCols+` FROM vouchers WHERE code = ?`, code), &v)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

// GetByCodeTx is GetByCode inside an existing transaction so the quote and
// the redemption observe the same voucher row.
func (r *VoucherRepo) GetByCodeTx(ctx context.Context, tx *sql.Tx, code string) (*VoucherRecord, error) {
    code = strings.ToUpper(strings.TrimSpace(code))
    var v VoucherRecord
    err := scanVoucher(tx.QueryRowContext(ctx,
        `SELECT `+voucherCols+` FROM vouchers WHERE code = ?`, code), &v)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

// RedeemTx increments the voucher usage counter with a conditional UPDATE
// inside the caller's transaction.  The WHERE clause re-checks activity
// and the usage limit so two concurrent bookings cannot both take the last
// redemption: the loser's UPDATE matches no row and ErrConflict is
// returned so the caller can fall back to full price.
func (r *VoucherRepo) RedeemTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    res, err := tx.ExecContext(ctx,
        `UPDATE vouchers
         SET used_count = used_count + 1
         WHERE id = ? AND is_active = 1
           AND (usage_limit = 0 OR used_count < usage_limit)`,
        id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrConflict
    }
    return nil
}

// List returns all vouchers for the admin catalog, newest first.  When
// activeOnly is set, disabled vouchers are filtered out.
func (r *VoucherRepo) List(ctx context.Context, activeOnly bool) ([]VoucherRecord, error) {
    q := `SELECT ` + voucherCols + ` FROM vouchers`
    if activeOnly {
        q += ` WHERE is_active = 1`
    }
    q += ` ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]VoucherRecord, 0)
    for rows.Next() {
        var v VoucherRecord
        if err := scanVoucher(rows, &v); err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    return out, rows.Err()
}

// Create inserts a voucher.  Codes are stored uppercased; a duplicate code
// yields ErrConflict.
func (r *VoucherRepo) Create(ctx context.Context, v *VoucherRecord) error {
    v.Code = strings.ToUpper(strings.TrimSpace(v.Code))
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO vouchers (code, description, discount_type, discount_value,
                               min_order_paise, usage_limit, expires_at, is_active)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
        v.Code, v.Description, v.DiscountType, v.DiscountValue,
        v.MinOrderPaise, v.UsageLimit, v.ExpiresAt, v.IsActive)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrConflict
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    v.ID = uint64(id)
    return scanVoucher(r.db.QueryRowContext(ctx,
        `SELECT `+voucherCols+` FROM vouchers WHERE id = ?`, v.ID), v)
}

// SetActive flips the voucher kill switch.
func (r *VoucherRepo) SetActive(ctx context.Context, id uint64, active bool) error {
    res, err := r.db.ExecContext(ctx,
        `UPDATE vouchers SET is_active = ? WHERE id = ?`, active, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        if _, err := r.getByID(ctx, id); err != nil {
            return err
        }
    }
    return nil
}

func (r *VoucherRepo) getByID(ctx context.Context, id uint64) (*VoucherRecord, error) {
    var v VoucherRecord
    err := scanVoucher(r.db.QueryRowContext(ctx,
        `SELECT `+voucherCols+` FROM vouchers WHERE id = ?`, id), &v)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

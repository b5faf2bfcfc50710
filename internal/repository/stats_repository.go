package repository

import (
    "context"
    "database/sql"
    "time"
)

// StatsRepo computes the admin dashboard rollups.  Everything is read-only
// and computed fresh on each call; the dashboard is a low-QPS staff report
// and deliberately has no cache in front of it.
type StatsRepo struct {
    db *sql.DB
}

// NewStatsRepo returns a new StatsRepo bound to the given database.
func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// DayRevenue is one point of the trailing revenue series.
type DayRevenue struct {
    Name  string `json:"name"`  // short weekday label, e.g. "Mon"
    Date  string `json:"date"`  // YYYY-MM-DD
    Total int64  `json:"total"` // revenue in paise for that day
}

// DashboardStats is the full stats payload for the admin dashboard.
// Booking counts and revenue cover non-cancelled session and party
// bookings alike.
type DashboardStats struct {
    BookingsToday        int          `json:"bookingsToday"`
    TotalBookings        int          `json:"totalBookings"`
    SessionBookings      int          `json:"sessionBookings"`
    PartyBookings        int          `json:"partyBookings"`
    TotalRevenuePaise    int64        `json:"totalRevenuePaise"`
    AvgBookingValuePaise int64        `json:"avgBookingValuePaise"`
    PendingWaivers       int          `json:"pendingWaivers"`
    TotalWaivers         int          `json:"totalWaivers"`
    SignedWaivers        int          `json:"signedWaivers"`
    WaiverCompletionRate int          `json:"waiverCompletionRate"`
    MonthlyRevenue       []DayRevenue `json:"monthlyRevenue"`
    TotalCustomers       int          `json:"totalCustomers"`
    RepeatCustomers      int          `json:"repeatCustomers"`
    ActiveVouchers       int          `json:"activeVouchers"`
    RedeemedVouchers     int          `json:"redeemedVouchers"`
}

// TrailingDates returns the n dates ending at today inclusive, oldest
// first.  Exposed so the series shape is unit-testable without a database.
func TrailingDates(today time.Time, n int) []time.Time {
    out := make([]time.Time, 0, n)
    for i := n - 1; i >= 0; i-- {
        out = append(out, today.AddDate(0, 0, -i))
    }
    return out
}

// CompletionRate computes signed/total as a truncated percentage, defined
// as 100 when there are no waivers at all (an empty park has nothing
// outstanding, and the dashboard must not divide by zero).
func CompletionRate(signed, total int) int {
    if total == 0 {
        return 100
    }
    return signed * 100 / total
}

// Collect runs all dashboard aggregations for the given "today".
func (r *StatsRepo) Collect(ctx context.Context, today time.Time) (*DashboardStats, error) {
    s := &DashboardStats{}
    day := today.Format("2006-01-02")

    // Counts over both booking kinds, cancelled rows excluded throughout.
    err := r.db.QueryRowContext(ctx, `
        SELECT
          (SELECT COUNT(*) FROM bookings       WHERE booking_status <> 'CANCELLED' AND date = ?)
        + (SELECT COUNT(*) FROM party_bookings WHERE booking_status <> 'CANCELLED' AND date = ?),
          (SELECT COUNT(*) FROM bookings       WHERE booking_status <> 'CANCELLED'),
          (SELECT COUNT(*) FROM party_bookings WHERE booking_status <> 'CANCELLED'),
          (SELECT COALESCE(SUM(amount_paise), 0) FROM bookings       WHERE booking_status <> 'CANCELLED')
        + (SELECT COALESCE(SUM(amount_paise), 0) FROM party_bookings WHERE booking_status <> 'CANCELLED'),
          (SELECT COUNT(*) FROM bookings       WHERE booking_status <> 'CANCELLED' AND waiver_status = 'PENDING')
        + (SELECT COUNT(*) FROM party_bookings WHERE booking_status <> 'CANCELLED' AND waiver_status = 'PENDING'),
          (SELECT COUNT(*) FROM waivers),
          (SELECT COUNT(*) FROM customers),
          (SELECT COUNT(*) FROM vouchers WHERE is_active = 1),
          (SELECT COALESCE(SUM(used_count), 0) FROM vouchers)`,
        day, day).Scan(
        &s.BookingsToday, &s.SessionBookings, &s.PartyBookings,
        &s.TotalRevenuePaise, &s.PendingWaivers, &s.TotalWaivers,
        &s.TotalCustomers, &s.ActiveVouchers, &s.RedeemedVouchers)
    if err != nil {
        return nil, err
    }
    s.TotalBookings = s.SessionBookings + s.PartyBookings
    // Waiver rows are evidence of a signature, so every stored waiver
    // counts as signed; pending lives on the bookings, not here.
    s.SignedWaivers = s.TotalWaivers
    s.WaiverCompletionRate = CompletionRate(s.SignedWaivers, s.TotalWaivers)
    if s.TotalBookings > 0 {
        s.AvgBookingValuePaise = s.TotalRevenuePaise / int64(s.TotalBookings)
    }

    // Repeat customers: more than one non-cancelled booking of any kind.
    err = r.db.QueryRowContext(ctx, `
        SELECT COUNT(*) FROM (
            SELECT customer_id FROM (
                SELECT customer_id FROM bookings
                 WHERE booking_status <> 'CANCELLED' AND customer_id IS NOT NULL
                UNION ALL
                SELECT customer_id FROM party_bookings
                 WHERE booking_status <> 'CANCELLED' AND customer_id IS NOT NULL
            ) all_bookings
            GROUP BY customer_id
            HAVING COUNT(*) > 1
        ) repeats`).Scan(&s.RepeatCustomers)
    if err != nil {
        return nil, err
    }

    // Trailing 7-day revenue series, oldest first, each day summed
    // independently.
    for _, d := range TrailingDates(today, 7) {
        var total int64
        err := r.db.QueryRowContext(ctx, `
            SELECT
              (SELECT COALESCE(SUM(amount_paise), 0) FROM bookings
                WHERE booking_status <> 'CANCELLED' AND date = ?)
            + (SELECT COALESCE(SUM(amount_paise), 0) FROM party_bookings
                WHERE booking_status <> 'CANCELLED' AND date = ?)`,
            d.Format("2006-01-02"), d.Format("2006-01-02")).Scan(&total)
        if err != nil {
            return nil, err
        }
        s.MonthlyRevenue = append(s.MonthlyRevenue, DayRevenue{
            Name:  d.Format("Mon"),
            Date:  d.Format("2006-01-02"),
            Total: total,
        })
    }
    return s, nil
}

package repository

import (
    "testing"
    "time"
)

func TestTrailingDates(t *testing.T) {
    today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
    days := TrailingDates(today, 7)
    if len(days) != 7 {
        t.Fatalf("got %d days, want 7", len(days))
    }
    if !days[0].Equal(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)) {
        t.Fatalf("oldest day = %s, want 2026-03-04", days[0].Format("2006-01-02"))
    }
    if !days[6].Equal(today) {
        t.Fatalf("newest day = %s, want today", days[6].Format("2006-01-02"))
    }
    for i := 1; i < len(days); i++ {
        if days[i].Sub(days[i-1]) != 24*time.Hour {
            t.Fatalf("days %d and %d are not consecutive", i-1, i)
        }
    }
}

func TestTrailingDatesCrossesMonth(t *testing.T) {
    today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
    days := TrailingDates(today, 7)
    if got := days[0].Format("2006-01-02"); got != "2026-02-24" {
        t.Fatalf("oldest day = %s, want 2026-02-24", got)
    }
}

func TestCompletionRate(t *testing.T) {
    cases := []struct {
        signed, total, want int
    }{
        {0, 0, 100}, // nothing outstanding
        {0, 4, 0},
        {1, 2, 50},
        {2, 3, 66}, // truncates, never rounds up
        {5, 5, 100},
    }
    for _, tc := range cases {
        if got := CompletionRate(tc.signed, tc.total); got != tc.want {
            t.Fatalf("CompletionRate(%d, %d) = %d, want %d", tc.signed, tc.total, got, tc.want)
        }
    }
}

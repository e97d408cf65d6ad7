package query

import (
	"testing"
	"time"

	"gas-backend/internal/models"
	"gas-backend/internal/timeutil"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		numeric bool
	}{
		{"500", 500, true},
		{" 500 ", 500, true},
		{"12.50", 12.5, true},
		{"-30", -30, true},
		{"", 0, false},
		{"   ", 0, false},
		{"raj", 0, false},
		{"2024-03", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseAmount(c.in)
		if ok != c.numeric || got != c.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.numeric)
		}
	}
}

func tx(created time.Time, amount float64) *models.Transaction {
	return &models.Transaction{CreatedAt: created, TotalAmount: amount}
}

func TestStatsBuckets(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, timeutil.IST)
	startOfToday := timeutil.StartOfDay(now)

	records := []*models.Transaction{
		tx(now, 100),                                  // today
		tx(startOfToday, 50),                          // exactly midnight: still today
		tx(startOfToday.Add(-time.Millisecond), 200),  // yesterday: month bucket only
		tx(now.AddDate(0, -1, 0).Add(time.Hour), 300), // inside the month window
		tx(now.AddDate(0, -2, 0), 400),                // total only
	}

	stats := Stats(records, now)

	if stats.TodayCount != 2 || stats.TodayAmount != 150 {
		t.Fatalf("today bucket: count=%d amount=%v", stats.TodayCount, stats.TodayAmount)
	}
	if stats.LastMonthCount != 4 || stats.LastMonthAmount != 650 {
		t.Fatalf("month bucket: count=%d amount=%v", stats.LastMonthCount, stats.LastMonthAmount)
	}
	if stats.TotalCount != 5 || stats.TotalAmount != 1050 {
		t.Fatalf("total bucket: count=%d amount=%v", stats.TotalCount, stats.TotalAmount)
	}
}

func TestStatsCalendarMonthWindow(t *testing.T) {
	// From March 15 the window reaches back to February 15: a calendar month,
	// which in a leap-year February is only 29 days.
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, timeutil.IST)
	inside := tx(time.Date(2024, 2, 15, 12, 0, 0, 0, timeutil.IST), 10)
	outside := tx(time.Date(2024, 2, 14, 12, 0, 0, 0, timeutil.IST), 20)

	stats := Stats([]*models.Transaction{inside, outside}, now)
	if stats.LastMonthCount != 1 {
		t.Fatalf("expected 1 record in month window, got %d", stats.LastMonthCount)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil, timeutil.Now())
	if stats.TotalCount != 0 || stats.TotalAmount != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

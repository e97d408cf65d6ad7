// Package query implements the dashboard search classification and the
// time-windowed statistics over a ledger table.
package query

import (
	"strconv"
	"strings"
	"time"

	"gas-backend/internal/models"
	"gas-backend/internal/timeutil"
)

// ParseAmount reports whether q should be treated as a numeric search. The
// parse attempt is explicit: an empty or whitespace-only string is not numeric,
// and a numeric-looking query always wins over text/date matching.
func ParseAmount(q string) (float64, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Stats buckets every record's creation time against two boundaries: midnight
// IST of the current day, and now minus one calendar month. Month subtraction,
// not 30 days, so the window length follows the calendar. The windows nest:
// a record counted for today also counts for the month and the total.
func Stats(records []*models.Transaction, now time.Time) models.TransactionStats {
	startOfToday := timeutil.StartOfDay(now)
	startOfMonth := timeutil.ToIST(now).AddDate(0, -1, 0)

	var stats models.TransactionStats
	for _, tx := range records {
		created := timeutil.ToIST(tx.CreatedAt)
		stats.TotalCount++
		stats.TotalAmount += tx.TotalAmount
		if !created.Before(startOfMonth) {
			stats.LastMonthCount++
			stats.LastMonthAmount += tx.TotalAmount
		}
		if !created.Before(startOfToday) {
			stats.TodayCount++
			stats.TodayAmount += tx.TotalAmount
		}
	}
	return stats
}

package services

import (
	"strings"
	"time"

	"gas-backend/internal/timeutil"
)

// parseDateOr parses a calendar date from a request payload, keeping the
// fallback when the field was omitted. Dates are interpreted in IST; full
// RFC 3339 timestamps from the panel's date picker are accepted too.
func parseDateOr(s *string, fallback time.Time) (time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback, nil
	}
	raw := strings.TrimSpace(*s)
	if t, err := timeutil.ParseInIST(timeutil.DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.ToIST(t), nil
}

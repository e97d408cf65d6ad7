package services

import (
	"testing"
	"time"

	"gas-backend/internal/timeutil"
)

func TestParseDateOrKeepsFallbackWhenOmitted(t *testing.T) {
	fallback := time.Date(2024, 3, 1, 0, 0, 0, 0, timeutil.IST)

	got, err := parseDateOr(nil, fallback)
	if err != nil || !got.Equal(fallback) {
		t.Fatalf("nil payload: got %v, %v", got, err)
	}

	empty := "  "
	got, err = parseDateOr(&empty, fallback)
	if err != nil || !got.Equal(fallback) {
		t.Fatalf("blank payload: got %v, %v", got, err)
	}
}

func TestParseDateOrReadsCalendarDateInIST(t *testing.T) {
	s := "2024-03-15"
	got, err := parseDateOr(&s, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, timeutil.IST)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParseDateOrAcceptsRFC3339(t *testing.T) {
	s := "2024-03-15T10:00:00Z"
	got, err := parseDateOr(&s, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("got %v", got)
	}
}

func TestParseDateOrRejectsGarbage(t *testing.T) {
	s := "yesterday"
	if _, err := parseDateOr(&s, time.Time{}); err == nil {
		t.Fatal("expected error")
	}
}

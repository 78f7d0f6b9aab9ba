package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestRecordedAtPreferenceOrder(t *testing.T) {
	mustLocal := func(layout, value string) time.Time {
		tm, err := time.ParseInLocation(layout, value, time.Local)
		if err != nil {
			t.Fatalf("bad fixture %q: %v", value, err)
		}
		return tm
	}

	tests := []struct {
		name string
		rec  Donation
		want time.Time
		ok   bool
	}{
		{
			name: "timestamp wins over date and time",
			rec:  Donation{Timestamp: "2025-09-01T10:30:00", Date: "2024-01-01", Time: "00:00:00"},
			want: mustLocal("2006-01-02T15:04:05", "2025-09-01T10:30:00"),
			ok:   true,
		},
		{
			name: "rfc3339 timestamp",
			rec:  Donation{Timestamp: "2025-09-01T10:30:00Z"},
			want: time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "fractional seconds timestamp",
			rec:  Donation{Timestamp: "2025-09-01T10:30:00.123456"},
			want: mustLocal("2006-01-02T15:04:05.999999", "2025-09-01T10:30:00.123456"),
			ok:   true,
		},
		{
			name: "broken timestamp falls back to date plus time",
			rec:  Donation{Timestamp: "garbage", Date: "2025-09-01", Time: "08:15:00"},
			want: mustLocal("2006-01-02T15:04:05", "2025-09-01T08:15:00"),
			ok:   true,
		},
		{
			name: "date only",
			rec:  Donation{Date: "2025-09-01"},
			want: mustLocal("2006-01-02", "2025-09-01"),
			ok:   true,
		},
		{
			name: "nothing parseable",
			rec:  Donation{Timestamp: "garbage", Date: "also garbage", Time: "nope"},
			ok:   false,
		},
		{
			name: "empty record",
			rec:  Donation{},
			ok:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.rec.RecordedAt()
			if ok != tc.ok {
				t.Fatalf("RecordedAt() ok = %v, want %v", ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("RecordedAt() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"int", 250, 250},
		{"numeric string", "250", 250},
		{"padded numeric string", " 42.5 ", 42.5},
		{"json number", json.Number("19.9"), 19.9},
		{"non-numeric string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"negative clamps to zero", -5.0, 0},
		{"nan", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceAmount(tc.in); got != tc.want {
				t.Fatalf("CoerceAmount(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

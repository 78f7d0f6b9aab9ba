package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Donation represents a supporter contribution record as delivered by the
// external data source. Date, Time and Timestamp mirror the upstream feed
// fields; RecordedAt derives the real-world instant from them on demand.
type Donation struct {
	ID        string
	Donor     string
	Amount    float64
	Category  string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM:SS
	Timestamp string // full timestamp, preferred over Date/Time when parseable

	// VirtualDate is assigned exactly once per record id and never
	// recomputed. Zero means not assigned yet.
	VirtualDate time.Time
}

// HasVirtualDate reports whether the record carries a stable virtual date.
func (d Donation) HasVirtualDate() bool {
	return !d.VirtualDate.IsZero()
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// RecordedAt derives the record's real-world timestamp. Preference order:
// explicit timestamp, combined date+time, date only. Returns false when
// none parse; such records are excluded from every date-bucketed view.
func (d Donation) RecordedAt() (time.Time, bool) {
	if d.Timestamp != "" {
		for _, layout := range timestampLayouts {
			if t, err := time.ParseInLocation(layout, d.Timestamp, time.Local); err == nil {
				return t, true
			}
		}
	}
	if d.Date != "" && d.Time != "" {
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", d.Date+"T"+d.Time, time.Local); err == nil {
			return t, true
		}
	}
	if d.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", d.Date, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CoerceAmount converts an arbitrary decoded JSON value into a usable
// donation amount. Invalid, missing or negative values become 0; this
// never fails.
func CoerceAmount(v any) float64 {
	var amount float64
	switch n := v.(type) {
	case float64:
		amount = n
	case int:
		amount = float64(n)
	case int64:
		amount = float64(n)
	case json.Number:
		amount, _ = n.Float64()
	case string:
		amount, _ = strconv.ParseFloat(strings.TrimSpace(n), 64)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}

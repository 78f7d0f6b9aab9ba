// Package analytics implements the calendar-day aggregation and trailing
// window trend computations behind the dashboard. Everything here is a
// pure function over one snapshot of donation records; no function in
// this package mutates its input.
package analytics

import (
	"time"

	"donorpulse/internal/domain"
)

const (
	dayKeyLayout   = "2006-01-02"
	dayLabelLayout = "02 Jan 2006"
)

// DayBucket is one calendar day of an aggregation range.
type DayBucket struct {
	Day   time.Time
	Key   string // YYYY-MM-DD
	Label string
	Sum   float64
}

// TruncateDay strips the time-of-day component, keeping the location.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey returns the bucket key for an instant.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// Aggregate buckets donation amounts into per-day sums over [start, end]
// inclusive. The result always holds one entry per calendar day in
// ascending order, zero-filled for days without donations. Records with
// no assigned virtual date, or whose date falls outside the range,
// contribute nothing. Callers are responsible for clamping the span
// before calling; an inverted range yields no buckets.
func Aggregate(records []domain.Donation, start, end time.Time) []DayBucket {
	start = TruncateDay(start)
	end = TruncateDay(end)

	var buckets []DayBucket
	index := make(map[string]int)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := DayKey(day)
		index[key] = len(buckets)
		buckets = append(buckets, DayBucket{Day: day, Key: key, Label: day.Format(dayLabelLayout)})
	}

	for _, rec := range records {
		if !rec.HasVirtualDate() {
			continue
		}
		if i, ok := index[DayKey(rec.VirtualDate)]; ok {
			buckets[i].Sum += rec.Amount
		}
	}
	return buckets
}

// SumOnDay totals amounts of records whose virtual date falls on the same
// calendar day as the given instant.
func SumOnDay(records []domain.Donation, day time.Time) float64 {
	key := DayKey(day)
	var total float64
	for _, rec := range records {
		if rec.HasVirtualDate() && DayKey(rec.VirtualDate) == key {
			total += rec.Amount
		}
	}
	return total
}

package vtime

import (
	"time"

	"donorpulse/internal/domain"
)

// Assign resolves the stable virtual date for a donation record. A
// previous assignment (zero prev means none) always wins so a record's
// position on the virtual timeline never moves once shown. Otherwise the
// record's recorded timestamp is shifted by the clock's current day count,
// freezing it onto a specific virtual day at first observation. Records
// whose timestamp cannot be parsed get no virtual date and stay excluded
// until the caller supplies better data.
func Assign(clock *Clock, rec domain.Donation, prev time.Time) (time.Time, bool) {
	if !prev.IsZero() {
		return prev, true
	}
	recorded, ok := rec.RecordedAt()
	if !ok {
		return time.Time{}, false
	}
	days := clock.VirtualDaysElapsed()
	return recorded.Add(time.Duration(days) * 24 * time.Hour), true
}

package analytics

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"donorpulse/internal/domain"
)

var donorFolder = cases.Fold()

// NormalizeDonor trims and case-folds a donor display name for uniqueness
// counting. An empty result means the record carries no usable name.
func NormalizeDonor(name string) string {
	return donorFolder.String(strings.TrimSpace(name))
}

// CountUniqueDonors counts distinct normalized donor names among records
// satisfying pred. A nil predicate matches every record. Donors whose
// name is empty after trimming are excluded rather than counted as a
// shared "unknown" donor.
func CountUniqueDonors(records []domain.Donation, pred func(domain.Donation) bool) int {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if pred != nil && !pred(rec) {
			continue
		}
		name := NormalizeDonor(rec.Donor)
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
	}
	return len(seen)
}

// InWindow returns a predicate matching records whose assigned virtual
// date falls within [start, end] inclusive.
func InWindow(start, end time.Time) func(domain.Donation) bool {
	return func(rec domain.Donation) bool {
		if !rec.HasVirtualDate() {
			return false
		}
		return !rec.VirtualDate.Before(start) && !rec.VirtualDate.After(end)
	}
}

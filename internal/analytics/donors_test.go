package analytics

import (
	"testing"
	"time"

	"donorpulse/internal/domain"
)

func named(donor string) domain.Donation {
	return domain.Donation{Donor: donor, Amount: 1}
}

func TestCountUniqueDonorsCollapsesVariants(t *testing.T) {
	records := []domain.Donation{
		named("Alice"),
		named(" alice "),
		named("ALICE"),
		named(""),
	}
	if got := CountUniqueDonors(records, nil); got != 1 {
		t.Fatalf("CountUniqueDonors() = %d, want 1", got)
	}
}

func TestCountUniqueDonorsExcludesBlankNames(t *testing.T) {
	records := []domain.Donation{
		named("   "),
		named("\t"),
		named(""),
	}
	if got := CountUniqueDonors(records, nil); got != 0 {
		t.Fatalf("CountUniqueDonors() = %d, want 0 (blank names are not an unknown donor)", got)
	}
}

func TestCountUniqueDonorsWithWindowPredicate(t *testing.T) {
	day := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	records := []domain.Donation{
		{Donor: "Alice", VirtualDate: day.Add(10 * time.Hour)},
		{Donor: "Bob", VirtualDate: day.Add(26 * time.Hour)},
		{Donor: "Cara"}, // no virtual date, never matches a window
	}

	got := CountUniqueDonors(records, InWindow(day, day.Add(24*time.Hour-time.Millisecond)))
	if got != 1 {
		t.Fatalf("windowed CountUniqueDonors() = %d, want 1", got)
	}
}

func TestNormalizeDonorFoldsCase(t *testing.T) {
	if NormalizeDonor(" Großmann ") != NormalizeDonor("GROSSMANN") {
		t.Fatalf("case folding should equate Großmann and GROSSMANN")
	}
}

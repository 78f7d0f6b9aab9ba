package analytics

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"donorpulse/internal/domain"
)

// DefaultTrendWindow is the width of each trailing comparison window.
const DefaultTrendWindow = 5 * time.Minute

// TrendResult compares the trailing window ending now against the window
// immediately before it. New is the "NEW" classification: the previous
// window had zero activity and the current one does not, which is neither
// a 0% nor an infinite change.
type TrendResult struct {
	CurrentWindowSum   float64
	PreviousWindowSum  float64
	PercentChange      int
	New                bool
	CurrentDonorCount  int
	PreviousDonorCount int
	DonorCountDelta    int
}

// MarshalJSON emits percent_change as the string "NEW" when the sentinel
// applies and as a signed integer otherwise.
func (t TrendResult) MarshalJSON() ([]byte, error) {
	var percent any = t.PercentChange
	if t.New {
		percent = "NEW"
	}
	return json.Marshal(struct {
		CurrentWindowSum   float64 `json:"current_window_sum"`
		PreviousWindowSum  float64 `json:"previous_window_sum"`
		PercentChange      any     `json:"percent_change"`
		CurrentDonorCount  int     `json:"current_donor_count"`
		PreviousDonorCount int     `json:"previous_donor_count"`
		DonorCountDelta    int     `json:"donor_count_delta"`
	}{t.CurrentWindowSum, t.PreviousWindowSum, percent,
		t.CurrentDonorCount, t.PreviousDonorCount, t.DonorCountDelta})
}

// PercentDisplay formats the percent change for a trend badge: "NEW",
// "+25%", "-50%", "+0%".
func (t TrendResult) PercentDisplay() string {
	if t.New {
		return "NEW"
	}
	if t.PercentChange < 0 {
		return strconv.Itoa(t.PercentChange) + "%"
	}
	return "+" + strconv.Itoa(t.PercentChange) + "%"
}

// ComputeTrend measures two adjacent trailing windows of equal width
// ending at now (the caller passes the clock's virtual now, so windows
// are measured against the same virtual dates records were assigned).
// The current window is [now-window, now]; the previous window ends one
// millisecond before the current one starts so a boundary instant is
// never counted twice.
func ComputeTrend(records []domain.Donation, now time.Time, window time.Duration) TrendResult {
	if window <= 0 {
		window = DefaultTrendWindow
	}
	curStart := now.Add(-window)
	prevStart := now.Add(-2 * window)
	prevEnd := curStart.Add(-time.Millisecond)

	inCur := InWindow(curStart, now)
	inPrev := InWindow(prevStart, prevEnd)

	res := TrendResult{
		CurrentWindowSum:  sumMatching(records, inCur),
		PreviousWindowSum: sumMatching(records, inPrev),
	}
	switch {
	case res.PreviousWindowSum == 0 && res.CurrentWindowSum == 0:
		res.PercentChange = 0
	case res.PreviousWindowSum == 0:
		res.New = true
	default:
		change := (res.CurrentWindowSum - res.PreviousWindowSum) / res.PreviousWindowSum * 100
		res.PercentChange = int(math.Round(change))
	}

	res.CurrentDonorCount = CountUniqueDonors(records, inCur)
	res.PreviousDonorCount = CountUniqueDonors(records, inPrev)
	res.DonorCountDelta = res.CurrentDonorCount - res.PreviousDonorCount
	return res
}

func sumMatching(records []domain.Donation, pred func(domain.Donation) bool) float64 {
	var total float64
	for _, rec := range records {
		if pred(rec) {
			total += rec.Amount
		}
	}
	return total
}

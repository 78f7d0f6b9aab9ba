// Package dashboard composes the virtual clock, the stable date cache and
// the aggregation primitives into the read surface the HTTP layer serves.
package dashboard

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"donorpulse/internal/analytics"
	"donorpulse/internal/domain"
	"donorpulse/internal/vtime"
)

// RecordSource supplies one consistent snapshot of the working record set
// per computation pass.
type RecordSource interface {
	Snapshot() []domain.Donation
	Total() float64
	Categories() map[string]float64
}

// MaxRangeDays caps the widest series span a caller may request. The
// aggregator itself has no inherent limit; the cap is enforced here, at
// the boundary.
const MaxRangeDays = 1460

// DefaultRangeDays is the chart span served when the caller names none.
const DefaultRangeDays = 12

// Service owns the per-process virtual timeline state. All methods are
// safe for concurrent use: each pass works on its own snapshot and the
// date cache is concurrency-safe.
type Service struct {
	source      RecordSource
	clock       *vtime.Clock
	dates       *vtime.DateCache
	trendWindow time.Duration
	log         zerolog.Logger
}

// New builds a dashboard service around a record source and clock.
func New(source RecordSource, clock *vtime.Clock, trendWindow time.Duration, log zerolog.Logger) *Service {
	if trendWindow <= 0 {
		trendWindow = analytics.DefaultTrendWindow
	}
	return &Service{
		source:      source,
		clock:       clock,
		dates:       vtime.NewDateCache(),
		trendWindow: trendWindow,
		log:         log,
	}
}

// Clock exposes the service's virtual clock.
func (s *Service) Clock() *vtime.Clock {
	return s.clock
}

// Records snapshots the record set and attaches the stable virtual date
// to every record that has one. A cached assignment always wins over
// recomputation, so a record's virtual day never moves even as the clock
// keeps advancing. Records whose timestamps cannot be parsed are left
// without a date and noted at debug level on each pass; the core
// contract is only to exclude them.
func (s *Service) Records() []domain.Donation {
	records := s.source.Snapshot()
	for i := range records {
		prev, _ := s.dates.Get(records[i].ID)
		date, ok := vtime.Assign(s.clock, records[i], prev)
		if !ok {
			if records[i].Timestamp != "" || records[i].Date != "" {
				s.log.Debug().Str("id", records[i].ID).Msg("donation has unparseable timestamp, excluded from timeline")
			}
			continue
		}
		records[i].VirtualDate = date
		if prev.IsZero() {
			s.dates.Put(records[i].ID, date)
		}
	}
	return records
}

// Series aggregates per-day sums for the requested range after clamping
// it at this boundary: the range always reaches the current virtual day,
// never inverts, and never exceeds MaxRangeDays.
func (s *Service) Series(from, to time.Time) []analytics.DayBucket {
	from, to = ClampRange(from, to, s.clock.VirtualNow())
	return analytics.Aggregate(s.Records(), from, to)
}

// DefaultRange returns the [start, end] day range for an n-day chart
// ending on the current virtual day.
func (s *Service) DefaultRange(n int) (time.Time, time.Time) {
	if n <= 0 {
		n = DefaultRangeDays
	}
	if n > MaxRangeDays {
		n = MaxRangeDays
	}
	end := analytics.TruncateDay(s.clock.VirtualNow())
	return end.AddDate(0, 0, -(n - 1)), end
}

// Trend computes the trailing-window comparison anchored at virtual now.
func (s *Service) Trend() analytics.TrendResult {
	return analytics.ComputeTrend(s.Records(), s.clock.VirtualNow(), s.trendWindow)
}

// Stats are the aggregate scalars surfaced on the dashboard header.
type Stats struct {
	TotalAmount     float64
	DonorCount      int
	AverageDonation float64
	TotalDonations  int
	TodayTotal      float64
}

// Stats computes the dashboard scalars for the current snapshot.
func (s *Service) Stats() Stats {
	records := s.Records()
	st := Stats{
		TotalAmount:    round2(s.source.Total()),
		DonorCount:     analytics.CountUniqueDonors(records, nil),
		TotalDonations: len(records),
		TodayTotal:     analytics.SumOnDay(records, s.clock.VirtualNow()),
	}
	if st.DonorCount > 0 {
		st.AverageDonation = round2(st.TotalAmount / float64(st.DonorCount))
	}
	return st
}

// ClampRange normalizes a requested chart range against the current
// virtual day: the range is extended to include today, an inverted range
// collapses to a single day, and a span wider than MaxRangeDays is
// trimmed by moving the start forward.
func ClampRange(from, to, virtualNow time.Time) (time.Time, time.Time) {
	from = analytics.TruncateDay(from)
	to = analytics.TruncateDay(to)
	today := analytics.TruncateDay(virtualNow)

	if to.Before(today) {
		to = today
	}
	if span := daysBetween(from, to); span > MaxRangeDays {
		from = to.AddDate(0, 0, -(MaxRangeDays - 1))
	}
	if to.Before(from) {
		to = from
	}
	return from, to
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from)/(24*time.Hour)) + 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

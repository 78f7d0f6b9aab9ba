// Package store holds the in-process working set of donation records.
// Persistence is deliberately out of scope: the record set lives for the
// lifetime of the process and is either appended to through the API or
// replaced wholesale by a refresh.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"donorpulse/internal/domain"
)

// DefaultCategories seeds the category breakdown so the dashboard chart
// renders all campaign buckets even before the first donation arrives.
var DefaultCategories = []string{"Education", "Healthcare", "Environment", "Community"}

const fallbackCategory = "Unspecified"

// Memory is a mutex-guarded donation record set with running totals per
// category. Snapshot returns copies, so a computation pass never observes
// a half-updated set while writers proceed.
type Memory struct {
	mu         sync.RWMutex
	records    []domain.Donation
	total      float64
	categories map[string]float64
	now        func() time.Time
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	m := &Memory{
		categories: make(map[string]float64, len(DefaultCategories)),
		now:        time.Now,
	}
	for _, c := range DefaultCategories {
		m.categories[c] = 0
	}
	return m
}

// Add normalizes and stores one donation, stamping id and recorded
// timestamps when the caller supplied none. Newest records go first,
// matching the feed order the dashboard table expects. Returns the stored
// record.
func (m *Memory) Add(d domain.Donation) domain.Donation {
	d.Donor = strings.TrimSpace(d.Donor)
	d.Amount = domain.CoerceAmount(d.Amount)
	if d.Category == "" {
		d.Category = fallbackCategory
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Timestamp == "" && d.Date == "" {
		now := m.now()
		d.Date = now.Format("2006-01-02")
		d.Time = now.Format("15:04:05")
		d.Timestamp = now.Format("2006-01-02T15:04:05")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]domain.Donation{d}, m.records...)
	m.total += d.Amount
	m.categories[d.Category] += d.Amount
	return d
}

// Replace swaps in a complete record set, recomputing totals. Used when
// an external feed delivers a full refresh cycle.
func (m *Memory) Replace(records []domain.Donation) {
	next := make([]domain.Donation, len(records))
	copy(next, records)

	total := 0.0
	categories := make(map[string]float64, len(DefaultCategories))
	for _, c := range DefaultCategories {
		categories[c] = 0
	}
	for i := range next {
		next[i].Amount = domain.CoerceAmount(next[i].Amount)
		if next[i].Category == "" {
			next[i].Category = fallbackCategory
		}
		total += next[i].Amount
		categories[next[i].Category] += next[i].Amount
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = next
	m.total = total
	m.categories = categories
}

// Snapshot returns a copy of the current record set.
func (m *Memory) Snapshot() []domain.Donation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Donation, len(m.records))
	copy(out, m.records)
	return out
}

// Total returns the running donation total.
func (m *Memory) Total() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total
}

// Categories returns a copy of the per-category totals.
func (m *Memory) Categories() map[string]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]float64, len(m.categories))
	for k, v := range m.categories {
		out[k] = v
	}
	return out
}

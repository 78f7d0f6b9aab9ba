package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"donorpulse/internal/domain"
)

var simulatedDonors = []string{
	"John Smith", "Alice Brown", "Tom White",
	"Jessica Green", "Mark Black", "Sophie Blue",
}

// Simulator generates plausible donation records for demo runs. Roughly
// 30% of generated donors are synthetic one-off names so the unique donor
// count keeps growing during a demo.
type Simulator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulator seeds a simulator from the current time.
func NewSimulator() *Simulator {
	return &Simulator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Donation produces one random donation. Timestamps are left empty so the
// store stamps them at insertion, which is the moment the record becomes
// observable to the dashboard.
func (s *Simulator) Donation() domain.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()

	donor := simulatedDonors[s.rnd.Intn(len(simulatedDonors))]
	if s.rnd.Float64() < 0.3 {
		donor = fmt.Sprintf("Donor %d", 1000+s.rnd.Intn(9000))
	}
	return domain.Donation{
		Donor:    donor,
		Amount:   float64(500 + s.rnd.Intn(4501)),
		Category: DefaultCategories[s.rnd.Intn(len(DefaultCategories))],
	}
}

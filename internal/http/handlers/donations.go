package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"donorpulse/internal/domain"
)

type donationPayload struct {
	ID          string  `json:"id"`
	Donor       string  `json:"donor"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date,omitempty"`
	Time        string  `json:"time,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	VirtualDate string  `json:"virtual_date,omitempty"`
}

func toPayload(d domain.Donation) donationPayload {
	p := donationPayload{
		ID:        d.ID,
		Donor:     d.Donor,
		Amount:    d.Amount,
		Category:  d.Category,
		Date:      d.Date,
		Time:      d.Time,
		Timestamp: d.Timestamp,
	}
	if d.HasVirtualDate() {
		p.VirtualDate = d.VirtualDate.Format(time.RFC3339)
	}
	return p
}

// DonationsList returns the full record set with stable virtual dates
// attached, newest first.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	records := a.Dash.Records()
	items := make([]donationPayload, 0, len(records))
	for _, rec := range records {
		items = append(items, toPayload(rec))
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":   true,
		"count":     len(items),
		"donations": items,
	})
}

type donateRequest struct {
	Donor    string `json:"donor"`
	Amount   any    `json:"amount"`
	Category string `json:"category"`
}

func (req donateRequest) validate() error {
	if strings.TrimSpace(req.Donor) == "" || req.Category == "" {
		return domain.ErrMissingFields
	}
	// A zero amount, whether absent, literal 0 or unconvertible, is
	// treated the same as a missing field.
	if domain.CoerceAmount(req.Amount) == 0 {
		return domain.ErrMissingFields
	}
	return nil
}

// DonationsCreate ingests one donation. The recorded timestamp is stamped
// at insertion; the record picks up its stable virtual date on the next
// read pass, at the then-current virtual day.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, domain.ErrInvalidPayload)
		return
	}
	if err := req.validate(); err != nil {
		a.badRequest(w, err)
		return
	}

	stored := a.Store.Add(domain.Donation{
		Donor:    req.Donor,
		Amount:   domain.CoerceAmount(req.Amount),
		Category: req.Category,
	})

	a.json(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Donation added successfully",
		"donation": toPayload(stored),
		"stats":    a.quickStats(),
	})
}

// DonationsSimulate adds one randomly generated donation, the demo-mode
// stand-in for an external feed. Callers should re-fetch afterwards so
// the new record receives its virtual date.
func (a *App) DonationsSimulate(w http.ResponseWriter, r *http.Request) {
	stored := a.Store.Add(a.Sim.Donation())
	a.Log.Debug().Str("donor", stored.Donor).Float64("amount", stored.Amount).Msg("simulated donation")

	a.json(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Simulated donation added",
		"donation": toPayload(stored),
		"stats":    a.quickStats(),
	})
}

func (a *App) quickStats() map[string]any {
	st := a.Dash.Stats()
	return map[string]any{
		"total_amount": st.TotalAmount,
		"donor_count":  st.DonorCount,
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"donorpulse/internal/format"
	"donorpulse/internal/middleware"
)

// StatsSummary serves the aggregate scalars for the dashboard header.
// Display strings honor the request locale.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	st := a.Dash.Stats()
	p := format.Printer(middleware.LocaleFromContext(r.Context()))

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": map[string]any{
			"total_amount":     st.TotalAmount,
			"donor_count":      st.DonorCount,
			"average_donation": st.AverageDonation,
			"total_donations":  st.TotalDonations,
			"today_total":      st.TodayTotal,
			"total_display":    format.Currency(p, st.TotalAmount),
			"today_display":    format.Currency(p, st.TodayTotal),
			"virtual_today":    a.Dash.Clock().VirtualNow().Format("2006-01-02"),
			"virtual_days":     a.Dash.Clock().VirtualDaysElapsed(),
		},
	})
}

// TrendSummary serves the trailing-window comparison for the trend badges.
func (a *App) TrendSummary(w http.ResponseWriter, r *http.Request) {
	tr := a.Dash.Trend()

	donorDelta := "+" + strconv.Itoa(tr.DonorCountDelta)
	if tr.DonorCountDelta < 0 {
		donorDelta = strconv.Itoa(tr.DonorCountDelta)
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"trend":   tr,
		"display": map[string]string{
			"percent": tr.PercentDisplay(),
			"donors":  donorDelta,
		},
	})
}

// CategoriesSummary serves the per-category donation totals.
func (a *App) CategoriesSummary(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": a.Store.Categories(),
	})
}

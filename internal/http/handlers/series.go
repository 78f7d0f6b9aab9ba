package handlers

import (
	"net/http"
	"strconv"
	"time"

	"donorpulse/internal/dashboard"
)

const dayParamLayout = "2006-01-02"

// SeriesByRange serves the per-day donation sums feeding the trend chart.
// Accepts ?from=YYYY-MM-DD&to=YYYY-MM-DD or ?days=N (default 12). The
// range is clamped by the dashboard service before it reaches the
// aggregator: it always includes the current virtual day, never inverts,
// and never spans more than dashboard.MaxRangeDays.
func (a *App) SeriesByRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var from, to time.Time
	switch {
	case q.Get("from") != "" && q.Get("to") != "":
		var err error
		from, err = time.ParseInLocation(dayParamLayout, q.Get("from"), time.Local)
		if err != nil {
			a.error(w, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		to, err = time.ParseInLocation(dayParamLayout, q.Get("to"), time.Local)
		if err != nil {
			a.error(w, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
	default:
		days := dashboard.DefaultRangeDays
		if v := q.Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				a.error(w, http.StatusBadRequest, "Invalid days value")
				return
			}
			days = n
		}
		from, to = a.Dash.DefaultRange(days)
	}

	buckets := a.Dash.Series(from, to)

	labels := make([]string, len(buckets))
	keys := make([]string, len(buckets))
	sums := make([]float64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		keys[i] = b.Key
		sums[i] = b.Sum
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"series": map[string]any{
			"labels": labels,
			"keys":   keys,
			"sums":   sums,
		},
	})
}

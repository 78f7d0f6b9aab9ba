package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"donorpulse/internal/dashboard"
	"donorpulse/internal/domain"
	"donorpulse/internal/infra"
	"donorpulse/internal/store"
)

// App bundles the dependencies shared by every handler.
type App struct {
	Dash  *dashboard.Service
	Store *store.Memory
	Sim   *store.Simulator
	Log   infra.Logger
}

// NewApp wires the handler container.
func NewApp(dash *dashboard.Service, st *store.Memory, sim *store.Simulator, log infra.Logger) *App {
	return &App{Dash: dash, Store: st, Sim: sim, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]any{"success": false, "error": msg})
}

// badRequest maps domain validation sentinels to their client messages.
func (a *App) badRequest(w http.ResponseWriter, err error) {
	msg := "Bad request"
	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		msg = "Invalid JSON"
	case errors.Is(err, domain.ErrMissingFields):
		msg = "Missing required fields: donor, amount, category"
	}
	a.error(w, http.StatusBadRequest, msg)
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donorpulse/internal/dashboard"
	"donorpulse/internal/http/handlers"
	httpapi "donorpulse/internal/http/httpapi"
	"donorpulse/internal/infra"
	"donorpulse/internal/store"
	"donorpulse/internal/vtime"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// The virtual epoch is fixed here, at process start.
	clock := vtime.NewClock(cfg.VirtualDayWindow)
	logger.Info().
		Dur("virtual_day_window", cfg.VirtualDayWindow).
		Msg("virtual clock started")

	memory := store.NewMemory()
	dash := dashboard.New(memory, clock, cfg.TrendWindow, logger)
	app := handlers.NewApp(dash, memory, store.NewSimulator(), logger)

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lebrongpt/compare-ui/internal/config"
	"github.com/lebrongpt/compare-ui/internal/handlers"
	"github.com/lebrongpt/compare-ui/internal/statsapi"
	"github.com/lebrongpt/compare-ui/internal/view"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	client := statsapi.New(cfg.StatsAPIURL, cfg.StatsAPITimeout, logger)
	controller := view.New(cfg.FirstPlayer, client, logger)

	h := handlers.New(handlers.Config{
		Controller: controller,
		Stats:      client,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Routes(cfg.AllowedOrigins),
	}

	go func() {
		sugar.Infow("Server listening",
			"port", cfg.Port,
			"env", cfg.Env,
			"stats_api", cfg.StatsAPIURL,
			"first_player", cfg.FirstPlayer,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sugar.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Shutdown error", "error", err)
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hananaq/TripMate-AI/internal/ai"
	"github.com/hananaq/TripMate-AI/internal/config"
	"github.com/hananaq/TripMate-AI/internal/content"
	httptransport "github.com/hananaq/TripMate-AI/internal/http"
	"github.com/hananaq/TripMate-AI/internal/infra"
	"github.com/hananaq/TripMate-AI/internal/places"
	"github.com/hananaq/TripMate-AI/internal/session"
	"github.com/hananaq/TripMate-AI/internal/weather"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	// Missing .env is fine; config falls back to real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	log := newLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, cleanup, err := newCompleter(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("llm init: %v", err)
	}
	defer cleanup()

	forecaster := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)
	contentSvc := content.NewService(completer, forecaster, cfg.LLM.MaxTokens, log)

	placesSvc, err := places.New(cfg.Places.MapsAPIKey, log)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	sessions, closeSessions, err := newSessionStore(cfg.Session)
	if err != nil {
		log.Fatalf("session store init: %v", err)
	}
	defer closeSessions()

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Content:  contentSvc,
		Sessions: sessions,
		Places:   placesSvc,
		CORS:     cfg.CORS,
		Log:      log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", server.Addr).Info("server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func newCompleter(ctx context.Context, cfg config.LLMConfig) (ai.Completer, func(), error) {
	switch cfg.Provider {
	case "deepseek", "openai":
		return ai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), func() {}, nil
	case "gemini":
		p, err := ai.NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func newSessionStore(cfg config.SessionConfig) (session.Store, func(), error) {
	switch cfg.Backend {
	case "memory":
		store := session.NewMemoryStore(cfg.TTL, cfg.CleanupInterval)
		return store, store.Close, nil
	case "redis":
		client := infra.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return session.NewRedisStore(client, cfg.TTL), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

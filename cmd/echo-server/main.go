package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"echo-tutor-backend/internal/config"
	"echo-tutor-backend/internal/gemini"
	"echo-tutor-backend/internal/server"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	var gen gemini.Generator
	if cfg.GoogleAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			sugar.Fatalw("failed to create gemini client", "err", err)
		}
		defer func() { _ = client.Close() }()
		gen = client
	} else {
		sugar.Warn("GOOGLE_API_KEY is not set; generative endpoints will serve fallback payloads")
	}

	s := server.NewServer(cfg, gen, sugar)
	addr := ":" + cfg.Port
	sugar.Infow("echo tutor backend listening", "addr", addr, "model", cfg.GeminiModel)
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		sugar.Fatalw("server exited", "err", err)
	}
}

package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/learnhub/internal/config"
	"github.com/nfrund/learnhub/internal/logging"
	"github.com/nfrund/learnhub/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	s.Start()
}

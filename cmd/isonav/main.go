// File path: cmd/isonav/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/isodocs/isonav/internal/api"
	"github.com/isodocs/isonav/internal/common"
	"github.com/isodocs/isonav/internal/docstore"
	"github.com/isodocs/isonav/internal/engine"
	"github.com/isodocs/isonav/internal/llm"
	"github.com/isodocs/isonav/internal/present"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("isonav: .env file not loaded", "error", err)
	} else {
		logger.Info("isonav: environment loaded from .env")
	}

	addr := flag.String("addr", ":8000", "listen address")
	dataDir := flag.String("data", "data", "directory containing the message definition PDFs")
	publicURLDefault := strings.TrimSpace(os.Getenv("ISONAV_PUBLIC_URL"))
	if publicURLDefault == "" {
		publicURLDefault = "http://localhost:8000"
	}
	publicURL := flag.String("public-url", publicURLDefault, "base URL used when building document download links")
	originsDefault := strings.TrimSpace(os.Getenv("ISONAV_ALLOWED_ORIGINS"))
	origins := flag.String("origins", originsDefault, "comma-separated CORS origins (empty for local defaults)")
	flag.Parse()

	logger.Info("isonav: startup initiated", "addr", *addr, "data", *dataDir)

	if info, err := os.Stat(*dataDir); err != nil || !info.IsDir() {
		logger.Error("isonav: data directory unavailable", "path", *dataDir, "error", err)
		fmt.Println("data directory error:", *dataDir)
		os.Exit(1)
	}

	store := docstore.New()
	eng := engine.New(store, *dataDir)

	provider := llm.NewProvider()
	logger.Info("isonav: llm provider ready", "provider", provider.Name())

	formatter := present.New(provider, *publicURL)

	cfg := api.DefaultConfig()
	cfg.DataDir = *dataDir
	if trimmed := strings.TrimSpace(*origins); trimmed != "" {
		cfg.AllowedOrigins = splitOrigins(trimmed)
	}

	server, err := api.NewServer(eng, formatter, &cfg)
	if err != nil {
		logger.Error("isonav: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("isonav: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("isonav: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// File path: cmd/edicheck/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/invoiceworks/edicheck/internal/api"
	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/llm"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("edicheck: .env file not loaded", "error", err)
	} else {
		logger.Info("edicheck: environment loaded from .env")
	}

	rulesDefault := strings.TrimSpace(os.Getenv("EDICHECK_RULES"))
	advisoryDefault := true
	if env := strings.TrimSpace(os.Getenv("EDICHECK_ADVISORY")); env != "" {
		if parsed, err := strconv.ParseBool(env); err == nil {
			advisoryDefault = parsed
		}
	}

	addr := flag.String("addr", ":8080", "listen address")
	rulesPath := flag.String("rules", rulesDefault, "path to a companion rule document (.yaml or text); empty uses the built-in 810 table")
	uploadLimit := flag.Int64("upload-limit", 0, "maximum upload size in bytes (0 uses the default)")
	advisory := flag.Bool("advisory", advisoryDefault, "enable the LLM-backed advisory summary endpoint")
	flag.Parse()

	logger.Info("edicheck: startup initiated", "addr", *addr, "rules", *rulesPath)

	provider := llm.NewProvider()
	logger.Info("edicheck: llm provider ready", "provider", provider.Name())

	cfg := api.DefaultConfig()
	cfg.RuleDocPath = strings.TrimSpace(*rulesPath)
	cfg.Advisory = *advisory
	if *uploadLimit > 0 {
		cfg.MaxUploadBytes = *uploadLimit
	}

	server, err := api.NewServer(ctx, provider, &cfg)
	if err != nil {
		logger.Error("edicheck: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("edicheck: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("edicheck: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

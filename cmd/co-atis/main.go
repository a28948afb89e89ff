package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yegors/co-atis/internal/api"
	"github.com/yegors/co-atis/internal/atis"
	"github.com/yegors/co-atis/internal/config"
	"github.com/yegors/co-atis/internal/datis"
	"github.com/yegors/co-atis/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "co-atis: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	log.Info("Starting co-atis",
		logger.String("icao", cfg.Upstream.ICAO),
		logger.String("upstream", cfg.Upstream.BaseURL),
		logger.Int("port", cfg.Server.Port))
	if cfg.Upstream.ICAO == "" {
		log.Warn("No ICAO code configured; upstream requests will not name an airport")
	}

	client := datis.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), log)
	assembler := atis.NewAssembler(log)
	handler := api.NewHandler(cfg.Upstream.ICAO, client, assembler, log)
	router := api.NewRouter(handler, log)

	server := api.NewServer(cfg.Server.Port, router.Routes(), cfg.Server.ShutdownTimeout(), log)
	return server.Run(ctx)
}

package main

import (
	"fmt"
	"os"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/config"
	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/logging"
	"ai-act-tracker/internal/metrics"
	"ai-act-tracker/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := database.Init(cfg); err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc := certification.NewService(database.NewSystemStore(database.DB), metrics.NewRegistry(reg))

	r := server.NewRouter(cfg, svc, reg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

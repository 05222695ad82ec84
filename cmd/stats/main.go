package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/config"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/fixtures"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/logger"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/random"
	generatorService "github.com/cmlabs-hris/hris-workforce-stats/internal/service/generator"
	reportService "github.com/cmlabs-hris/hris-workforce-stats/internal/service/report"
	statisticsService "github.com/cmlabs-hris/hris-workforce-stats/internal/service/statistics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, logger.Options{
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Concise: cfg.App.Env == "development",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	log, _ = logger.WithRunID(log)

	generatorSvc := generatorService.NewGeneratorService(
		random.New(cfg.Generator.Seed),
		nil,
		generatorService.Config{
			MaxAttempts: cfg.Generator.MaxAttempts,
			Pools:       fixtures.DefaultNamePools(),
		},
		log,
	)
	statisticsSvc := statisticsService.NewStatisticsService(nil, log)
	reportSvc := reportService.NewReportService(generatorSvc, statisticsSvc, log)

	req := employee.GenerateRequest{
		Count: cfg.Generator.Count,
		Age: employee.AgeRange{
			Min: cfg.Generator.AgeMin,
			Max: cfg.Generator.AgeMax,
		},
	}

	log.Info("Generating employee statistics", "count", req.Count, "age_min", req.Age.Min, "age_max", req.Age.Max, "seeded", cfg.Generator.Seed != 0)

	result, err := reportSvc.Build(ctx, req)
	if err != nil {
		log.Error("Failed to build employee statistics", "error", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Error("Failed to encode statistics", "error", err)
		os.Exit(1)
	}

	log.Info("Employee statistics written", "total", result.Total)
}

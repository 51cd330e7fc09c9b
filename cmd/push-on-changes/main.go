package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
	"github.com/rodyd137/loteria-push/internal/biz/usecase"
	"github.com/rodyd137/loteria-push/internal/conf"
	"github.com/rodyd137/loteria-push/internal/data"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := conf.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrus.New()
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	rules, err := conf.LoadRulesConfig(cfg.RulesPath)
	if err != nil {
		logger.Fatalf("Failed to load rules: %v", err)
	}

	cal, err := domain.NewCalendar(cfg.Timezone)
	if err != nil {
		logger.Fatalf("Failed to init calendar: %v", err)
	}

	repos := data.NewRepositories(cfg, logger)
	defer repos.History.Close()

	runner := usecase.NewRunner(
		repos.Feed,
		repos.State,
		repos.Push,
		repos.History,
		usecase.NewDetector(domain.NewNormalizer(rules.ToKeyRules()), cal),
		logger,
	)

	runLog := logger.WithField("run_id", uuid.NewString())
	runLog.Info("run started")

	report, err := runner.Run(context.Background())
	if err != nil {
		// Feed unavailable or state write failed; either way the run is lost
		// and the scheduler's next invocation picks up from the old state.
		runLog.WithError(err).Fatal("run failed")
	}

	runLog.WithFields(logrus.Fields{
		"draws":   report.Draws,
		"tracked": report.Tracked,
		"changes": report.Changes,
		"sent":    report.Sent,
		"failed":  report.Failed,
	}).Info("run complete")
}

// preview-changes loads the feed and prints what push-on-changes would send,
// without sending anything or touching the persisted state.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
	"github.com/rodyd137/loteria-push/internal/biz/usecase"
	"github.com/rodyd137/loteria-push/internal/conf"
	"github.com/rodyd137/loteria-push/internal/data"
)

func main() {
	_ = godotenv.Load()

	// No Validate here: previewing needs no OneSignal credentials.
	cfg := conf.LoadFromEnv()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	rules, err := conf.LoadRulesConfig(cfg.RulesPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cal, err := domain.NewCalendar(cfg.Timezone)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	repos := data.NewRepositories(cfg, logger)
	defer repos.History.Close()

	ctx := context.Background()
	draws, err := repos.Feed.Load(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	detector := usecase.NewDetector(domain.NewNormalizer(rules.ToKeyRules()), cal)
	current, changes := detector.Detect(draws, repos.State.Load(ctx))

	fmt.Printf("%d draws, %d series tracked, %d changed today (%s)\n",
		len(draws), len(current), len(changes), cal.Today())
	for _, change := range changes {
		n := usecase.BuildNotification(change)
		fmt.Printf("  %s\n    %s\n    %s\n", n.TagKey, n.Title, n.Body)
	}

	recent, err := repos.History.ListRecent(ctx, 10)
	if err == nil && len(recent) > 0 {
		fmt.Println("\nRecent pushes:")
		for _, rec := range recent {
			status := "FAIL"
			if rec.Accepted {
				status = "OK"
			}
			fmt.Printf("  %s  %-4s %s\n", rec.SentAt.Format("2006-01-02 15:04"), status, rec.TagKey)
		}
	}
}

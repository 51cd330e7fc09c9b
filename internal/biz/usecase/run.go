package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
	"github.com/rodyd137/loteria-push/internal/biz/repo"
)

// Runner executes one batch run: fetch, detect, notify, persist.
type Runner struct {
	feed     repo.FeedRepo
	state    repo.StateRepo
	push     repo.PushRepo
	history  repo.HistoryRepo
	detector *Detector
	log      *logrus.Logger
}

// NewRunner creates a new Runner
func NewRunner(
	feed repo.FeedRepo,
	state repo.StateRepo,
	push repo.PushRepo,
	history repo.HistoryRepo,
	detector *Detector,
	log *logrus.Logger,
) *Runner {
	return &Runner{
		feed:     feed,
		state:    state,
		push:     push,
		history:  history,
		detector: detector,
		log:      log,
	}
}

// Report summarizes one run.
type Report struct {
	Draws   int // records in the feed snapshot
	Tracked int // distinct series with a usable date
	Changes int // series that changed today
	Sent    int // notifications the provider accepted
	Failed  int // notifications rejected or undeliverable
}

// Run performs one complete pass. A feed failure aborts before anything is
// written, so a failed run is equivalent to not having run. Notification
// failures are logged and counted but never stop the remaining sends. The
// state write happens unconditionally afterwards and is the only late-stage
// failure that propagates.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	draws, err := r.feed.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}

	prev := r.state.Load(ctx)
	current, changes := r.detector.Detect(draws, prev)
	report := &Report{Draws: len(draws), Tracked: len(current), Changes: len(changes)}

	for _, change := range changes {
		n := BuildNotification(change)

		accepted, err := r.push.Send(ctx, n)
		if err != nil {
			r.log.WithError(err).WithField("tag", n.TagKey).Error("push failed")
		}
		if accepted {
			report.Sent++
			r.log.WithField("tag", n.TagKey).Info("push accepted")
		} else {
			report.Failed++
		}

		if err := r.history.Record(ctx, repo.PushRecord{
			FavKey:   change.FavKey,
			TagKey:   n.TagKey,
			Title:    n.Title,
			DrawDate: change.Date,
			Accepted: accepted,
			SentAt:   time.Now(),
		}); err != nil {
			r.log.WithError(err).Warn("record push history")
		}
	}

	if err := r.state.Save(ctx, current); err != nil {
		return report, fmt.Errorf("save state: %w", err)
	}
	return report, nil
}

// BuildNotification renders the provider payload for one change: a title
// from the draw's display fields, a body listing the numbers (or a generic
// update line when the feed carried none) and a data payload for client-side
// handling.
func BuildNotification(change domain.Change) repo.Notification {
	draw := change.Draw

	title := draw.Game
	if draw.Edition != "" {
		title += " • " + draw.Edition
	}
	title += " — " + draw.Provider

	body := "Actualizado " + change.Date
	if len(draw.Numbers) > 0 {
		body = "Números: " + draw.Numbers.Join()
	}

	numbers := draw.Numbers
	if numbers == nil {
		numbers = domain.Numbers{}
	}

	return repo.Notification{
		TagKey: domain.TagKey(change.FavKey),
		Title:  title,
		Body:   body,
		Data: map[string]interface{}{
			"favKey":   change.FavKey,
			"provider": draw.Provider,
			"game":     draw.Game,
			"edition":  draw.Edition,
			"date":     change.Date,
			"numbers":  numbers,
		},
	}
}

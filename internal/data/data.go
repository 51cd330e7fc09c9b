// Package data implements the biz repository interfaces over the concrete
// feed, push and storage backends.
package data

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rodyd137/loteria-push/internal/biz/repo"
	"github.com/rodyd137/loteria-push/internal/conf"
	"github.com/rodyd137/loteria-push/internal/infra/feed"
	"github.com/rodyd137/loteria-push/internal/infra/onesignal"
)

// Repositories contains all repositories
type Repositories struct {
	Feed    repo.FeedRepo
	State   repo.StateRepo
	Push    repo.PushRepo
	History repo.HistoryRepo
}

// NewRepositories creates all repositories. A history database that cannot
// be opened degrades to a no-op store with a warning; the run must not fail
// over its audit trail.
func NewRepositories(cfg *conf.Config, log *logrus.Logger) *Repositories {
	feedClient := feed.NewClient(
		cfg.Feed.URLs,
		time.Duration(cfg.Feed.TimeoutSeconds)*time.Second,
		log,
	)
	pushClient := onesignal.NewClient(
		cfg.OneSignal.Endpoint,
		cfg.OneSignal.AppID,
		cfg.OneSignal.RESTKey,
		log,
	)

	history, err := NewHistoryRepo(cfg.State.HistoryDBPath)
	if err != nil {
		log.WithError(err).Warn("push history disabled")
		history = noopHistory{}
	}

	return &Repositories{
		Feed:    NewFeedRepo(feedClient),
		State:   NewStateRepo(cfg.State.Path, log),
		Push:    NewPushRepo(pushClient),
		History: history,
	}
}

package data

import (
	"context"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
	"github.com/rodyd137/loteria-push/internal/biz/repo"
	"github.com/rodyd137/loteria-push/internal/infra/feed"
)

// feedRepo adapts the feed client to repo.FeedRepo
type feedRepo struct {
	client *feed.Client
}

// NewFeedRepo creates a new feed repository
func NewFeedRepo(client *feed.Client) repo.FeedRepo {
	return &feedRepo{client: client}
}

// Load loads the current draw snapshot
func (r *feedRepo) Load(ctx context.Context) ([]domain.Draw, error) {
	return r.client.Load(ctx)
}

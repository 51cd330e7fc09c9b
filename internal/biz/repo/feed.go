package repo

import (
	"context"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
)

// FeedRepo loads the current draw snapshot from the upstream feed.
type FeedRepo interface {
	// Load returns all draws from the first feed source that answers with a
	// usable body.
	Load(ctx context.Context) ([]domain.Draw, error)
}

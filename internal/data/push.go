package data

import (
	"context"

	"github.com/rodyd137/loteria-push/internal/biz/repo"
	"github.com/rodyd137/loteria-push/internal/infra/onesignal"
)

// pushRepo adapts the OneSignal client to repo.PushRepo
type pushRepo struct {
	client *onesignal.Client
}

// NewPushRepo creates a new push repository
func NewPushRepo(client *onesignal.Client) repo.PushRepo {
	return &pushRepo{client: client}
}

// Send delivers one notification
func (r *pushRepo) Send(ctx context.Context, n repo.Notification) (bool, error) {
	return r.client.Send(ctx, onesignal.Notification{
		TagKey: n.TagKey,
		Title:  n.Title,
		Body:   n.Body,
		Data:   n.Data,
	})
}

package repo

import "context"

// Notification is one push ready to hand to the provider.
type Notification struct {
	TagKey string
	Title  string
	Body   string
	Data   map[string]interface{}
}

// PushRepo delivers notifications through the push provider.
type PushRepo interface {
	// Send delivers one notification to every subscriber carrying the tag.
	// The bool reports whether the provider accepted it; a rejection returns
	// (false, nil) after logging, a transport failure (false, err).
	Send(ctx context.Context, n Notification) (bool, error)
}

package repo

import (
	"context"
	"time"
)

// PushRecord is one attempted notification, kept for diagnostics.
type PushRecord struct {
	FavKey   string
	TagKey   string
	Title    string
	DrawDate string
	Accepted bool
	SentAt   time.Time
}

// HistoryRepo keeps an audit trail of attempted notifications (SQLite).
type HistoryRepo interface {
	// Record appends one attempt. Best-effort: callers log failures and
	// carry on.
	Record(ctx context.Context, rec PushRecord) error

	// ListRecent returns the most recent attempts, newest first.
	ListRecent(ctx context.Context, limit int) ([]PushRecord, error)

	// Close releases the underlying store.
	Close() error
}

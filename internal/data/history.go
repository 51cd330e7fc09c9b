package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rodyd137/loteria-push/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// historyRepo implements the push history store on SQLite
type historyRepo struct {
	db *sql.DB
}

// NewHistoryRepo opens (or creates) the push history database
func NewHistoryRepo(dbPath string) (repo.HistoryRepo, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS pushes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fav_key TEXT NOT NULL,
			tag_key TEXT NOT NULL,
			title TEXT NOT NULL,
			draw_date TEXT NOT NULL,
			accepted INTEGER NOT NULL,
			sent_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// Create index
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_pushes_sent_at ON pushes(sent_at)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &historyRepo{db: db}, nil
}

// Record appends one attempted notification
func (r *historyRepo) Record(ctx context.Context, rec repo.PushRecord) error {
	accepted := 0
	if rec.Accepted {
		accepted = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pushes (fav_key, tag_key, title, draw_date, accepted, sent_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.FavKey, rec.TagKey, rec.Title, rec.DrawDate, accepted, rec.SentAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert push record: %w", err)
	}
	return nil
}

// ListRecent returns the most recent attempts, newest first
func (r *historyRepo) ListRecent(ctx context.Context, limit int) ([]repo.PushRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT fav_key, tag_key, title, draw_date, accepted, sent_at
		FROM pushes
		ORDER BY sent_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query push records: %w", err)
	}
	defer rows.Close()

	var records []repo.PushRecord
	for rows.Next() {
		var rec repo.PushRecord
		var accepted int
		var sentAt int64
		if err := rows.Scan(&rec.FavKey, &rec.TagKey, &rec.Title, &rec.DrawDate, &accepted, &sentAt); err != nil {
			return nil, fmt.Errorf("failed to scan push record: %w", err)
		}
		rec.Accepted = accepted != 0
		rec.SentAt = time.Unix(sentAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database
func (r *historyRepo) Close() error {
	return r.db.Close()
}

// noopHistory is the fallback when the history database cannot be opened.
type noopHistory struct{}

func (noopHistory) Record(ctx context.Context, rec repo.PushRecord) error { return nil }
func (noopHistory) ListRecent(ctx context.Context, limit int) ([]repo.PushRecord, error) {
	return nil, nil
}
func (noopHistory) Close() error { return nil }

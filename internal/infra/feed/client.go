// Package feed loads draw snapshots from the published JSON feed.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
)

// ErrUnavailable is returned when every configured source fails.
var ErrUnavailable = errors.New("feed: no source available")

// envelope is the full-snapshot payload shape: {source, last_updated, draws}.
type envelope struct {
	Draws []domain.Draw `json:"draws"`
}

// Client fetches the draw feed, trying each source URL in priority order.
type Client struct {
	urls   []string
	client *http.Client
	log    *logrus.Logger
}

// NewClient creates a feed client with a bounded per-request timeout.
func NewClient(urls []string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		urls:   urls,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Load returns the draws from the first source that answers with a usable
// body. Per-source failures (network, status, shape) are logged and skipped
// without distinction; only when every source fails does Load return
// ErrUnavailable.
func (c *Client) Load(ctx context.Context) ([]domain.Draw, error) {
	for _, url := range c.urls {
		draws, err := c.fetch(ctx, url)
		if err != nil {
			c.log.WithError(err).WithField("url", url).Warn("feed source failed")
			continue
		}
		c.log.WithFields(logrus.Fields{"url": url, "draws": len(draws)}).Debug("feed loaded")
		return draws, nil
	}
	return nil, ErrUnavailable
}

func (c *Client) fetch(ctx context.Context, url string) ([]domain.Draw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var draws []domain.Draw
	if err := json.Unmarshal(body, &draws); err == nil {
		return draws, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Draws != nil {
		return env.Draws, nil
	}
	return nil, errors.New("body is neither a draw array nor a draws envelope")
}

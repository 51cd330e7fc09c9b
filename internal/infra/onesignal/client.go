// Package onesignal sends tag-targeted push notifications through the
// OneSignal REST API.
package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Notification is one push to deliver, targeted at subscribers whose TagKey
// tag equals "1".
type Notification struct {
	TagKey string
	Title  string
	Body   string
	Data   map[string]interface{}
}

// payload is the OneSignal create-notification request body.
type payload struct {
	AppID    string                 `json:"app_id"`
	Headings map[string]string      `json:"headings"`
	Contents map[string]string      `json:"contents"`
	Filters  []filter               `json:"filters"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

type filter struct {
	Field    string `json:"field"`
	Key      string `json:"key"`
	Relation string `json:"relation"`
	Value    string `json:"value"`
}

// Client posts notifications to the OneSignal REST endpoint.
type Client struct {
	endpoint string
	appID    string
	restKey  string
	client   *http.Client
	log      *logrus.Logger
}

// NewClient creates a new OneSignal client. Requests rely on the default
// HTTP client timeout behavior; feed fetches are the bounded side.
func NewClient(endpoint, appID, restKey string, log *logrus.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		appID:    appID,
		restKey:  restKey,
		client:   http.DefaultClient,
		log:      log,
	}
}

// Send delivers one notification. Rejections are logged with the provider's
// status and response body and reported as accepted == false; only transport
// failures return a non-nil error.
func (c *Client) Send(ctx context.Context, n Notification) (bool, error) {
	body, err := json.Marshal(payload{
		AppID:    c.appID,
		Headings: map[string]string{"es": n.Title, "en": n.Title},
		Contents: map[string]string{"es": n.Body, "en": n.Body},
		Filters:  []filter{{Field: "tag", Key: n.TagKey, Relation: "=", Value: "1"}},
		Data:     n.Data,
	})
	if err != nil {
		return false, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.restKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(text),
			"tag":    n.TagKey,
		}).Error("onesignal rejected notification")
		return false, nil
	}
	return true, nil
}

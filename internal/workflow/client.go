// Package workflow triggers the external AI workflow engine once a campaign is launched.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketing-server/internal/observability"

	"github.com/google/uuid"
)

const userAgent = "Marketing-Server-Workflow/1.0"

var ErrUnexpectedStatus = errors.New("workflow endpoint returned non-2xx status")

// LaunchNotification is the body posted to the workflow endpoint
type LaunchNotification struct {
	CampaignID   uuid.UUID `json:"campaign_id"`
	UserID       uuid.UUID `json:"user_id"`
	CampaignName string    `json:"campaign_name"`
	PostCount    int       `json:"post_count"`
}

// Client posts launch notifications to a configured URL. A Client with an empty URL is disabled.
type Client struct {
	url        string
	logger     *observability.Logger
	httpClient *http.Client
}

// New creates a new workflow Client
func New(url string, logger *observability.Logger) *Client {
	return &Client{
		url:    url,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a workflow endpoint is configured
func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

// NotifyLaunch sends one POST with the launch summary. The response body is drained and ignored.
func (c *Client) NotifyLaunch(ctx context.Context, n LaunchNotification) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: n.CampaignID.String()},
		observability.Field{Key: "post_count", Value: n.PostCount},
	)

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if requestID := observability.RequestID(ctx); requestID != "" {
		req.Header.Set(observability.RequestIDHeader, requestID)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 10240))

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "response_status", Value: resp.StatusCode},
		observability.Field{Key: "duration_ms", Value: time.Since(startTime).Milliseconds()},
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	c.logger.Info(ctx, "workflow notified of campaign launch")
	return nil
}

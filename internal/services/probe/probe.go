package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Health mirrors the body served by GET /api/health.
type Health struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// Health calls the liveness endpoint and fails unless it answers 200 with status "healthy".
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("health check returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if health.Status != "healthy" {
		return &health, fmt.Errorf("service reported status %q", health.Status)
	}
	return &health, nil
}

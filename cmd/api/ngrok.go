package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

type ngrokDetector struct {
	apiBase  string
	attempts int
	interval time.Duration
	client   *http.Client
}

func newNgrokDetector(apiBase string) ngrokDetector {
	return ngrokDetector{
		apiBase:  apiBase,
		attempts: 10,
		interval: 3 * time.Second,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// PublicURL returns the first HTTPS tunnel URL, falling back to any tunnel.
// ngrok may still be starting, so unreachable APIs and empty tunnel lists are retried.
func (d ngrokDetector) PublicURL(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(d.interval):
			}
		}

		tunnels, err := d.tunnels(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		for _, t := range tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}
		if len(tunnels) > 0 {
			return tunnels[0].PublicURL, nil
		}
		lastErr = fmt.Errorf("no active tunnels")
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", d.attempts, lastErr)
}

func (d ngrokDetector) tunnels(ctx context.Context) ([]ngrokTunnel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+"/api/tunnels", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ngrok API request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return out.Tunnels, nil
}

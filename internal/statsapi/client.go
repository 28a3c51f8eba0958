// Package statsapi is the HTTP client for the remote player stats
// service. The service is addressed by a single base URL and exposes a
// per-player lookup and a two-player comparison endpoint.
package statsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/lebrongpt/compare-ui/internal/models"
)

var (
	// ErrPlayerNotFound covers any non-2xx response to a player lookup.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrComparisonFailed covers any non-2xx response to a compare call.
	ErrComparisonFailed = errors.New("comparison failed")
)

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "compare_ui_upstream_requests_total",
		Help: "Upstream stats API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "compare_ui_upstream_request_seconds",
		Help:    "Upstream stats API request latency by endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Client talks to the remote stats service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// New creates a client for the stats service at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Sugar(),
	}
}

// PlayerStats fetches one player's record from GET {base}/player/{name}.
// Non-2xx responses surface as ErrPlayerNotFound; transport failures
// propagate wrapped. Either way the failure is logged first.
func (c *Client) PlayerStats(ctx context.Context, name string) (*models.PlayerStats, error) {
	endpoint := fmt.Sprintf("%s/player/%s", c.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("player lookup for %q: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDuration.WithLabelValues("player").Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues("player", "transport_error").Inc()
		c.logger.Errorw("Player lookup failed", "player", name, "error", err)
		return nil, fmt.Errorf("player lookup for %q: %w", name, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		upstreamRequests.WithLabelValues("player", "not_found").Inc()
		c.logger.Errorw("Player lookup rejected", "player", name, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}

	var stats models.PlayerStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		upstreamRequests.WithLabelValues("player", "decode_error").Inc()
		c.logger.Errorw("Player lookup returned bad body", "player", name, "error", err)
		return nil, fmt.Errorf("player lookup for %q: decoding response: %w", name, err)
	}

	upstreamRequests.WithLabelValues("player", "ok").Inc()
	return &stats, nil
}

// Compare posts both names to POST {base}/compare and returns the
// recomputed stat mappings. Non-2xx responses surface as
// ErrComparisonFailed.
func (c *Client) Compare(ctx context.Context, player1, player2 string) (*models.ComparisonResult, error) {
	body, err := json.Marshal(models.CompareRequest{Player1: player1, Player2: player2})
	if err != nil {
		return nil, fmt.Errorf("comparison request: %w", err)
	}

	endpoint := c.baseURL + "/compare"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("comparison request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues("compare", "transport_error").Inc()
		c.logger.Errorw("Comparison call failed", "player1", player1, "player2", player2, "error", err)
		return nil, fmt.Errorf("comparing %q and %q: %w", player1, player2, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		upstreamRequests.WithLabelValues("compare", "rejected").Inc()
		c.logger.Errorw("Comparison call rejected", "player1", player1, "player2", player2, "status", resp.StatusCode)
		return nil, ErrComparisonFailed
	}

	var result models.ComparisonResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		upstreamRequests.WithLabelValues("compare", "decode_error").Inc()
		c.logger.Errorw("Comparison call returned bad body", "error", err)
		return nil, fmt.Errorf("comparison response: %w", err)
	}

	upstreamRequests.WithLabelValues("compare", "ok").Inc()
	return &result, nil
}

// drainAndClose lets the transport reuse the connection.
func drainAndClose(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}

package stockclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/marketdash/marketdash/internal/adapter"
	"github.com/marketdash/marketdash/internal/domain/models"
	"github.com/marketdash/marketdash/internal/logger"
	"github.com/marketdash/marketdash/internal/observability"
)

// RequestFailedError reports a non-success HTTP status from the market-data
// backend. The numeric status is preserved for the caller.
type RequestFailedError struct {
	Status int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client wraps the three REST calls of the market-data backend: symbol
// search, historical info and price prediction.
//
// The client holds no mutable state beyond its base URL; calls are
// independent and not deduplicated, retried or raced against each other.
// No client-side timeout is set: cancellation is the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// New creates a Client against the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		metrics:    observability.Default(),
	}
}

// SearchStocks queries GET /stocks/search and decodes the result as-is.
// A non-2xx status yields a *RequestFailedError carrying the status code.
func (c *Client) SearchStocks(ctx context.Context, query string) ([]models.StockSummary, error) {
	params := url.Values{}
	params.Set("query", query)

	body, err := c.get(ctx, "search", "/stocks/search", params)
	if err != nil {
		return nil, err
	}

	var summaries []models.StockSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return summaries, nil
}

// GetStockInfo queries GET /stocks/info and shapes the payload through the
// adapter. A JSON null or empty body means the backend has no data for the
// symbol; that is reported as (nil, nil) without invoking the adapter.
func (c *Client) GetStockInfo(ctx context.Context, symbol string) (*models.GenericStockData, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	body, err := c.get(ctx, "info", "/stocks/info", params)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode info response: %w", err)
	}
	return adapter.MapToGenericStockData(raw)
}

// PredictStock requests a forecast seeded with the flattened history of the
// given segments. Every data point becomes one history entry, in segment
// order then point order, with degenerate bands (upper = lower = close)
// since no confidence interval exists client-side yet.
//
// This is a best-effort call: any failure (network, status, decoding) is
// absorbed and an empty sequence is returned. The cause goes to the log and
// the prediction-failure counter, never to the caller.
func (c *Client) PredictStock(ctx context.Context, segments []models.StockSegment, method string) []models.PredictionPoint {
	history := FlattenHistory(segments)

	payload, err := json.Marshal(map[string]any{
		"method":  method,
		"history": history,
	})
	if err != nil {
		c.absorbPredictFailure("encode", err)
		return []models.PredictionPoint{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stock/predict", bytes.NewReader(payload))
	if err != nil {
		c.absorbPredictFailure("request", err)
		return []models.PredictionPoint{}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.absorbPredictFailure("network", err)
		return []models.PredictionPoint{}
	}
	defer func() { _ = resp.Body.Close() }()
	c.observe("predict", resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.absorbPredictFailure("status_"+strconv.Itoa(resp.StatusCode), &RequestFailedError{Status: resp.StatusCode})
		return []models.PredictionPoint{}
	}

	var points []models.PredictionPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		c.absorbPredictFailure("decode", err)
		return []models.PredictionPoint{}
	}
	if points == nil {
		points = []models.PredictionPoint{}
	}
	return points
}

// Ping reports whether the backend base URL answers at all. Any HTTP
// response, whatever the status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// CloseIdleConnections releases pooled keep-alive connections. Called on
// shutdown.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// FlattenHistory turns segments into the prediction request history:
// segment order, then point order within each segment, one entry per data
// point with upper and lower collapsed onto the close price.
func FlattenHistory(segments []models.StockSegment) []models.PredictionPoint {
	history := []models.PredictionPoint{}
	for _, seg := range segments {
		for _, pt := range seg.DataPoints {
			history = append(history, models.PredictionPoint{
				Timestamp: pt.Timestamp.UTC().Format(time.RFC3339),
				Close:     pt.Close,
				Upper:     pt.Close,
				Lower:     pt.Close,
			})
		}
	}
	return history
}

// get issues a GET against the backend and returns the body of a 2xx
// response, or *RequestFailedError for any other status.
func (c *Client) get(ctx context.Context, operation, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.observe(operation, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestFailedError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func (c *Client) observe(operation string, status int, start time.Time) {
	c.metrics.UpstreamRequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	c.metrics.UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (c *Client) absorbPredictFailure(reason string, err error) {
	c.metrics.PredictionFailuresTotal.WithLabelValues(reason).Inc()
	logger.L().Warn().Err(err).Str("reason", reason).Msg("prediction request absorbed as empty result")
}

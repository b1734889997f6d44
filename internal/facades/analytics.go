package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
)

// ErrAnalyticsUnavailable is returned for any failed call to the external
// analytics service: network failure, timeout, or a non-success status.
// Every call is a single attempt; nothing is retried.
var ErrAnalyticsUnavailable = errors.New("analytics service unavailable")

// AnalyticsHTTPFacade forwards requests to the external analytics service and
// relays its JSON responses unmodified. Payload shapes belong to the external
// service, so bodies are treated as opaque.
type AnalyticsHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewAnalyticsHTTPFacade creates a facade for the service at baseURL. The
// timeout bounds every outbound call, connect and read included.
func NewAnalyticsHTTPFacade(baseURL string, timeout time.Duration) *AnalyticsHTTPFacade {
	return &AnalyticsHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetChartData fetches OHLC and indicator data for a ticker.
func (f *AnalyticsHTTPFacade) GetChartData(ctx context.Context, ticker, interval string, ema, rsi int) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/data/%s/%s/%d/%d",
		url.PathEscape(ticker), url.PathEscape(interval), ema, rsi)
	return f.get(ctx, path)
}

// AnalyzeChart runs a technical analysis on the upstream service.
func (f *AnalyticsHTTPFacade) AnalyzeChart(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	return f.post(ctx, "/api/analyze", body)
}

// GetIndexData fetches the market index snapshot.
func (f *AnalyticsHTTPFacade) GetIndexData(ctx context.Context) (json.RawMessage, error) {
	return f.get(ctx, "/api/index-data")
}

// AnalyzeNews runs a news sentiment analysis.
func (f *AnalyticsHTTPFacade) AnalyzeNews(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	return f.post(ctx, "/api/news/analyze", body)
}

// AnalyzeAI runs an AI model analysis.
func (f *AnalyticsHTTPFacade) AnalyzeAI(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	return f.post(ctx, "/api/ai/analyze", body)
}

// AnalyzePatterns runs a chart pattern analysis.
func (f *AnalyticsHTTPFacade) AnalyzePatterns(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	return f.post(ctx, "/api/chart/analyze-patterns", body)
}

// GetNewsRSS fetches an RSS news feed. The feed selector is optional.
func (f *AnalyticsHTTPFacade) GetNewsRSS(ctx context.Context, feed string) (json.RawMessage, error) {
	path := "/api/news/rss"
	if feed != "" {
		path += "?feed=" + url.QueryEscape(feed)
	}
	return f.get(ctx, path)
}

// GetAvailableStocks lists the tickers available for portfolio optimization.
func (f *AnalyticsHTTPFacade) GetAvailableStocks(ctx context.Context) (json.RawMessage, error) {
	return f.get(ctx, "/api/portfolio/available-stocks")
}

// OptimizePortfolio runs a portfolio optimization.
func (f *AnalyticsHTTPFacade) OptimizePortfolio(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	return f.post(ctx, "/api/portfolio/optimize", body)
}

// ChatbotChat exchanges a chatbot message.
func (f *AnalyticsHTTPFacade) ChatbotChat(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	return f.post(ctx, "/api/chatbot/chat", body)
}

// Health probes the upstream liveness endpoint.
func (f *AnalyticsHTTPFacade) Health(ctx context.Context) error {
	_, err := f.get(ctx, "/api/health")
	return err
}

func (f *AnalyticsHTTPFacade) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return f.do(req)
}

func (f *AnalyticsHTTPFacade) post(ctx context.Context, path string, body map[string]any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return f.do(req)
}

func (f *AnalyticsHTTPFacade) do(req *http.Request) (json.RawMessage, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("analytics call failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrAnalyticsUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Errorw("analytics response read failed",
			"url", req.URL.String(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrAnalyticsUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Errorw("analytics returned non-success status",
			"url", req.URL.String(),
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("%w: upstream returned status %d", ErrAnalyticsUnavailable, resp.StatusCode)
	}

	logger.Log.Infow("analytics call",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"response_size", len(data),
	)

	return json.RawMessage(data), nil
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
)

// Analytics defines the outbound calls to the external analytics service that
// the chart handlers relay. Payloads are opaque: their shapes belong to the
// external service.
type Analytics interface {
	GetChartData(ctx context.Context, ticker, interval string, ema, rsi int) (json.RawMessage, error)
	AnalyzeChart(ctx context.Context, body map[string]any) (json.RawMessage, error)
	GetIndexData(ctx context.Context) (json.RawMessage, error)
	AnalyzeNews(ctx context.Context, body map[string]any) (json.RawMessage, error)
	AnalyzeAI(ctx context.Context, body map[string]any) (json.RawMessage, error)
	AnalyzePatterns(ctx context.Context, body map[string]any) (json.RawMessage, error)
	GetNewsRSS(ctx context.Context, feed string) (json.RawMessage, error)
	GetAvailableStocks(ctx context.Context) (json.RawMessage, error)
	OptimizePortfolio(ctx context.Context, body map[string]any) (json.RawMessage, error)
	ChatbotChat(ctx context.Context, body map[string]any) (json.RawMessage, error)
	Health(ctx context.Context) error
}

// HealthResponse reports this service's status and the analytics probe result.
// swagger:model HealthResponse
type HealthResponse struct {
	// Always "healthy" when the backend answers
	// example: healthy
	BackendStatus string `json:"backend_status"`

	// "healthy" or "unavailable"
	// example: healthy
	AnalyticsStatus string `json:"analytics_status"`
}

// writeUpstreamFailure writes the uniform proxy error envelope.
func writeUpstreamFailure(w http.ResponseWriter, err error) {
	logger.Log.Errorw("analytics proxy call failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// relayGet runs a parameterless upstream fetch and relays the response.
func relayGet(w http.ResponseWriter, r *http.Request, call func(ctx context.Context) (json.RawMessage, error)) {
	data, err := call(r.Context())
	if err != nil {
		writeUpstreamFailure(w, err)
		return
	}
	writeRaw(w, http.StatusOK, data)
}

// relayPost decodes an opaque JSON body, forwards it upstream, and relays the
// response.
func relayPost(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, body map[string]any) (json.RawMessage, error)) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	data, err := call(r.Context(), body)
	if err != nil {
		writeUpstreamFailure(w, err)
		return
	}
	writeRaw(w, http.StatusOK, data)
}

// NewChartDataHandler returns an HTTP handler fetching OHLC and indicator
// data for a ticker.
// @Summary Fetch chart data
// @Tags chart
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param interval path string true "Candle interval"
// @Param ema path int true "EMA period"
// @Param rsi path int true "RSI period"
// @Success 200 {object} object "Upstream chart payload, relayed unmodified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid period parameter"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/data/{ticker}/{interval}/{ema}/{rsi} [get]
func NewChartDataHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticker := chi.URLParam(r, "ticker")
		interval := chi.URLParam(r, "interval")

		ema, err := strconv.Atoi(chi.URLParam(r, "ema"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid ema period"})
			return
		}
		rsi, err := strconv.Atoi(chi.URLParam(r, "rsi"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid rsi period"})
			return
		}

		data, err := svc.GetChartData(r.Context(), ticker, interval, ema, rsi)
		if err != nil {
			writeUpstreamFailure(w, err)
			return
		}

		writeRaw(w, http.StatusOK, data)
	}
}

// NewAnalyzeChartHandler relays a technical analysis request.
// @Summary Analyze a chart
// @Tags chart
// @Accept json
// @Produce json
// @Param body body object true "Analysis request, upstream-defined shape"
// @Success 200 {object} object "Upstream analysis payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/analyze [post]
func NewAnalyzeChartHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayPost(w, r, svc.AnalyzeChart)
	}
}

// NewIndexDataHandler relays the market index snapshot.
// @Summary Market index snapshot
// @Tags chart
// @Produce json
// @Success 200 {object} object "Upstream index payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/index-data [get]
func NewIndexDataHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayGet(w, r, svc.GetIndexData)
	}
}

// NewAnalyzeNewsHandler relays a news sentiment analysis request.
// @Summary Analyze news sentiment
// @Tags chart
// @Accept json
// @Produce json
// @Param body body object true "News analysis request"
// @Success 200 {object} object "Upstream sentiment payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/news/analyze [post]
func NewAnalyzeNewsHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayPost(w, r, svc.AnalyzeNews)
	}
}

// NewAnalyzeAIHandler relays an AI model analysis request.
// @Summary AI model analysis
// @Tags chart
// @Accept json
// @Produce json
// @Param body body object true "AI analysis request"
// @Success 200 {object} object "Upstream AI payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/ai/analyze [post]
func NewAnalyzeAIHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayPost(w, r, svc.AnalyzeAI)
	}
}

// NewAnalyzePatternsHandler relays a chart pattern analysis request.
// @Summary Chart pattern analysis
// @Tags chart
// @Accept json
// @Produce json
// @Param body body object true "Pattern analysis request"
// @Success 200 {object} object "Upstream pattern payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/chart/analyze-patterns [post]
func NewAnalyzePatternsHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayPost(w, r, svc.AnalyzePatterns)
	}
}

// NewNewsRSSHandler relays an RSS feed fetch. The feed selector is optional.
// @Summary Fetch RSS news
// @Tags chart
// @Produce json
// @Param feed query string false "Feed selector"
// @Success 200 {object} object "Upstream RSS payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/news/rss [get]
func NewNewsRSSHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.GetNewsRSS(r.Context(), r.URL.Query().Get("feed"))
		if err != nil {
			writeUpstreamFailure(w, err)
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

// NewAvailableStocksHandler relays the available-stock listing.
// @Summary List available stocks
// @Tags chart
// @Produce json
// @Success 200 {object} object "Upstream stock list"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/portfolio/available-stocks [get]
func NewAvailableStocksHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayGet(w, r, svc.GetAvailableStocks)
	}
}

// NewOptimizePortfolioHandler relays a portfolio optimization request.
// @Summary Optimize a portfolio
// @Tags chart
// @Accept json
// @Produce json
// @Param body body object true "Optimization request"
// @Success 200 {object} object "Upstream optimization payload"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/portfolio/optimize [post]
func NewOptimizePortfolioHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayPost(w, r, svc.OptimizePortfolio)
	}
}

// NewChatbotHandler relays a chatbot message exchange.
// @Summary Chatbot exchange
// @Tags chart
// @Accept json
// @Produce json
// @Param body body object true "Chat message"
// @Success 200 {object} object "Upstream chatbot reply"
// @Failure 500 {object} handlers.ErrorResponse "Analytics service unavailable"
// @Router /api/chart/chatbot/chat [post]
func NewChatbotHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relayPost(w, r, svc.ChatbotChat)
	}
}

// NewHealthHandler reports this service's health plus an analytics liveness
// probe. An unreachable analytics service is reported as "unavailable", never
// as a failure of this endpoint.
// @Summary Combined health probe
// @Tags chart
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Health report"
// @Router /api/chart/health [get]
func NewHealthHandler(svc Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			BackendStatus:   "healthy",
			AnalyticsStatus: "healthy",
		}

		if err := svc.Health(r.Context()); err != nil {
			logger.Log.Warnw("analytics service is not available", "err", err)
			resp.AnalyticsStatus = "unavailable"
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

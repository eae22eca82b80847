package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/mockdata"
)

// mockModel labels generator-backed forecasts
const mockModel = "synthetic"

// MLBridge handles communication with the forecasting service
type MLBridge struct {
	httpClient *resty.Client
	enabled    bool
	source     mockdata.Source
	logger     *zap.Logger
	now        func() time.Time
}

// NewMLBridge creates a new ML bridge. An empty serviceURL keeps it in
// mock mode, serving generator forecasts.
func NewMLBridge(serviceURL string, source mockdata.Source, logger *zap.Logger) *MLBridge {
	client := resty.New().
		SetBaseURL(serviceURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &MLBridge{
		httpClient: client,
		enabled:    serviceURL != "",
		source:     source,
		logger:     logger,
		now:        time.Now,
	}
}

// Forecast asks the ML service for a forecast. Any transport or service
// failure falls back to a synthetic forecast, so the error is reserved for
// a response that cannot be used at all.
func (b *MLBridge) Forecast(ctx context.Context, req domain.ForecastRequest) (domain.ForecastResponse, error) {
	if !b.enabled {
		return b.mockForecast(req), nil
	}

	var forecast domain.ForecastResponse
	resp, err := b.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&forecast).
		Post("/forecast")
	if err != nil {
		b.logger.Warn("ML forecast call failed, using synthetic forecast",
			zap.String("city", req.City),
			zap.Error(err),
		)
		return b.mockForecast(req), nil
	}

	if resp.IsError() {
		b.logger.Warn("ML service returned error, using synthetic forecast",
			zap.String("city", req.City),
			zap.Int("status_code", resp.StatusCode()),
		)
		return b.mockForecast(req), nil
	}

	if len(forecast.Forecast) == 0 {
		return domain.ForecastResponse{}, fmt.Errorf("ml_bridge: empty forecast for %s", req.City)
	}

	return forecast, nil
}

// Health checks ML service connectivity
func (b *MLBridge) Health(ctx context.Context) error {
	if !b.enabled {
		return nil
	}

	resp, err := b.httpClient.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("ml_bridge: health check failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ml_bridge: health check returned status %d", resp.StatusCode())
	}

	return nil
}

// mockForecast returns a fallback forecast from the generator
func (b *MLBridge) mockForecast(req domain.ForecastRequest) domain.ForecastResponse {
	return domain.ForecastResponse{
		Forecast: b.source.Forecast(req.BaseAQI, b.now()),
		Model:    mockModel,
		IsMock:   true,
	}
}

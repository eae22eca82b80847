package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prithvinet/backend/internal/domain"
)

func TestMLBridge_MockMode(t *testing.T) {
	b := NewMLBridge("", testSource(), testLogger())

	resp, err := b.Forecast(context.Background(), domain.ForecastRequest{City: "Delhi", BaseAQI: 120, Days: 7})
	require.NoError(t, err)
	assert.True(t, resp.IsMock)
	assert.Equal(t, mockModel, resp.Model)
	assert.Len(t, resp.Forecast, 7)
	assert.NoError(t, b.Health(context.Background()))
}

func TestMLBridge_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := NewMLBridge(srv.URL, testSource(), testLogger())
	resp, err := b.Forecast(context.Background(), domain.ForecastRequest{City: "Delhi", BaseAQI: 120, Days: 7})
	require.NoError(t, err)
	assert.True(t, resp.IsMock)
	assert.Len(t, resp.Forecast, 7)

	assert.Error(t, b.Health(context.Background()))
}

func TestMLBridge_EmptyForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"forecast":[]}`))
	}))
	defer srv.Close()

	b := NewMLBridge(srv.URL, testSource(), testLogger())
	_, err := b.Forecast(context.Background(), domain.ForecastRequest{City: "Delhi", BaseAQI: 120, Days: 7})
	assert.Error(t, err)
}

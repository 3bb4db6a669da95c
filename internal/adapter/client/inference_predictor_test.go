package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/metrics"
)

func TestInferencePredictor_Predict(t *testing.T) {
	t.Run("returns response and records latency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"prediction":0,"churn":"No","churn_probability":23,"risk_level":"Low Risk"}`))
		}))
		defer server.Close()

		m := metrics.New(prometheus.NewRegistry())
		predictor := NewInferencePredictor(NewInferenceClient(server.URL, 5*time.Second), m)

		req := entity.DefaultPredictionRequest()
		result, err := predictor.Predict(context.Background(), &req)

		require.NoError(t, err)
		assert.Equal(t, "Low Risk", result.RiskLevel)
		assert.Equal(t, 1, testutil.CollectAndCount(m.InferenceDuration))
	})

	t.Run("passes errors through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		predictor := NewInferencePredictor(NewInferenceClient(server.URL, 5*time.Second), nil)

		req := entity.DefaultPredictionRequest()
		result, err := predictor.Predict(context.Background(), &req)

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

package client

import (
	"context"
	"time"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/metrics"
)

// InferencePredictor adapts InferenceClient to the Predictor interface
type InferencePredictor struct {
	client  *InferenceClient
	metrics *metrics.Metrics
}

// NewInferencePredictor creates a new InferencePredictor. m may be nil.
func NewInferencePredictor(client *InferenceClient, m *metrics.Metrics) service.Predictor {
	return &InferencePredictor{client: client, metrics: m}
}

// Predict forwards req to the inference service and times the round trip
func (p *InferencePredictor) Predict(ctx context.Context, req *entity.PredictionRequest) (*entity.PredictionResponse, error) {
	start := time.Now()
	resp, err := p.client.Predict(ctx, req)
	p.metrics.ObserveInference(time.Since(start).Seconds())

	return resp, err
}

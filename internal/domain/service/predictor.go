package service

import (
	"context"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

// Predictor scores a validated request against the churn model
type Predictor interface {
	// Predict sends one request and waits for the model's answer
	Predict(ctx context.Context, req *entity.PredictionRequest) (*entity.PredictionResponse, error)
}

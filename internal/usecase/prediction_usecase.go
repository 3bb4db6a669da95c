package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/metrics"
)

// ValidationError is returned when a submission violates the field schema.
// No inference call is made for such a submission.
type ValidationError struct {
	Fields schema.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// PredictionOutput is a validated request together with its rendered result
type PredictionOutput struct {
	Request entity.PredictionRequest `json:"request"`
	Result  *entity.PredictionResult `json:"result"`
}

// PredictionUsecase validates a candidate submission and sends it for inference
type PredictionUsecase interface {
	Predict(ctx context.Context, candidate schema.Values) (*PredictionOutput, error)
}

type predictionUsecase struct {
	validator *schema.Validator
	predictor service.Predictor
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewPredictionUsecase creates a new prediction usecase
func NewPredictionUsecase(validator *schema.Validator, predictor service.Predictor, m *metrics.Metrics, logger *zap.Logger) PredictionUsecase {
	return &predictionUsecase{
		validator: validator,
		predictor: predictor,
		metrics:   m,
		logger:    logger,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, candidate schema.Values) (*PredictionOutput, error) {
	req, err := u.validate(candidate)
	if err != nil {
		return nil, err
	}

	result, err := u.infer(ctx, req)
	if err != nil {
		return nil, err
	}

	return &PredictionOutput{Request: *req, Result: result}, nil
}

func (u *predictionUsecase) validate(candidate schema.Values) (*entity.PredictionRequest, error) {
	req, fieldErrs := u.validator.Validate(candidate)
	if len(fieldErrs) > 0 {
		u.metrics.ObservePrediction(metrics.OutcomeInvalid)
		return nil, &ValidationError{Fields: fieldErrs}
	}
	return req, nil
}

// infer calls the predictor and records the outcome
func (u *predictionUsecase) infer(ctx context.Context, req *entity.PredictionRequest) (*entity.PredictionResult, error) {
	resp, err := u.predictor.Predict(ctx, req)
	if err != nil {
		u.metrics.ObservePrediction(outcomeOf(err))
		u.logger.Warn("inference failed", zap.Error(err))
		return nil, err
	}

	result := entity.NewPredictionResult(resp)
	u.metrics.ObservePrediction(metrics.OutcomeSuccess)
	u.metrics.ObserveRisk(result.Badge.Band.String())
	u.logger.Debug("prediction completed",
		zap.Int("prediction", result.Prediction),
		zap.Float64("churn_probability", result.ChurnProbability),
		zap.String("risk_level", result.RiskLevel),
	)
	return result, nil
}

func outcomeOf(err error) string {
	var malformed *service.MalformedResponseError
	if errors.As(err, &malformed) {
		return metrics.OutcomeMalformed
	}
	return metrics.OutcomeTransport
}

// failureOf converts an inference error into the form's error banner
func failureOf(err error) entity.FailureState {
	var transportErr *service.TransportError
	if errors.As(err, &transportErr) {
		return entity.FailureState{
			Kind:       entity.FailureTransport,
			Message:    transportErr.Error(),
			StatusCode: transportErr.StatusCode,
		}
	}

	var malformed *service.MalformedResponseError
	if errors.As(err, &malformed) {
		return entity.FailureState{Kind: entity.FailureMalformed, Message: malformed.Error()}
	}

	return entity.FailureState{Kind: entity.FailureTransport, Message: err.Error()}
}

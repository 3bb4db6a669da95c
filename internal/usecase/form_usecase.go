package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/repository"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/metrics"
)

// Error definitions for form usecase
var (
	ErrFormNotFound       = errors.New("form not found")
	ErrSubmissionInFlight = errors.New("a prediction request is already in flight for this form")
)

// FormOutput represents the state of a prediction form
type FormOutput struct {
	FormID    uuid.UUID                `json:"form_id"`
	Values    entity.PredictionRequest `json:"values"`
	Loading   bool                     `json:"loading"`
	Result    *entity.PredictionResult `json:"result"`
	Error     *entity.FailureState     `json:"error"`
	ShowReset bool                     `json:"show_reset"`
	Version   int64                    `json:"version"`
	UpdatedAt string                   `json:"updated_at"`
}

// FormUsecase drives the lifecycle of prediction form instances
type FormUsecase interface {
	Open(ctx context.Context) (*FormOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*FormOutput, error)
	Submit(ctx context.Context, id uuid.UUID, candidate schema.Values) (*FormOutput, error)
	Reset(ctx context.Context, id uuid.UUID) (*FormOutput, error)
	Close(ctx context.Context, id uuid.UUID) error
}

// settleAttempts bounds how often the outcome of a request is written
// before the form is released with a storage failure.
const settleAttempts = 3

type formUsecase struct {
	repo          repository.FormStateRepository
	prediction    *predictionUsecase
	metrics       *metrics.Metrics
	logger        *zap.Logger
	settleBackoff time.Duration
}

// NewFormUsecase creates a new form usecase
func NewFormUsecase(repo repository.FormStateRepository, validator *schema.Validator, predictor service.Predictor, m *metrics.Metrics, logger *zap.Logger) FormUsecase {
	return &formUsecase{
		repo: repo,
		prediction: &predictionUsecase{
			validator: validator,
			predictor: predictor,
			metrics:   m,
			logger:    logger,
		},
		metrics:       m,
		logger:        logger,
		settleBackoff: 50 * time.Millisecond,
	}
}

func (u *formUsecase) Open(ctx context.Context) (*FormOutput, error) {
	state := entity.NewFormState(uuid.New())
	if err := u.repo.Create(ctx, state); err != nil {
		return nil, err
	}
	return toFormOutput(state), nil
}

func (u *formUsecase) Get(ctx context.Context, id uuid.UUID) (*FormOutput, error) {
	state, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toFormOutput(state), nil
}

func (u *formUsecase) Submit(ctx context.Context, id uuid.UUID, candidate schema.Values) (*FormOutput, error) {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}

	req, err := u.prediction.validate(candidate)
	if err != nil {
		return nil, err
	}

	_, err = u.repo.Update(ctx, id, applyEvent(entity.SubmitStarted{Values: *req}))
	if err != nil {
		if errors.Is(err, entity.ErrSubmissionInFlight) {
			u.metrics.ObservePrediction(metrics.OutcomeInFlight)
		}
		return nil, mapRepoError(err)
	}

	// A started request runs to completion even if the caller disconnects.
	ctx = context.WithoutCancel(ctx)

	var event entity.Event
	result, err := u.prediction.infer(ctx, req)
	if err != nil {
		event = entity.SubmitFailed{Failure: failureOf(err)}
	} else {
		event = entity.SubmitSucceeded{Result: result}
	}

	state, err := u.settle(ctx, id, event)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return toFormOutput(state), nil
}

// settle records the outcome of the in-flight request. Store errors are
// retried with a linear backoff. When the outcome still cannot be written the
// form is released with a storage failure, so it never stays loading.
func (u *formUsecase) settle(ctx context.Context, id uuid.UUID, event entity.Event) (entity.FormState, error) {
	var err error
	for attempt := 0; attempt < settleAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * u.settleBackoff)
		}

		var state entity.FormState
		state, err = u.repo.Update(ctx, id, applyEvent(event))
		if err == nil {
			return state, nil
		}
		if !isTransientStoreError(err) {
			return entity.FormState{}, err
		}
		u.logger.Warn("failed to record submission outcome",
			zap.String("form_id", id.String()),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	released := entity.SubmitFailed{Failure: entity.FailureState{
		Kind:    entity.FailureStorage,
		Message: "Could not save the prediction result: " + err.Error(),
	}}
	state, releaseErr := u.repo.Update(ctx, id, applyEvent(released))
	if releaseErr != nil {
		u.logger.Error("failed to release form after store errors",
			zap.String("form_id", id.String()),
			zap.NamedError("store_error", err),
			zap.Error(releaseErr),
		)
		return entity.FormState{}, err
	}
	return state, nil
}

func applyEvent(e entity.Event) repository.UpdateFunc {
	return func(s entity.FormState) (entity.FormState, error) {
		return s.Apply(e)
	}
}

// isTransientStoreError reports whether err came from the store rather than
// from the form itself (gone, or no longer waiting for this outcome).
func isTransientStoreError(err error) bool {
	return !errors.Is(err, repository.ErrFormNotFound) &&
		!errors.Is(err, entity.ErrSubmissionInFlight) &&
		!errors.Is(err, entity.ErrNoSubmissionInFlight)
}

func (u *formUsecase) Reset(ctx context.Context, id uuid.UUID) (*FormOutput, error) {
	state, err := u.repo.Update(ctx, id, applyEvent(entity.Reset{}))
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toFormOutput(state), nil
}

// Close drops an abandoned form. Closing an unknown form is not an error.
func (u *formUsecase) Close(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrFormNotFound):
		return ErrFormNotFound
	case errors.Is(err, entity.ErrSubmissionInFlight):
		return ErrSubmissionInFlight
	default:
		return err
	}
}

func toFormOutput(s entity.FormState) *FormOutput {
	return &FormOutput{
		FormID:    s.ID,
		Values:    s.Values,
		Loading:   s.Loading,
		Result:    s.Result,
		Error:     s.Error,
		ShowReset: s.Result != nil,
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

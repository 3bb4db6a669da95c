package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Form state transition errors
var (
	ErrSubmissionInFlight   = errors.New("a prediction request is already in flight")
	ErrNoSubmissionInFlight = errors.New("no prediction request is in flight")
)

// FailureKind classifies the error banner of a form
type FailureKind string

const (
	FailureTransport FailureKind = "transport"
	FailureMalformed FailureKind = "malformed_response"
	// FailureStorage means the outcome could not be recorded on the form
	FailureStorage FailureKind = "storage"
)

// FailureState is the error banner of a form
type FailureState struct {
	Kind       FailureKind `json:"kind"`
	Message    string      `json:"message"`
	StatusCode int         `json:"status_code,omitempty"`
}

// FormState is the UI state of one prediction form instance.
// Values are never modified in place: Apply returns a new state.
type FormState struct {
	ID        uuid.UUID         `json:"id"`
	Values    PredictionRequest `json:"values"`
	Loading   bool              `json:"loading"`
	Result    *PredictionResult `json:"result"`
	Error     *FailureState     `json:"error"`
	Version   int64             `json:"version"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewFormState returns a form with default values and nothing pending
func NewFormState(id uuid.UUID) FormState {
	return FormState{
		ID:        id,
		Values:    DefaultPredictionRequest(),
		UpdatedAt: time.Now().UTC(),
	}
}

// Event is a discrete change to a form
type Event interface {
	transition(s FormState) (FormState, error)
}

// SubmitStarted marks a validated request as sent
type SubmitStarted struct {
	Values PredictionRequest
}

// SubmitSucceeded delivers the result of the in-flight request
type SubmitSucceeded struct {
	Result *PredictionResult
}

// SubmitFailed delivers the failure of the in-flight request
type SubmitFailed struct {
	Failure FailureState
}

// Reset restores default values and clears result and error
type Reset struct{}

// Apply returns the state after e. On error s is returned unchanged.
func (s FormState) Apply(e Event) (FormState, error) {
	next, err := e.transition(s)
	if err != nil {
		return s, err
	}
	next.Version = s.Version + 1
	next.UpdatedAt = time.Now().UTC()
	return next, nil
}

func (e SubmitStarted) transition(s FormState) (FormState, error) {
	if s.Loading {
		return s, ErrSubmissionInFlight
	}
	s.Values = e.Values
	s.Loading = true
	s.Result = nil
	s.Error = nil
	return s, nil
}

func (e SubmitSucceeded) transition(s FormState) (FormState, error) {
	if !s.Loading {
		return s, ErrNoSubmissionInFlight
	}
	s.Loading = false
	s.Result = e.Result
	s.Error = nil
	return s, nil
}

func (e SubmitFailed) transition(s FormState) (FormState, error) {
	if !s.Loading {
		return s, ErrNoSubmissionInFlight
	}
	failure := e.Failure
	s.Loading = false
	s.Result = nil
	s.Error = &failure
	return s, nil
}

func (Reset) transition(s FormState) (FormState, error) {
	if s.Loading {
		return s, ErrSubmissionInFlight
	}
	s.Values = DefaultPredictionRequest()
	s.Result = nil
	s.Error = nil
	return s, nil
}

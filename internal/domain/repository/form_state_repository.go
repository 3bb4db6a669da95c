package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

// ErrFormNotFound is returned for unknown or expired form instances
var ErrFormNotFound = errors.New("form not found")

// UpdateFunc computes the next state from the current one.
// Returning an error aborts the update and leaves the stored state untouched.
type UpdateFunc func(current entity.FormState) (entity.FormState, error)

// FormStateRepository holds the transient state of open forms
type FormStateRepository interface {
	// Create stores a new form state
	Create(ctx context.Context, state entity.FormState) error

	// Get retrieves a form state by its ID
	Get(ctx context.Context, id uuid.UUID) (entity.FormState, error)

	// Update applies fn atomically with respect to other updates of the same form
	Update(ctx context.Context, id uuid.UUID, fn UpdateFunc) (entity.FormState, error)

	// Delete removes a form state
	Delete(ctx context.Context, id uuid.UUID) error
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/repository"
)

type entry struct {
	state     entity.FormState
	expiresAt time.Time
}

type formStateRepository struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	data map[uuid.UUID]entry
}

// NewFormStateRepository creates an in-process form state store.
// Entries expire ttl after their last write.
func NewFormStateRepository(ttl time.Duration) repository.FormStateRepository {
	return newFormStateRepository(ttl, time.Now)
}

func newFormStateRepository(ttl time.Duration, now func() time.Time) *formStateRepository {
	return &formStateRepository{
		ttl:  ttl,
		now:  now,
		data: make(map[uuid.UUID]entry),
	}
}

func (r *formStateRepository) Create(_ context.Context, state entity.FormState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	r.data[state.ID] = entry{state: state, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *formStateRepository) Get(_ context.Context, id uuid.UUID) (entity.FormState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(id)
	if !ok {
		return entity.FormState{}, repository.ErrFormNotFound
	}
	return e.state, nil
}

func (r *formStateRepository) Update(_ context.Context, id uuid.UUID, fn repository.UpdateFunc) (entity.FormState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(id)
	if !ok {
		return entity.FormState{}, repository.ErrFormNotFound
	}

	next, err := fn(e.state)
	if err != nil {
		return e.state, err
	}

	r.data[id] = entry{state: next, expiresAt: r.now().Add(r.ttl)}
	return next, nil
}

func (r *formStateRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, id)
	return nil
}

// lookup must be called with mu held
func (r *formStateRepository) lookup(id uuid.UUID) (entry, bool) {
	e, ok := r.data[id]
	if !ok {
		return entry{}, false
	}
	if r.now().After(e.expiresAt) {
		delete(r.data, id)
		return entry{}, false
	}
	return e, true
}

// sweep drops expired entries; mu must be held
func (r *formStateRepository) sweep() {
	now := r.now()
	for id, e := range r.data {
		if now.After(e.expiresAt) {
			delete(r.data, id)
		}
	}
}

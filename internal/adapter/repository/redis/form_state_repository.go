package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/repository"
)

const (
	keyPrefix  = "stayflow:form:"
	maxRetries = 10
)

// ErrTooMuchContention is returned when concurrent writers keep invalidating an update
var ErrTooMuchContention = errors.New("form state update aborted after repeated conflicts")

type formStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFormStateRepository creates a Redis-backed form state store.
// Each write refreshes the key's ttl.
func NewFormStateRepository(client *redis.Client, ttl time.Duration) repository.FormStateRepository {
	return &formStateRepository{client: client, ttl: ttl}
}

func formKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *formStateRepository) Create(ctx context.Context, state entity.FormState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode form state: %w", err)
	}
	return r.client.Set(ctx, formKey(state.ID), data, r.ttl).Err()
}

func (r *formStateRepository) Get(ctx context.Context, id uuid.UUID) (entity.FormState, error) {
	return r.load(ctx, r.client, formKey(id))
}

func (r *formStateRepository) Update(ctx context.Context, id uuid.UUID, fn repository.UpdateFunc) (entity.FormState, error) {
	key := formKey(id)

	var current, next entity.FormState
	txf := func(tx *redis.Tx) error {
		var err error
		current, err = r.load(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err = fn(current)
		if err != nil {
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode form state: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return next, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return current, err
	}

	return current, ErrTooMuchContention
}

func (r *formStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, formKey(id)).Err()
}

func (r *formStateRepository) load(ctx context.Context, c redis.Cmdable, key string) (entity.FormState, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.FormState{}, repository.ErrFormNotFound
	}
	if err != nil {
		return entity.FormState{}, err
	}

	var state entity.FormState
	if err := json.Unmarshal(data, &state); err != nil {
		return entity.FormState{}, fmt.Errorf("failed to decode form state: %w", err)
	}
	return state, nil
}

package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

// DemoSource marks placeholder output that did not come from the model
const DemoSource = "demo"

// ErrEmptyDemoInput is returned when the quick-predict input is blank
var ErrEmptyDemoInput = errors.New("enter a customer ID or description")

// DemoInput is the free-text input of the landing quick-predict widget
type DemoInput struct {
	Query string `json:"query" form:"query"`
}

// DemoOutput is a random illustrative score
type DemoOutput struct {
	Query  string      `json:"query"`
	Score  int         `json:"score"`
	Band   entity.Band `json:"band"`
	Label  string      `json:"label"`
	Color  string      `json:"color"`
	Advice string      `json:"advice"`
	Source string      `json:"source"`
}

// DemoUsecase produces placeholder scores for the landing page
type DemoUsecase interface {
	QuickPredict(ctx context.Context, input *DemoInput) (*DemoOutput, error)
}

type demoUsecase struct {
	delay time.Duration
	score func() int
}

// NewDemoUsecase creates a demo usecase that answers after delay
func NewDemoUsecase(delay time.Duration) DemoUsecase {
	return &demoUsecase{
		delay: delay,
		score: func() int { return rand.Intn(100) },
	}
}

func (u *demoUsecase) QuickPredict(ctx context.Context, input *DemoInput) (*DemoOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, ErrEmptyDemoInput
	}

	if u.delay > 0 {
		timer := time.NewTimer(u.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	score := u.score()
	risk := entity.Classify(float64(score), entity.ScoreBarThresholds)

	return &DemoOutput{
		Query:  query,
		Score:  score,
		Band:   risk.Band,
		Label:  risk.Band.ShortLabel(),
		Color:  risk.Color,
		Advice: risk.Band.Advice(),
		Source: DemoSource,
	}, nil
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
)

// Metric is one animated counter on the landing page
type Metric struct {
	Label    string
	Icon     string
	Prefix   string
	Suffix   string
	Value    float64
	Decimals int
}

// Feature is one product feature card
type Feature struct {
	Title string
	Desc  string
	Icon  string
	Badge string
}

// RecentScore is one row of the recent predictions table
type RecentScore struct {
	ID    string
	Score int
	Delta string
	Risk  entity.Risk
}

// Label is the compact band name shown in the row badge
func (r RecentScore) Label() string {
	return r.Risk.Band.ShortLabel()
}

var (
	landingMetrics = []Metric{
		{Label: "Predictions Today", Icon: "⚡", Value: 12847},
		{Label: "Accuracy Rate", Icon: "🎯", Value: 87.4, Suffix: "%", Decimals: 1},
		{Label: "Customers Retained", Icon: "🔒", Value: 3210, Suffix: "+"},
		{Label: "Revenue Saved", Icon: "💰", Value: 2.4, Prefix: "$", Suffix: "M", Decimals: 1},
	}

	landingFeatures = []Feature{
		{
			Title: "Real-Time Scoring",
			Desc:  "Get instant churn probability scores for individual customers the moment you need them.",
			Icon:  "▶",
		},
		{
			Title: "Batch Analysis",
			Desc:  "Upload entire customer segments and receive ranked risk reports within seconds.",
			Icon:  "◈",
			Badge: "Coming Soon",
		},
		{
			Title: "Feature Insights",
			Desc:  "Understand which factors (tenure, usage, billing) drive each churn prediction.",
			Icon:  "◉",
		},
		{
			Title: "API Access",
			Desc:  "Plug directly into your CRM or data pipeline with our clean prediction endpoint.",
			Icon:  "⬡",
		},
	}

	recentScores = []RecentScore{
		newRecentScore("CX-4821", 87, "+12%"),
		newRecentScore("CX-1093", 23, "-5%"),
		newRecentScore("CX-7742", 61, "+3%"),
		newRecentScore("CX-2255", 91, "+18%"),
		newRecentScore("CX-5580", 34, "-2%"),
	}
)

func newRecentScore(id string, score int, delta string) RecentScore {
	return RecentScore{
		ID:    id,
		Score: score,
		Delta: delta,
		Risk:  entity.Classify(float64(score), entity.ScoreBarThresholds),
	}
}

// LandingPage is the view model of the landing page
type LandingPage struct {
	Metrics  []Metric
	Features []Feature
	Recent   []RecentScore
}

// PredictPage is the view model of the prediction form page
type PredictPage struct {
	Sections      []schema.SectionFields
	FieldCount    int
	StrictNumeric bool
}

// PageHandler renders the HTML shells. Prediction results are
// rendered in the browser from the JSON API.
type PageHandler struct {
	strictNumeric bool
}

// NewPageHandler creates a new page handler
func NewPageHandler(strictNumeric bool) *PageHandler {
	return &PageHandler{strictNumeric: strictNumeric}
}

// Landing handles GET /
func (h *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", LandingPage{
		Metrics:  landingMetrics,
		Features: landingFeatures,
		Recent:   recentScores,
	})
}

// Predict handles GET /predict
func (h *PageHandler) Predict(c *gin.Context) {
	c.HTML(http.StatusOK, "predict.html", PredictPage{
		Sections:      schema.Sections(),
		FieldCount:    len(entity.FieldNames),
		StrictNumeric: h.strictNumeric,
	})
}

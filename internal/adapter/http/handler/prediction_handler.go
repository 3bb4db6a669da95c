package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/usecase"
)

// SchemaOutput describes the prediction form for clients that render it themselves.
// Fields follow the request's field order, Sections the page layout.
type SchemaOutput struct {
	Fields        []schema.Field         `json:"fields"`
	Sections      []schema.SectionFields `json:"sections"`
	StrictNumeric bool                   `json:"strict_numeric"`
}

// PredictionHandler handles stateless prediction requests
type PredictionHandler struct {
	predictionUC usecase.PredictionUsecase
	validator    *schema.Validator
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionUC usecase.PredictionUsecase, validator *schema.Validator) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		validator:    validator,
	}
}

// GetSchema handles GET /api/v1/schema
func (h *PredictionHandler) GetSchema(c *gin.Context) {
	respondSuccess(c, http.StatusOK, SchemaOutput{
		Fields:        schema.Fields(),
		Sections:      schema.Sections(),
		StrictNumeric: h.validator.StrictNumeric(),
	})
}

// CreatePrediction handles POST /api/v1/predictions
func (h *PredictionHandler) CreatePrediction(c *gin.Context) {
	candidate, err := BindCandidate(c)
	if err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.predictionUC.Predict(c.Request.Context(), candidate)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

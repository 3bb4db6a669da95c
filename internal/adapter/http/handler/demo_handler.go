package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/usecase"
)

// DemoHandler serves the landing page quick-predict widget
type DemoHandler struct {
	demoUC usecase.DemoUsecase
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(demoUC usecase.DemoUsecase) *DemoHandler {
	return &DemoHandler{demoUC: demoUC}
}

// QuickPredict handles POST /api/v1/demo/predictions
func (h *DemoHandler) QuickPredict(c *gin.Context) {
	var input usecase.DemoInput
	if err := c.ShouldBind(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.demoUC.QuickPredict(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

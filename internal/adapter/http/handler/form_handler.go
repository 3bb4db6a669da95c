package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/usecase"
)

// FormHandler handles prediction form instances
type FormHandler struct {
	formUC usecase.FormUsecase
}

// NewFormHandler creates a new form handler
func NewFormHandler(formUC usecase.FormUsecase) *FormHandler {
	return &FormHandler{formUC: formUC}
}

// OpenForm handles POST /api/v1/forms
func (h *FormHandler) OpenForm(c *gin.Context) {
	output, err := h.formUC.Open(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, output)
}

// GetForm handles GET /api/v1/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "form id")
		return
	}

	output, err := h.formUC.Get(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// SubmitForm handles POST /api/v1/forms/:id/submit.
// Inference failures are part of the returned form state, not an HTTP error.
func (h *FormHandler) SubmitForm(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "form id")
		return
	}

	candidate, err := BindCandidate(c)
	if err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.formUC.Submit(c.Request.Context(), id, candidate)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// ResetForm handles POST /api/v1/forms/:id/reset
func (h *FormHandler) ResetForm(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "form id")
		return
	}

	output, err := h.formUC.Reset(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// CloseForm handles DELETE /api/v1/forms/:id
func (h *FormHandler) CloseForm(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "form id")
		return
	}

	if err := h.formUC.Close(c.Request.Context(), id); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

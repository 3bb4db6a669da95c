package handler

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
)

// ExtractUUIDParam extracts and parses a UUID parameter from the URL path.
// Returns the parsed UUID or an error if the parameter is invalid.
func ExtractUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	idStr := c.Param(param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}

// BindCandidate reads a raw form submission from a JSON object of strings,
// a multipart form or a form-encoded body. Only the first value of a
// repeated key is kept.
func BindCandidate(c *gin.Context) (schema.Values, error) {
	switch c.ContentType() {
	case binding.MIMEJSON:
		var values schema.Values
		if err := c.ShouldBindJSON(&values); err != nil {
			return nil, fmt.Errorf("request body must be a JSON object of strings: %w", err)
		}
		if values == nil {
			values = schema.Values{}
		}
		return values, nil
	case binding.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("failed to parse multipart body: %w", err)
		}
		return schema.FromURLValues(url.Values(form.Value)), nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form body: %w", err)
	}
	return schema.FromURLValues(c.Request.PostForm), nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
)

// predictResponse mirrors the service payload with pointers so absent fields are detectable
type predictResponse struct {
	Prediction       *int     `json:"prediction"`
	Churn            *string  `json:"churn"`
	ChurnProbability *float64 `json:"churn_probability"`
	RiskLevel        *string  `json:"risk_level"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// InferenceClient is an HTTP client for the churn inference service
type InferenceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewInferenceClient creates a new inference service client.
// A zero timeout leaves requests unbounded.
func NewInferenceClient(baseURL string, timeout time.Duration) *InferenceClient {
	return &InferenceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict posts the 19 fields form-encoded to /predict
func (c *InferenceClient) Predict(ctx context.Context, req *entity.PredictionRequest) (*entity.PredictionResponse, error) {
	body := req.FormValues().Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", strings.NewReader(body))
	if err != nil {
		return nil, &service.TransportError{Cause: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &service.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &service.TransportError{
				StatusCode: resp.StatusCode,
				Cause:      fmt.Errorf("failed to read response body: %w", err),
			}
		}
		return nil, &service.TransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var raw predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &service.MalformedResponseError{Reason: "failed to decode response", Cause: err}
	}

	return raw.toEntity()
}

// Health checks the inference service health
func (c *InferenceClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Some deployments answer 200 with a plain body.
		return &HealthResponse{Status: "ok"}, nil
	}

	return &result, nil
}

func (r *predictResponse) toEntity() (*entity.PredictionResponse, error) {
	switch {
	case r.Prediction == nil:
		return nil, &service.MalformedResponseError{Reason: "missing prediction"}
	case r.Churn == nil:
		return nil, &service.MalformedResponseError{Reason: "missing churn"}
	case r.ChurnProbability == nil:
		return nil, &service.MalformedResponseError{Reason: "missing churn_probability"}
	case r.RiskLevel == nil:
		return nil, &service.MalformedResponseError{Reason: "missing risk_level"}
	}

	if *r.Prediction != 0 && *r.Prediction != 1 {
		return nil, &service.MalformedResponseError{Reason: fmt.Sprintf("prediction %d is not 0 or 1", *r.Prediction)}
	}
	if p := *r.ChurnProbability; p < 0 || p > 100 {
		return nil, &service.MalformedResponseError{Reason: fmt.Sprintf("churn_probability %v is outside [0, 100]", p)}
	}

	return &entity.PredictionResponse{
		Prediction:       *r.Prediction,
		Churn:            *r.Churn,
		ChurnProbability: *r.ChurnProbability,
		RiskLevel:        *r.RiskLevel,
	}, nil
}

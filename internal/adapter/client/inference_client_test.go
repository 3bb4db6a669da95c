package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
)

func TestInferenceClient_Predict(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			require.NoError(t, r.ParseForm())
			assert.Len(t, r.PostForm, 19)
			for _, name := range entity.FieldNames {
				assert.Len(t, r.PostForm[name], 1, name)
			}
			assert.Equal(t, "Fiber optic", r.PostForm.Get("InternetService"))
			assert.Equal(t, "Bank transfer (automatic)", r.PostForm.Get("PaymentMethod"))
			assert.Equal(t, "110", r.PostForm.Get("MonthlyCharges"))

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"prediction":1,"churn":"Yes","churn_probability":82,"risk_level":"High Risk"}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		req := entity.DefaultPredictionRequest()
		req.PaymentMethod = "Bank transfer (automatic)"

		client := NewInferenceClient(server.URL, 5*time.Second)
		result, err := client.Predict(context.Background(), &req)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Prediction)
		assert.Equal(t, "Yes", result.Churn)
		assert.Equal(t, 82.0, result.ChurnProbability)
		assert.Equal(t, "High Risk", result.RiskLevel)
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"prediction":0,"churn":"No","churn_probability":12.5,"risk_level":"Low Risk"}`))
		}))
		defer server.Close()

		req := entity.DefaultPredictionRequest()
		result, err := NewInferenceClient(server.URL+"/", 0).Predict(context.Background(), &req)

		require.NoError(t, err)
		assert.Equal(t, 12.5, result.ChurnProbability)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		req := entity.DefaultPredictionRequest()
		result, err := NewInferenceClient(server.URL, 5*time.Second).Predict(context.Background(), &req)

		assert.Nil(t, result)
		var transportErr *service.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, 500, transportErr.StatusCode)
		assert.Equal(t, "internal error", transportErr.Body)
		assert.Equal(t, "Server error: 500 - internal error", err.Error())
	})

	t.Run("server error with truncated body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Length", "100")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream"))
		}))
		defer server.Close()

		req := entity.DefaultPredictionRequest()
		_, err := NewInferenceClient(server.URL, 5*time.Second).Predict(context.Background(), &req)

		var transportErr *service.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, 502, transportErr.StatusCode)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Contains(t, err.Error(), "Server error: 502 - failed to read response body")
	})

	t.Run("connection error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		req := entity.DefaultPredictionRequest()
		_, err := NewInferenceClient(url, time.Second).Predict(context.Background(), &req)

		var transportErr *service.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, 0, transportErr.StatusCode)
		assert.Error(t, transportErr.Cause)
		assert.NotEmpty(t, err.Error())
	})

	t.Run("malformed responses", func(t *testing.T) {
		bodies := map[string]string{
			"not json":            `<html>oops</html>`,
			"missing probability": `{"prediction":1,"churn":"Yes","risk_level":"High Risk"}`,
			"missing risk level":  `{"prediction":1,"churn":"Yes","churn_probability":82}`,
			"missing prediction":  `{"churn":"Yes","churn_probability":82,"risk_level":"High Risk"}`,
			"missing churn":       `{"prediction":1,"churn_probability":82,"risk_level":"High Risk"}`,
			"bad class":           `{"prediction":2,"churn":"Yes","churn_probability":82,"risk_level":"High Risk"}`,
			"probability > 100":   `{"prediction":1,"churn":"Yes","churn_probability":182,"risk_level":"High Risk"}`,
			"wrong type":          `{"prediction":"1","churn":"Yes","churn_probability":82,"risk_level":"High Risk"}`,
		}

		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write([]byte(body))
				}))
				defer server.Close()

				req := entity.DefaultPredictionRequest()
				result, err := NewInferenceClient(server.URL, time.Second).Predict(context.Background(), &req)

				assert.Nil(t, result)
				var malformed *service.MalformedResponseError
				assert.True(t, errors.As(err, &malformed), "got %v", err)
			})
		}
	})

	t.Run("context cancellation surfaces as transport error", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		req := entity.DefaultPredictionRequest()
		_, err := NewInferenceClient(server.URL, 0).Predict(ctx, &req)

		var transportErr *service.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestInferenceClient_Health(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		}))
		defer server.Close()

		result, err := NewInferenceClient(server.URL, 5*time.Second).Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "healthy", result.Status)
	})

	t.Run("unhealthy service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewInferenceClient(server.URL, 5*time.Second).Health(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/client"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/http/handler"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/http/middleware"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/http/web"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/repository/memory"
	redisrepo "github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/repository/redis"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/repository"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/config"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/metrics"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/usecase"
)

// Dependencies are the collaborators the router wires together
type Dependencies struct {
	Config    *config.Config
	Inference *client.InferenceClient
	Redis     *redis.Client // nil keeps form state in process
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Logger    *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(deps.Metrics))

	// Pages and assets
	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.Static())

	// Health endpoints
	var inferenceHealth handler.InferenceHealthChecker
	if deps.Inference != nil {
		inferenceHealth = deps.Inference
	}
	healthHandler := handler.NewHealthHandler(deps.Redis, inferenceHealth)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Initialize repositories
	var formRepo repository.FormStateRepository
	if deps.Redis != nil {
		formRepo = redisrepo.NewFormStateRepository(deps.Redis, cfg.Form.TTL)
	} else {
		formRepo = memory.NewFormStateRepository(cfg.Form.TTL)
	}

	// Initialize usecases
	validator := schema.NewValidator(cfg.Form.StrictNumeric)
	predictor := client.NewInferencePredictor(deps.Inference, deps.Metrics)
	predictionUC := usecase.NewPredictionUsecase(validator, predictor, deps.Metrics, deps.Logger)
	formUC := usecase.NewFormUsecase(formRepo, validator, predictor, deps.Metrics, deps.Logger)
	demoUC := usecase.NewDemoUsecase(cfg.Demo.Delay)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(cfg.Form.StrictNumeric)
	predictionHandler := handler.NewPredictionHandler(predictionUC, validator)
	formHandler := handler.NewFormHandler(formUC)
	demoHandler := handler.NewDemoHandler(demoUC)

	router.GET("/", pageHandler.Landing)
	router.GET("/predict", pageHandler.Predict)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/schema", predictionHandler.GetSchema)
		v1.POST("/predictions", predictionHandler.CreatePrediction)

		// Form routes
		forms := v1.Group("/forms")
		{
			forms.POST("", formHandler.OpenForm)
			forms.GET("/:id", formHandler.GetForm)
			forms.POST("/:id/submit", formHandler.SubmitForm)
			forms.POST("/:id/reset", formHandler.ResetForm)
			forms.DELETE("/:id", formHandler.CloseForm)
		}

		v1.POST("/demo/predictions", demoHandler.QuickPredict)
	}

	return router
}

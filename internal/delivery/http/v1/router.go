package v1

import (
	"log/slog"
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const contactPath = "/api/contact"

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	ProjectUC      domain.ProjectUsecase
	CatalogUC      domain.CatalogUsecase
	HealthUC       usecase.HealthUsecase
	ContactLimiter ratelimit.Limiter
	Clock          ratelimit.Clock // nil means time.Now
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer // nil disables /metrics
	Logger         *slog.Logger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	var origins []string
	if deps.Config.FrontendURL != "" {
		origins = append(origins, deps.Config.FrontendURL)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: origins,
		AllowLocalhost: deps.Config.GinMode != gin.ReleaseMode,
		PublicPaths:    []string{contactPath},
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.GinMode == gin.ReleaseMode))
	r.Use(middleware.RequestMetrics(deps.Metrics))
	r.Use(middleware.ErrorHandler(deps.Logger))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		if !ok {
			c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Message: "Degraded", Data: status})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	limiter := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limiter: deps.ContactLimiter,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
		Now:     deps.Clock,
	})
	NewContactHandler(api, deps.ContactUC, limiter)
	NewProjectHandler(api, deps.ProjectUC)
	NewCatalogHandler(api, deps.CatalogUC)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}

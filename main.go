package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/config"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document/handler"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document/repository"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document/service"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/llm"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/translate"
	"github.com/legaldocgen/legaldocgen/backend/go-services/pkg/logger"
	"github.com/legaldocgen/legaldocgen/backend/go-services/pkg/metrics"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: project=%s region=%s model=%s", cfg.Gemini.ProjectID, cfg.Gemini.Region, cfg.Gemini.Model)

	ctx := context.Background()

	generator, err := llm.NewGeminiGenerator(ctx, llm.GeminiConfig{
		ProjectID: cfg.Gemini.ProjectID,
		Region:    cfg.Gemini.Region,
		Model:     cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatalf("failed to create Gemini client: %v", err)
	}
	defer func() { _ = generator.Close() }()

	translator, err := translate.NewGoogleTranslator(ctx, cfg.Translate.CredentialsFile)
	if err != nil {
		logger.Fatalf("failed to create translate client: %v", err)
	}
	defer func() { _ = translator.Close() }()

	repo := repository.NewMemoryRepo()
	svc := service.New(repo, generator, translator, service.Timeouts{
		LLM:       cfg.Gemini.Timeout,
		Translate: cfg.Translate.Timeout,
	})

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery with a JSON envelope that does
	// not leak internals.
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("panic recovered: %v", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "An unexpected error occurred on the server",
		})
	}))

	handler.RegisterDocumentRoutes(r, svc)
	handler.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting legal document service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

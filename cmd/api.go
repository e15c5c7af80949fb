package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/handlers"
	"github.com/integra/explorer/internal/middleware"
	"github.com/integra/explorer/internal/tracing"

	// Import the generated Swagger docs
	"github.com/integra/explorer/docs"
)

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve the explorer API",
		Long:  "Serve the explorer procedures over HTTP, with swagger docs at /swagger and metrics at /metrics",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

// @title Integra Explorer
// @version v0.1.0
// @description API for exploring Integra document registry transactions
// @BasePath /
// @Security BasicAuth
// @securityDefinitions.basic BasicAuth
func RunApi(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.InitTracer(ctx, config.Cfg.Tracing.ServiceName, config.Cfg.Tracing.Endpoint)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing, continuing without it")
	}
	defer shutdownTracer(context.Background())

	a, err := newApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize explorer")
	}
	defer a.Close()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Cfg.API.Port),
		Handler:           newRouter(handlers.New(a.service)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("API server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("API server shutdown failed")
	}
}

func newRouter(h *handlers.Handler) *gin.Engine {
	docs.SwaggerInfo.Host = config.Cfg.API.Host

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Cors(config.Cfg.API.AllowedOrigins))

	// Add Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Add Swagger JSON endpoint
	r.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("Failed to read Swagger documentation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provide Swagger documentation"})
			return
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, doc)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", h.Health)

	root := r.Group("/api")
	{
		root.Use(middleware.Authorization(config.Cfg.API.BasicAuth.Username, config.Cfg.API.BasicAuth.Password))
		if config.Cfg.API.RateLimit.Enabled {
			limiter := middleware.NewRateLimiter(config.Cfg.API.RateLimit.RequestsPerSecond, config.Cfg.API.RateLimit.Burst)
			root.Use(middleware.RateLimit(limiter))
		}
		h.Register(root)
	}
	return r
}

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"banksim/cmd/docs"
	"banksim/internal/core/ports"
	"banksim/internal/core/services"
	"banksim/internal/dto"
	"banksim/internal/handlers"
	"banksim/internal/middleware"
	"banksim/internal/platform/config"
	"banksim/internal/utils/idgen"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Banksim API
// @version 1.0
// @description Multi-user banking ledger simulator: post a command batch, get the response records.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	generator := idgen.New(cfg.RandomSeed)
	runner := services.NewSimulationService(generator, logger)

	// Offline mode: one simulation request in, responses out, no server.
	if cfg.BatchInput != "" {
		if err := runBatch(cfg, runner); err != nil {
			logger.Error("Batch run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/healthz", handlers.GetHome)

	v1 := r.Group("/api/v1")
	handlers.RegisterSimulationRoutes(v1, runner)

	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runBatch reads one simulation request from BatchInput and writes the
// response records to BatchOutput (or stdout when unset).
func runBatch(cfg *config.Config, runner ports.SimulationRunner) error {
	raw, err := os.ReadFile(cfg.BatchInput)
	if err != nil {
		return err
	}

	var req dto.SimulationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return err
	}

	responses := runner.Run(context.Background(), req)

	out, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if cfg.BatchOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(cfg.BatchOutput, out, 0o644)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	return corsCfg
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

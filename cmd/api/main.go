package main

import (
	"context"
	"fmt"

	"report-srv/config"
	configPostgre "report-srv/config/postgre"
	"report-srv/internal/httpserver"
	"report-srv/pkg/analytics"
	"report-srv/pkg/charts"
	"report-srv/pkg/log"
	pkgRedis "report-srv/pkg/redis"
	"report-srv/pkg/renderer"
)

// @title       Streaming Platform Report Service API
// @description Report generation service: user, subscription and click-event analytics exported as CSV or PDF.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := pkgRedis.NewRedis(pkgRedis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize analytics client. An empty API key is allowed; reports
	// then carry empty click sections.
	analyticsClient := analytics.New(logger, analytics.Config{
		BaseURL:   cfg.Analytics.BaseURL,
		APIKey:    cfg.Analytics.APIKey,
		ProjectID: cfg.Analytics.ProjectID,
		Limit:     cfg.Analytics.Limit,
	}, redisClient)
	if cfg.Analytics.APIKey == "" {
		logger.Warnf(ctx, "Analytics API key not configured, click sections will be empty")
	}

	// 6. Initialize chart rendering client
	chartsClient := charts.New(charts.Config{
		BaseURL: cfg.Charts.BaseURL,
		Width:   cfg.Charts.Width,
		Height:  cfg.Charts.Height,
	})

	// 7. Initialize the headless PDF renderer (browser starts on first use)
	rendererClient := renderer.New(logger, renderer.Config{
		ExecPath: cfg.Renderer.ExecPath,
	})

	// 8. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		Analytics: analyticsClient,
		Charts:    chartsClient,
		Renderer:  rendererClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

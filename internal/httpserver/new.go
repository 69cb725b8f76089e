package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"report-srv/pkg/analytics"
	"report-srv/pkg/charts"
	"report-srv/pkg/log"
	pkgRedis "report-srv/pkg/redis"
	"report-srv/pkg/renderer"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Data stores
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Domain clients
	analytics analytics.IAnalytics
	charts    charts.ICharts
	renderer  renderer.IRenderer
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Data stores
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Domain clients
	Analytics analytics.IAnalytics
	Charts    charts.ICharts
	Renderer  renderer.IRenderer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		analytics:   cfg.Analytics,
		charts:      cfg.Charts,
		renderer:    cfg.Renderer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.analytics == nil {
		return errors.New("analytics client is required")
	}
	if srv.charts == nil {
		return errors.New("charts client is required")
	}
	if srv.renderer == nil {
		return errors.New("renderer is required")
	}
	return nil
}

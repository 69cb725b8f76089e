package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"report-srv/internal/middleware"
	reportHTTP "report-srv/internal/report/delivery/http"
	reportPostgre "report-srv/internal/report/repository/postgre"
	reportUsecase "report-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)

	uc := reportUsecase.New(repo, srv.analytics, srv.charts, srv.renderer, srv.l, reportUsecase.Config{})

	handler := reportHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}

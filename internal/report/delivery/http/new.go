package http

import (
	"github.com/gin-gonic/gin"

	"report-srv/internal/middleware"
	"report-srv/internal/report"
	"report-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc report.UseCase
}

func New(l log.Logger, uc report.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	reports.GET("/:report_type", h.GetReport)
}

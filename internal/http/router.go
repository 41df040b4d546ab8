package http

import (
	"net/http"

	"log-report/internal/reporters"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterConfig holds the request limits applied by the report handlers.
type RouterConfig struct {
	MaxBodyBytes int64
}

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reporters.ReportService, httpLogger loggers.Logger, cfg RouterConfig) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	generateReportHandler := NewGenerateReportHandler(reportService, cfg.MaxBodyBytes)
	getReportHandler := NewGetReportHandler(reportService)

	router.Post("/reports", errorHandlingAdapter(generateReportHandler))
	router.Get("/reports/{"+paramReportID+"}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

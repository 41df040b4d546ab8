package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-report/internal/aggregators"
	internalhttp "log-report/internal/http"
	"log-report/internal/ingestors"
	"log-report/internal/models"
	"log-report/internal/parsers"
	"log-report/internal/reporters"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/filestorages"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/ulid"
	"log-report/internal/sources"
	"log-report/internal/stores"
)

const appName = "log-report"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	server        *http.Server
	reportService reporters.ReportService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, loggers.NewOutput(loggers.FileConfig{
		Path:       config.Log.File.Path,
		MaxSizeMB:  config.Log.File.MaxSizeMB,
		MaxBackups: config.Log.File.MaxBackups,
		Compress:   config.Log.File.Compress,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize report storage
	fileStorage, err := filestorages.NewFileStorage(config.Report.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewReportStore(fileStorage)

	// Initialize pipeline
	endpointFilter, err := ingestors.NewEndpointFilter(config.Report.EndpointPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize endpoint filter: %w", err)
	}
	diagnosticsSink := ingestors.NewLoggerDiagnosticsSink(config.Diagnostics.WarningsPerSecond, config.Diagnostics.Burst)
	recordLoader := ingestors.NewRecordLoader(parsers.NewLineParser(), endpointFilter, diagnosticsSink)
	reportAggregator := aggregators.NewReportAggregator(config.Report.ParallelAggregation)

	// Initialize report service
	defaultFormat, err := models.NewOutputFormatFromString(config.Report.DefaultFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default format: %w", err)
	}
	reportService := reporters.NewReportService(recordLoader, reportAggregator, reportStore, defaultFormat)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger, internalhttp.RouterConfig{
		MaxBodyBytes: config.Server.MaxBodyBytes,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		reportService: reportService,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-report service on port %d (log_level=%s, output_dir=%s, default_format=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Report.OutputDir,
			app.config.Report.DefaultFormat)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

// GenerateReport runs one command line report over the file at inputPath and
// writes it to the format's fixed artifact in the output directory.
func (app *App) GenerateReport(ctx context.Context, inputPath string, format string) (*reporters.ReportResult, error) {
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "cli").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Str(loggers.FieldInput, inputPath).
		Logger()
	ctx = runLogger.WithContext(ctx)

	source, err := sources.OpenFile(inputPath)
	if err != nil {
		runLogger.Error().Err(err).Msg("error opening log input")
		return nil, fmt.Errorf("%w: %w", ingestors.ErrIoFailure, err)
	}
	defer source.Close()

	result, err := app.reportService.GenerateReport(ctx, reporters.GenerateReportRequest{
		Source: source,
		Format: format,
	})
	if err != nil {
		runLogger.Error().Err(err).Msg("report run failed")
		return nil, err
	}
	return result, nil
}

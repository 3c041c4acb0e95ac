package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quoteserver/internal/config"
	"github.com/mrlokans/quoteserver/internal/database"
	"github.com/mrlokans/quoteserver/internal/database/quotes"
	httpcontrollers "github.com/mrlokans/quoteserver/internal/http"
	"github.com/mrlokans/quoteserver/internal/importers"
	"github.com/mrlokans/quoteserver/internal/metrics"
	"github.com/mrlokans/quoteserver/internal/scheduler"
	"github.com/mrlokans/quoteserver/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App is everything Serve needs once startup has succeeded.
type App struct {
	Router    *gin.Engine
	Database  *database.Database
	Scheduler *scheduler.ReimportScheduler
}

// Close stops the scheduler and closes the database.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if err := a.Database.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

// Setup opens the store, runs the startup import to completion and builds the
// router. A store that cannot be opened or a source that cannot be read is
// returned as an error and no router is built.
func Setup(ctx context.Context, cfg *config.Config, version string) (*App, error) {
	db, err := database.Open(cfg.Database.URL, database.Options{
		MaxOpenConns: cfg.MaxOpenConns,
		LogLevel:     cfg.GormLogLevel(),
	})
	if err != nil {
		return nil, err
	}

	repo := quotes.NewRepository(db.DB)
	importer := importers.NewImporter(repo)

	if cfg.InitFrom != "" {
		log.Printf("Importing quotes from %s", cfg.InitFrom)
		result, err := importer.ImportFile(ctx, cfg.InitFrom)
		metrics.RecordImport(result.Inserted, result.Skipped, result.Failed)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Printf("Import complete: %d records, %d inserted, %d skipped, %d failed",
			result.Total, result.Inserted, result.Skipped, result.Failed)
	}

	app := &App{Database: db}

	if cfg.Import.Schedule != "" {
		if cfg.InitFrom == "" {
			log.Printf("WARNING: IMPORT_SCHEDULE is set but INIT_FROM is empty, re-import disabled")
		} else {
			app.Scheduler = scheduler.NewReimportScheduler(importer, cfg.InitFrom, cfg.Import.Schedule)
			if err := app.Scheduler.Start(ctx); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to start re-import scheduler: %w", err)
			}
		}
	}

	app.Router = httpcontrollers.NewRouter(httpcontrollers.RouterConfig{
		QuoteReader:     services.NewQuoteService(repo),
		Database:        db,
		Counter:         repo,
		StaticPath:      cfg.StaticPath,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
		Version:         version,
	})

	return app, nil
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at http://%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("quote_server: error: listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Run starts the server and blocks until it is shut down. Startup failures
// exit the process with status 1.
func Run(cfg *config.Config, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := Setup(ctx, cfg, version)
	if err != nil {
		log.Fatalf("quote_server: error: %v", err)
	}

	Serve(app.Router, cfg, func(ctx context.Context) {
		cancel()
		app.Close()
	})
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transcontrol-service/internal/api"
	"transcontrol-service/internal/infrastructure/config"
	"transcontrol-service/internal/infrastructure/persistence"
	mongoRepo "transcontrol-service/internal/interface/repository"
	"transcontrol-service/internal/usecase"
	"transcontrol-service/pkg/logger"
	"transcontrol-service/pkg/metrics"
	"transcontrol-service/pkg/tsv"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Transport Control Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Fixed "today" used everywhere instead of a live clock
	refDate := func() time.Time { return cfg.ReferenceDate }
	log.Info("Reference date loaded", "date", cfg.ReferenceDate.Format("2006-01-02"))

	appMetrics := metrics.NewMetrics("transcontrol")

	// Set up repositories
	transportRepo := mongoRepo.NewMongoTransportRepository(db)
	statusRepo := mongoRepo.NewMongoStatusEntryRepository(db)
	scheduleRepo := mongoRepo.NewMongoScheduleRepository(db)
	preregRepo := mongoRepo.NewMongoPreRegistrationRepository(db)

	// Set up usecases
	parser := tsv.NewParser(log)
	importer := usecase.NewImporter(transportRepo, statusRepo, parser, refDate, log, appMetrics)
	worksheet := usecase.NewWorksheet(statusRepo, refDate, log)
	planner := usecase.NewPlanner(scheduleRepo, refDate, time.Now, log, appMetrics)
	reports := usecase.NewReports(statusRepo, scheduleRepo, refDate, log, appMetrics)
	dashboard := usecase.NewDashboard(statusRepo, scheduleRepo, refDate, log)
	suggestions := usecase.NewSuggestions(preregRepo, cfg.SuggestionCacheTTL, log)

	router := api.NewRouter(api.Dependencies{
		Worksheet:   worksheet,
		Importer:    importer,
		Planner:     planner,
		Reports:     reports,
		Dashboard:   dashboard,
		Suggestions: suggestions,
		Logger:      log,
		Metrics:     appMetrics,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Transport Control Service stopped")
}

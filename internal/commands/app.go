package commands

import (
	"fmt"
	"log/slog"
	"os"

	"finsight/internal/categorizer"
	"finsight/internal/config"
	"finsight/internal/database"
	"finsight/internal/parser"
	"finsight/internal/repositories"
	"finsight/internal/services"
	"finsight/internal/validation"

	"github.com/joho/godotenv"
)

// App wires configuration, storage and services for one CLI
// invocation.
type App struct {
	Config    *config.Config
	DB        *database.DB
	Validator *validation.Validator

	Statements services.StatementServiceInterface
	Analytics  services.AnalyticsServiceInterface
	Training   services.TrainingServiceInterface
	Users      services.UserServiceInterface
	Seeder     services.SeedServiceInterface
}

func newApp() (*App, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	metrics := services.NewPrometheusMetrics()

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	store := categorizer.NewArtifactStore(cfg.Model.ArtifactDir)
	cat := categorizer.New(
		categorizer.WithArtifactStore(store),
		categorizer.WithObserver(metrics.RecordCategorization),
		categorizer.WithForestConfig(categorizer.ForestConfig(
			cfg.Model.NumTrees, cfg.Model.MaxDepth, cfg.Model.Seed)),
	)

	parserService := parser.NewService()
	generator := services.NewTransactionGenerator(cfg.Model.Seed)

	return &App{
		Config:     cfg,
		DB:         db,
		Validator:  validation.GetValidator(),
		Statements: services.NewStatementService(parserService, cat, transactionRepo, userRepo, metrics),
		Analytics:  services.NewAnalyticsService(transactionRepo, userRepo, cfg.Analytics, metrics),
		Training:   services.NewTrainingService(cat, transactionRepo, metrics),
		Users:      services.NewUserService(userRepo),
		Seeder:     services.NewSeedService(generator, cat, transactionRepo, userRepo),
	}, nil
}

func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler))
}

package app

import (
	"fmt"

	"github.com/ipupy/tesoreria/internal/config"
	"github.com/ipupy/tesoreria/internal/db"
	"github.com/ipupy/tesoreria/internal/repository"
	"github.com/ipupy/tesoreria/internal/service"
	"github.com/ipupy/tesoreria/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg           *config.Config
	DB            *sqlx.DB
	ChurchService *service.ChurchService
	ReportService *service.ReportService
	UploadService *service.UploadService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	churchRepository := repository.NewChurchRepository(database)
	reportRepository := repository.NewReportRepository(database)

	// Storage
	receiptStorage := storage.NewLocalStorage(cfg.UploadsDir)

	// Services
	churchService := service.NewChurchService(churchRepository)
	reportService := service.NewReportService(reportRepository, churchRepository)
	uploadService := service.NewUploadService(receiptStorage, cfg.UploadsDir)

	return &App{
		Cfg:           cfg,
		DB:            database,
		ChurchService: churchService,
		ReportService: reportService,
		UploadService: uploadService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

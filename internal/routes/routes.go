package routes

import (
	"net/http"

	"github.com/ipupy/tesoreria/internal/app"
	"github.com/ipupy/tesoreria/internal/handler"
	"github.com/ipupy/tesoreria/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	upload := handler.NewUploadHandler(app.UploadService, app.Cfg.MaxUploadBytes)
	church := handler.NewChurchHandler(app.ChurchService)
	report := handler.NewReportHandler(app.ReportService)

	mux := http.NewServeMux()

	// API
	mux.HandleFunc("POST /api/upload", upload.Upload)
	mux.HandleFunc("GET /api/churches", church.List)
	mux.HandleFunc("POST /api/churches", church.Create)
	mux.HandleFunc("GET /api/reports", report.List)
	mux.HandleFunc("POST /api/reports", report.Create)

	// Stored receipts
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.Cfg.UploadsDir))))

	// Any other POST path: bare 404, empty body
	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// Static front end; "/" resolves to index.html
	mux.Handle("GET /", http.FileServer(http.Dir(app.Cfg.WebDir)))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}

// Command addchurch registers a church from the command line.
// Registering churches is an administrative action and has no place in
// the report-submission flow, so it lives in its own binary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ipupy/tesoreria/internal/app"
	"github.com/ipupy/tesoreria/internal/config"
	"github.com/ipupy/tesoreria/internal/logger"
	"github.com/ipupy/tesoreria/internal/service"
)

func main() {
	name := flag.String("name", "", "church name (required)")
	city := flag.String("city", "", "city (required)")
	pastor := flag.String("pastor", "", "pastor name (required)")
	phone := flag.String("phone", "", "contact phone (optional)")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	church, err := app.ChurchService.Create(service.CreateChurchInput{
		Name:   *name,
		City:   *city,
		Pastor: *pastor,
		Phone:  *phone,
	})
	if err != nil {
		slog.Error("failed to create church", "error", err)
		os.Exit(1)
	}

	fmt.Printf("church created: id=%d name=%q city=%q pastor=%q\n", church.ID, church.Name, church.City, church.Pastor)
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"wms/cmd"
	"wms/internal/adapters/out/postgres"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/seed"

	"github.com/labstack/gommon/log"
)

func main() {
	catalogPath := flag.String("catalog", "configs/catalog.example.yaml", "path to the YAML catalog")
	operatorName := flag.String("operator", "seed", "operator recorded on opening receipts")
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger := cmd.NewLogger(configs.LogLevel)

	catalog, err := seed.LoadCatalogFile(*catalogPath)
	if err != nil {
		log.Fatalf("Error reading catalog: %v", err)
	}

	operator, err := kernel.NewOperator(*operatorName)
	if err != nil {
		log.Fatalf("Invalid operator: %v", err)
	}

	db, err := postgres.Connect(configs.ConnConfig())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err = postgres.Migrate(db.DB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db.DB, logger)
	createItem := app.CreateCreateItemCommandHandler()
	createLocation := app.CreateCreateLocationCommandHandler()
	receive := app.CreateCreateStockCommandHandler()
	loader := seed.NewLoader(createItem, createLocation, receive, operator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := loader.Load(ctx, catalog); err != nil {
		logger.Error("Seeding stopped", "catalog", *catalogPath, "error", err)
		os.Exit(1)
	}
}

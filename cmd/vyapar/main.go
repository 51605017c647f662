package main

import (
	"fmt"
	"os"

	"github.com/super-sam-code/VyaparTracker/internal/cli"
	"github.com/super-sam-code/VyaparTracker/internal/config"
	"github.com/super-sam-code/VyaparTracker/internal/infra"
	"github.com/super-sam-code/VyaparTracker/internal/repository"
	"github.com/super-sam-code/VyaparTracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, err := infra.SetupLogger(cfg.LogDir, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	log.Logger = logger
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// StorageUnavailable is fatal: without the store there is nothing to run.
	store, err := infra.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer store.Close()

	db := store.DB()
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	app := &cli.App{
		Config:     cfg,
		Log:        logger,
		Store:      store,
		Products:   service.NewProductService(productRepo, categoryRepo, supplierRepo, invRepo, txRepo),
		Stock:      service.NewStockService(productRepo, invRepo, txRepo),
		Categories: service.NewCategoryService(categoryRepo),
		Suppliers:  service.NewSupplierService(supplierRepo, productRepo),
		Reports:    service.NewReportService(invRepo, productRepo),
	}

	root := cli.NewRootCommand(app)
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/stocker/internal/adapters/catalog"
	"github.com/AntonioJCosta/stocker/internal/adapters/commandparser"
	"github.com/AntonioJCosta/stocker/internal/config"
	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/core/services/dispatch"
	"github.com/AntonioJCosta/stocker/internal/handlers/cli"
	"github.com/AntonioJCosta/stocker/internal/handlers/ui"
	"github.com/AntonioJCosta/stocker/internal/logging"
	"github.com/AntonioJCosta/stocker/internal/repositories/cart"
	"github.com/AntonioJCosta/stocker/internal/repositories/inventory"
	"github.com/AntonioJCosta/stocker/internal/repositories/storage"
	"github.com/AntonioJCosta/stocker/internal/repositories/vendors"
)

// Version is set at build time
var Version = "dev"

func main() {
	parser := commandparser.NewParser()
	rootCmd := cli.NewRootCommand(Version, parser.Words(), func(cfg *config.Config) (cli.Dispatcher, error) {
		return bootstrap(cfg, parser)
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cfg *config.Config, parser dispatch.Parser) (cli.Dispatcher, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Console = cfg.Log.Console
	if cfg.Log.File != "" {
		logCfg.File = cfg.Log.File
	}
	if cfg.Log.MaxSize > 0 {
		logCfg.MaxSize = cfg.Log.MaxSize
	}
	if cfg.Log.MaxBackups > 0 {
		logCfg.MaxBackups = cfg.Log.MaxBackups
	}
	if cfg.Log.MaxAge > 0 {
		logCfg.MaxAge = cfg.Log.MaxAge
	}
	logger := logging.Init(logCfg)

	inv := inventory.NewInventory()
	dir := vendors.NewDirectory()
	env := commands.Env{
		Inventory: inv,
		Cart:      cart.NewCart(),
		Vendors:   dir,
		Storage:   storage.NewFileStorage(),
		DataFile:  cfg.DataFile,
	}
	svc := dispatch.NewService(parser, env, logger)

	if _, err := svc.Load(); err != nil {
		return nil, err
	}

	// --- Predefined catalog ---
	if cfg.CatalogFile != "" {
		provider, err := catalog.NewYAMLProvider(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("initializing catalog provider: %w", err)
		}
		if err := svc.ApplyCatalog(provider, inv, dir); err != nil {
			// The shell is usable without the catalog.
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: %v. Continuing without predefined catalog.", err)))
		}
	}

	logger.Debug().Str("dataFile", cfg.DataFile).Msg("stocker started")
	return svc, nil
}

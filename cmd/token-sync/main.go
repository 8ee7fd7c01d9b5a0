package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/company"
	"github.com/ibet-fin/ibet-indexer/internal/config"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/indexer"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/token"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadTokenSyncConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "token-sync",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting token sync worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	fs := adapter.NewFileSystem()
	httpClient := adapter.NewHTTPClient(cfg.Company.RequestTimeout)

	// Connect to the blockchain node
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial blockchain node", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer ethClient.Close()
	chainClient := chain.NewClient(ethClient, clockAdapter)

	// Load the contract ABI registry
	registry, err := contracts.LoadRegistry(fs, jsonAdapter, cfg.Chain.ContractsPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load contract registry", zap.Error(err), zap.String("path", cfg.Chain.ContractsPath))
	}

	// Company directory resolver
	companies := company.NewList(cfg.Company.ListURL, cfg.Company.RefreshInterval, httpClient, clockAdapter)

	// One adapter per enabled token template
	templates := cfg.Templates.EnabledTemplates()
	if len(templates) == 0 {
		logger.FatalCtx(ctx, "No token templates enabled")
	}
	logger.InfoCtx(ctx, "Indexing token templates", zap.Any("templates", templates))

	adapters, err := token.NewAdapters(templates, chainClient, registry, companies)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create token adapters", zap.Error(err))
	}

	processor := indexer.NewProcessor(indexer.ProcessorConfig{
		SecPerRecord:    cfg.SecPerRecord,
		RefreshInterval: cfg.RefreshInterval,
	}, dataStore, adapters, clockAdapter)

	errCh := make(chan error, 1)
	go func() {
		if err := processor.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", processor.Name()))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := processor.Stop(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Worker forced to shutdown", zap.Error(err))
	}

	logger.Info("Token sync worker stopped")
}

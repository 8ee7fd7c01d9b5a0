package main

import (
	"context"
	"errors"
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
	"github.com/ibet-fin/ibet-indexer/internal/config"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/emitter"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/providers/ethereum"
	"github.com/ibet-fin/ibet-indexer/internal/providers/jetstream"
	"github.com/ibet-fin/ibet-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventEmitterConfig(*configFile, *envPath)
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
			"service": "event-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting event emitter")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	fs := adapter.NewFileSystem()
	natsJS := adapter.NewNatsJetStream()

	// Connect to the blockchain node over websocket for live log subscriptions
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Chain.WebSocketURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial blockchain node", zap.Error(err), zap.String("websocket_url", cfg.Chain.WebSocketURL))
	}
	defer ethClient.Close()
	chainClient := chain.NewClient(ethClient, clockAdapter)

	// Load the contract ABI registry
	registry, err := contracts.LoadRegistry(fs, jsonAdapter, cfg.Chain.ContractsPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load contract registry", zap.Error(err), zap.String("path", cfg.Chain.ContractsPath))
	}

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Initialize chain event subscriber
	subscriber, err := ethereum.NewSubscriber(ethereum.SubscriberConfig{
		ExchangeAddresses: cfg.Chain.ExchangeAddresses,
	}, chainClient, dataStore, registry)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain subscriber", zap.Error(err))
	}

	eventEmitter := emitter.NewEmitter(subscriber, natsPublisher, dataStore, emitter.Config{
		StartBlock:      cfg.Chain.StartBlock,
		CursorSaveFreq:  cfg.CursorSaveFreq,
		CursorSaveDelay: cfg.CursorSaveDelay,
	}, clockAdapter)
	defer eventEmitter.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
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
		logger.ErrorCtx(ctx, err, zap.String("component", "event-emitter"))
		cancel()
	}

	logger.Info("Event emitter stopped")
}

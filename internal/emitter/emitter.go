// Package emitter streams on-chain events of the listed tokens into NATS.
// It resumes from a durable block cursor so restarts replay missed events.
package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/messaging"
	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// EmitterCursorName is the sync_cursor row owned by the event emitter
const EmitterCursorName = "event-emitter"

// Config holds the configuration for the event emitter
type Config struct {
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	startBlock := e.config.StartBlock
	if startBlock == 0 {
		lastBlock, err := e.store.GetSyncCursor(ctx, EmitterCursorName)
		if err != nil {
			return fmt.Errorf("failed to get block cursor: %w", err)
		}

		if lastBlock > 0 {
			startBlock = lastBlock + 1
			logger.Info("Resuming from last processed block", zap.Uint64("block", startBlock))
		} else {
			latestBlock, err := e.subscriber.GetLatestBlock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get latest block number: %w", err)
			}
			startBlock = latestBlock
			logger.Info("Starting from latest block", zap.Uint64("block", startBlock))
		}
	} else {
		logger.Info("Starting from configured block", zap.Uint64("block", startBlock))
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Starting event subscription")

		lastSavedBlock := uint64(0)
		lastSaveTime := e.clock.Now()

		handler := func(event *domain.TokenEvent) error {
			if !event.Valid() {
				logger.Warn("Dropping structurally invalid event",
					zap.String("tx_hash", event.TxHash),
					zap.String("event_type", string(event.EventType)))
				return nil
			}

			if err := e.publisher.PublishEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.TxHash, err)
			}

			// Save cursor periodically (every N blocks or N seconds)
			shouldSave := event.BlockNumber-lastSavedBlock >= e.config.CursorSaveFreq ||
				e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

			if shouldSave {
				if err := e.store.SetSyncCursor(ctx, EmitterCursorName, event.BlockNumber); err != nil {
					logger.Error(fmt.Errorf("failed to save block cursor: %w", err))
				} else {
					lastSavedBlock = event.BlockNumber
					lastSaveTime = e.clock.Now()
				}
			}

			return nil
		}

		if err := e.subscriber.SubscribeEvents(ctx, startBlock, handler); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
	e.publisher.Close()
}

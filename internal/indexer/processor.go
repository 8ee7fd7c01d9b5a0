package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
	"github.com/ibet-fin/ibet-indexer/internal/token"
	"github.com/ibet-fin/ibet-indexer/internal/types"
)

// ProcessorConfig holds configuration for the token detail processor
type ProcessorConfig struct {
	// SecPerRecord is the minimum wall time spent per token, throttling the
	// RPC load of a pass
	SecPerRecord time.Duration
	// RefreshInterval is the minimum wall time between two passes
	RefreshInterval time.Duration
}

// processor keeps the per-template token detail tables in step with the
// chain. It runs one serial pass per interval: for every enabled template it
// reads the public listings, fetches each token's attributes through the
// template's adapter, and merges the whole template batch in one transaction.
type processor struct {
	config    ProcessorConfig
	store     store.Store
	adapters  []token.Adapter
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewProcessor creates the token detail processor
func NewProcessor(config ProcessorConfig, st store.Store, adapters []token.Adapter, clock adapter.Clock) Worker {
	return &processor{
		config:    config,
		store:     st,
		adapters:  adapters,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the worker's name
func (p *processor) Name() string {
	return "token-detail-processor"
}

// Start begins the processor's main loop
func (p *processor) Start(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("processor already running")
	}
	defer func() {
		p.running.Store(false)
		close(p.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting token detail processor",
		zap.Duration("sec_per_record", p.config.SecPerRecord),
		zap.Duration("refresh_interval", p.config.RefreshInterval),
		zap.Int("templates", len(p.adapters)),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Token detail processor stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-p.stopChan:
			logger.InfoCtx(ctx, "Token detail processor stop requested")
			return nil
		default:
		}

		started := p.clock.Now()
		if err := p.runPass(ctx); err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				return nil
			case errors.Is(err, domain.ErrServiceUnavailable):
				logger.WarnCtx(ctx, "Chain node unavailable, pass abandoned", zap.Error(err))
			default:
				logger.ErrorCtx(ctx, fmt.Errorf("token detail pass failed: %w", err))
			}
		}

		if wait := p.config.RefreshInterval - p.clock.Since(started); wait > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-p.stopChan:
				return nil
			case <-p.clock.After(wait):
			}
		}
	}
}

// Stop gracefully stops the processor
func (p *processor) Stop(ctx context.Context) error {
	if !p.running.Load() {
		return nil
	}
	close(p.stopChan)

	select {
	case <-p.stoppedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runPass refreshes every enabled template once
func (p *processor) runPass(ctx context.Context) error {
	passID := ulid.Make().String()

	for _, a := range p.adapters {
		if err := p.refreshTemplate(ctx, passID, a); err != nil {
			return err
		}
	}
	return nil
}

// refreshTemplate fetches and merges every public listing of one template.
// The merge is one transaction: a database failure rolls the whole template
// batch back, while a token whose listing vanished mid-pass is skipped with a
// warning.
func (p *processor) refreshTemplate(ctx context.Context, passID string, a token.Adapter) error {
	template := a.Template()

	listings, err := p.store.GetPublicListings(ctx, template)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Refreshing token details",
		zap.String("pass_id", passID),
		zap.String("template", string(template)),
		zap.Int("tokens", len(listings)),
	)

	details := make([]schema.TokenDetail, 0, len(listings))
	for _, listed := range listings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stopChan:
			return nil
		default:
		}

		fetchStarted := p.clock.Now()
		tokenAddress := types.ChecksumAddress(listed.Listing.TokenAddress)

		detail, err := a.Fetch(ctx, tokenAddress, listed.Listing)
		switch {
		case err == nil:
			detail.SetCreated(p.clock.Now().UTC())
			details = append(details, detail)
		case errors.Is(err, domain.ErrCallFailed):
			// A token with unreadable mandatory attributes must not poison
			// the rest of the template batch
			logger.WarnCtx(ctx, "Skipping token with unreadable attributes",
				zap.String("pass_id", passID),
				zap.String("token_address", tokenAddress),
				zap.Error(err))
		default:
			return err
		}

		if wait := p.config.SecPerRecord - p.clock.Since(fetchStarted); wait > 0 {
			p.clock.Sleep(wait)
		}
	}

	skipped, err := p.store.UpsertTokenDetails(ctx, details)
	if err != nil {
		return err
	}
	for _, tokenAddress := range skipped {
		logger.WarnCtx(ctx, "Listing removed during pass, token not merged",
			zap.String("pass_id", passID),
			zap.String("token_address", tokenAddress))
	}

	logger.InfoCtx(ctx, "Template refresh complete",
		zap.String("pass_id", passID),
		zap.String("template", string(template)),
		zap.Int("merged", len(details)-len(skipped)),
		zap.Int("skipped", len(skipped)),
	)
	return nil
}

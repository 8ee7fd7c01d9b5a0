package indexer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

// BlockSyncCursorName is the sync_cursor row owned by the block sync worker
const BlockSyncCursorName = "block-sync"

// BlockSyncConfig holds configuration for the block sync worker
type BlockSyncConfig struct {
	// ChainID is needed to recover transaction senders
	ChainID int64
	// BatchSize is the maximum number of blocks fetched per pass
	BatchSize uint64
	// WorkerPoolSize bounds the concurrent block fetches of a pass
	WorkerPoolSize int
	// Interval is the sleep between passes once caught up
	Interval time.Duration
}

// blockSync mirrors blocks and transactions into the explorer tables. Each
// pass fetches a bounded range above the stored cursor with a worker pool,
// then persists the whole range and the advanced cursor in one transaction.
type blockSync struct {
	config    BlockSyncConfig
	store     store.Store
	chain     chain.Client
	clock     adapter.Clock
	signer    ethtypes.Signer
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewBlockSync creates the block sync worker
func NewBlockSync(config BlockSyncConfig, st store.Store, chainClient chain.Client, clock adapter.Clock) Worker {
	return &blockSync{
		config:    config,
		store:     st,
		chain:     chainClient,
		clock:     clock,
		signer:    ethtypes.LatestSignerForChainID(big.NewInt(config.ChainID)),
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the worker's name
func (b *blockSync) Name() string {
	return "block-sync"
}

// Start begins the worker's main loop
func (b *blockSync) Start(ctx context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return fmt.Errorf("block sync already running")
	}
	defer func() {
		b.running.Store(false)
		close(b.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting block sync",
		zap.Int64("chain_id", b.config.ChainID),
		zap.Uint64("batch_size", b.config.BatchSize),
		zap.Int("worker_pool_size", b.config.WorkerPoolSize),
		zap.Duration("interval", b.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Block sync stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-b.stopChan:
			logger.InfoCtx(ctx, "Block sync stop requested")
			return nil
		default:
		}

		caughtUp, err := b.runPass(ctx)
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				return nil
			case errors.Is(err, domain.ErrServiceUnavailable):
				logger.WarnCtx(ctx, "Chain node unavailable, block sync pass abandoned", zap.Error(err))
				caughtUp = true
			default:
				logger.ErrorCtx(ctx, fmt.Errorf("block sync pass failed: %w", err))
				caughtUp = true
			}
		}

		// Only sleep once caught up so backfill runs at full speed
		if caughtUp {
			select {
			case <-ctx.Done():
				return nil
			case <-b.stopChan:
				return nil
			case <-b.clock.After(b.config.Interval):
			}
		}
	}
}

// Stop gracefully stops the worker
func (b *blockSync) Stop(ctx context.Context) error {
	if !b.running.Load() {
		return nil
	}
	close(b.stopChan)

	select {
	case <-b.stoppedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runPass syncs one bounded block range, reporting whether the index has
// caught up with the chain head
func (b *blockSync) runPass(ctx context.Context) (bool, error) {
	passID := ulid.Make().String()

	cursor, err := b.store.GetSyncCursor(ctx, BlockSyncCursorName)
	if err != nil {
		return true, err
	}

	latest, err := b.chain.BlockNumber(ctx)
	if err != nil {
		return true, err
	}
	if cursor >= latest {
		return true, nil
	}

	from := cursor + 1
	to := cursor + b.config.BatchSize
	if to > latest {
		to = latest
	}

	logger.InfoCtx(ctx, "Syncing block range",
		zap.String("pass_id", passID),
		zap.Uint64("from", from),
		zap.Uint64("to", to),
		zap.Uint64("chain_head", latest),
	)

	blocks := make([]*schema.BlockData, to-from+1)
	txBatches := make([][]*schema.TxData, to-from+1)
	var mu sync.Mutex

	pool := pond.NewPool(b.config.WorkerPoolSize, pond.WithContext(ctx))
	group := pool.NewGroup()
	for number := from; number <= to; number++ {
		number := number
		group.SubmitErr(func() error {
			block, txs, err := b.fetchBlock(ctx, number)
			if err != nil {
				return err
			}
			mu.Lock()
			blocks[number-from] = block
			txBatches[number-from] = txs
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		pool.StopAndWait()
		return true, err
	}
	pool.StopAndWait()

	var allTxs []*schema.TxData
	for _, txs := range txBatches {
		allTxs = append(allTxs, txs...)
	}

	if err := b.store.SaveBlockBatch(ctx, blocks, allTxs, BlockSyncCursorName, to); err != nil {
		return true, err
	}

	logger.InfoCtx(ctx, "Block range synced",
		zap.String("pass_id", passID),
		zap.Uint64("cursor", to),
		zap.Int("blocks", len(blocks)),
		zap.Int("transactions", len(allTxs)),
	)
	return to >= latest, nil
}

// fetchBlock fetches one block with retry and maps it into explorer rows
func (b *blockSync) fetchBlock(ctx context.Context, number uint64) (*schema.BlockData, []*schema.TxData, error) {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)

	block, err := backoff.RetryWithData(func() (*ethtypes.Block, error) {
		return b.chain.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	}, policy)
	if err != nil {
		return nil, nil, err
	}

	transactions := block.Transactions()
	hashes := make([]string, 0, len(transactions))
	txs := make([]*schema.TxData, 0, len(transactions))
	for index, tx := range transactions {
		hashes = append(hashes, tx.Hash().Hex())

		from, err := ethtypes.Sender(b.signer, tx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to recover sender of %s: %w", tx.Hash().Hex(), err)
		}

		var to *string
		if tx.To() != nil {
			addr := tx.To().Hex()
			to = &addr
		}

		txs = append(txs, &schema.TxData{
			Hash:             tx.Hash().Hex(),
			BlockNumber:      number,
			BlockHash:        block.Hash().Hex(),
			TransactionIndex: uint(index),
			FromAddress:      from.Hex(),
			ToAddress:        to,
			Nonce:            tx.Nonce(),
			Value:            tx.Value().String(),
			GasPrice:         tx.GasPrice().String(),
			Gas:              tx.Gas(),
			Input:            hexutil.Encode(tx.Data()),
		})
	}

	return &schema.BlockData{
		BlockNumber:      number,
		BlockHash:        block.Hash().Hex(),
		ParentHash:       block.ParentHash().Hex(),
		Timestamp:        int64(block.Time()),
		Miner:            block.Coinbase().Hex(),
		GasLimit:         block.GasLimit(),
		GasUsed:          block.GasUsed(),
		Size:             block.Size(),
		TransactionCount: len(transactions),
		Transactions:     datatypes.NewJSONSlice(hashes),
	}, txs, nil
}

package indexer_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/indexer"
	"github.com/ibet-fin/ibet-indexer/internal/mocks"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

const testChainID = 2017

type blockSyncMocks struct {
	ctrl  *gomock.Controller
	store *mocks.MockStore
	chain *mocks.MockClient
	clock *mocks.MockClock
}

func newBlockSyncMocks(t *testing.T) *blockSyncMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &blockSyncMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		chain: mocks.NewMockClient(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
}

func newBlockSync(tm *blockSyncMocks) indexer.Worker {
	return indexer.NewBlockSync(indexer.BlockSyncConfig{
		ChainID:        testChainID,
		BatchSize:      1000,
		WorkerPoolSize: 4,
		Interval:       10 * time.Second,
	}, tm.store, tm.chain, tm.clock)
}

// cancelingAfter stubs clock.After to cancel the worker's context instead of
// firing, so Start exits at the head of the next pass.
func cancelingAfter(tm *blockSyncMocks, cancel context.CancelFunc) *gomock.Call {
	return tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			cancel()
			return make(chan time.Time)
		})
}

func emptyBlock(number uint64, parentHash common.Hash) *ethtypes.Block {
	return ethtypes.NewBlockWithHeader(&ethtypes.Header{
		Number:     new(big.Int).SetUint64(number),
		ParentHash: parentHash,
		Time:       1700000000 + number,
		GasLimit:   8_000_000,
	})
}

func TestBlockSync_SyncsRange(t *testing.T) {
	tm := newBlockSyncMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sender := crypto.PubkeyToAddress(key.PublicKey)
	recipient := common.HexToAddress("0x3000000000000000000000000000000000000002")

	tx := ethtypes.MustSignNewTx(key, ethtypes.LatestSignerForChainID(big.NewInt(testChainID)), &ethtypes.LegacyTx{
		Nonce:    1,
		To:       &recipient,
		Value:    big.NewInt(1000),
		Gas:      21000,
		GasPrice: big.NewInt(0),
	})
	blockWithTx := ethtypes.NewBlock(&ethtypes.Header{
		Number:   big.NewInt(101),
		Time:     1700000101,
		GasLimit: 8_000_000,
		GasUsed:  21000,
	}, &ethtypes.Body{Transactions: []*ethtypes.Transaction{tx}}, nil, trie.NewStackTrie(nil))

	tm.store.EXPECT().GetSyncCursor(ctx, "block-sync").Return(uint64(100), nil)
	tm.chain.EXPECT().BlockNumber(ctx).Return(uint64(102), nil)
	tm.chain.EXPECT().BlockByNumber(ctx, big.NewInt(101)).Return(blockWithTx, nil)
	tm.chain.EXPECT().BlockByNumber(ctx, big.NewInt(102)).Return(emptyBlock(102, blockWithTx.Hash()), nil)

	tm.store.EXPECT().
		SaveBlockBatch(ctx, gomock.Any(), gomock.Any(), "block-sync", uint64(102)).
		DoAndReturn(func(_ context.Context, blocks []*schema.BlockData, txs []*schema.TxData, _ string, _ uint64) error {
			require.Len(t, blocks, 2)
			assert.Equal(t, uint64(101), blocks[0].BlockNumber)
			assert.Equal(t, blockWithTx.Hash().Hex(), blocks[0].BlockHash)
			assert.Equal(t, int64(1700000101), blocks[0].Timestamp)
			assert.Equal(t, 1, blocks[0].TransactionCount)
			assert.Equal(t, uint64(102), blocks[1].BlockNumber)

			require.Len(t, txs, 1)
			assert.Equal(t, tx.Hash().Hex(), txs[0].Hash)
			assert.Equal(t, uint64(101), txs[0].BlockNumber)
			assert.Equal(t, sender.Hex(), txs[0].FromAddress)
			require.NotNil(t, txs[0].ToAddress)
			assert.Equal(t, recipient.Hex(), *txs[0].ToAddress)
			assert.Equal(t, "1000", txs[0].Value)
			return nil
		})

	// caught up after the pass, then the interval wait is interrupted
	cancelingAfter(tm, cancel)

	assert.NoError(t, newBlockSync(tm).Start(ctx))
}

func TestBlockSync_CaughtUp(t *testing.T) {
	tm := newBlockSyncMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.store.EXPECT().GetSyncCursor(ctx, "block-sync").Return(uint64(500), nil)
	tm.chain.EXPECT().BlockNumber(ctx).Return(uint64(500), nil)
	cancelingAfter(tm, cancel)

	assert.NoError(t, newBlockSync(tm).Start(ctx))
}

func TestBlockSync_AbandonsPassWhenNodeUnavailable(t *testing.T) {
	tm := newBlockSyncMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.store.EXPECT().GetSyncCursor(ctx, "block-sync").Return(uint64(100), nil)
	tm.chain.EXPECT().
		BlockNumber(ctx).
		Return(uint64(0), fmt.Errorf("eth_blockNumber: %w", domain.ErrServiceUnavailable))
	cancelingAfter(tm, cancel)

	assert.NoError(t, newBlockSync(tm).Start(ctx))
}

func TestBlockSync_Stop(t *testing.T) {
	tm := newBlockSyncMocks(t)
	ctx := context.Background()

	tm.store.EXPECT().GetSyncCursor(gomock.Any(), "block-sync").Return(uint64(500), nil).AnyTimes()
	tm.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(500), nil).AnyTimes()
	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			return make(chan time.Time)
		}).
		AnyTimes()

	worker := newBlockSync(tm)
	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()
	time.Sleep(10 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(ctx, time.Second)
	defer stopCancel()
	require.NoError(t, worker.Stop(stopCtx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

package indexer_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/indexer"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/mocks"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
	"github.com/ibet-fin/ibet-indexer/internal/token"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: false})
	m.Run()
}

const (
	testBondAddress  = "0x1000000000000000000000000000000000000001"
	testShareAddress = "0x1000000000000000000000000000000000000002"
)

type processorMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	adapter *mocks.MockAdapter
	clock   *mocks.MockClock
}

func newProcessorMocks(t *testing.T) *processorMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tm := &processorMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		adapter: mocks.NewMockAdapter(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}

	tm.adapter.EXPECT().Template().Return(domain.TemplateStraightBond).AnyTimes()
	tm.clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	return tm
}

func listedBond(address string) store.ListedToken {
	return store.ListedToken{
		Listing:  schema.Listing{TokenAddress: address, IsPublic: true},
		Template: domain.TemplateStraightBond,
	}
}

func fetchedBond(address string) *schema.BondToken {
	bond := &schema.BondToken{}
	bond.TokenAddress = address
	bond.TokenTemplate = domain.TemplateStraightBond
	bond.Name = "Sample Bond"
	return bond
}

func TestProcessor_MergesFetchedDetails(t *testing.T) {
	tm := newProcessorMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.store.EXPECT().
		GetPublicListings(gomock.Any(), domain.TemplateStraightBond).
		Return([]store.ListedToken{listedBond(testBondAddress), listedBond(testShareAddress)}, nil)

	tm.adapter.EXPECT().
		Fetch(gomock.Any(), testBondAddress, gomock.Any()).
		Return(fetchedBond(testBondAddress), nil)
	tm.adapter.EXPECT().
		Fetch(gomock.Any(), testShareAddress, gomock.Any()).
		Return(fetchedBond(testShareAddress), nil)

	tm.store.EXPECT().
		UpsertTokenDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, details []schema.TokenDetail) ([]string, error) {
			require.Len(t, details, 2)
			assert.Equal(t, testBondAddress, details[0].Address())
			// the refresh timestamp is stamped on every merged row
			assert.False(t, details[0].Base().CreatedAt.IsZero())
			cancel()
			return nil, nil
		})

	p := indexer.NewProcessor(indexer.ProcessorConfig{}, tm.store, []token.Adapter{tm.adapter}, tm.clock)
	assert.NoError(t, p.Start(ctx))
}

func TestProcessor_SkipsUnreadableToken(t *testing.T) {
	tm := newProcessorMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.store.EXPECT().
		GetPublicListings(gomock.Any(), domain.TemplateStraightBond).
		Return([]store.ListedToken{listedBond(testBondAddress), listedBond(testShareAddress)}, nil)

	tm.adapter.EXPECT().
		Fetch(gomock.Any(), testBondAddress, gomock.Any()).
		Return(nil, fmt.Errorf("%w: name reverted", domain.ErrCallFailed))
	tm.adapter.EXPECT().
		Fetch(gomock.Any(), testShareAddress, gomock.Any()).
		Return(fetchedBond(testShareAddress), nil)

	tm.store.EXPECT().
		UpsertTokenDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, details []schema.TokenDetail) ([]string, error) {
			require.Len(t, details, 1)
			assert.Equal(t, testShareAddress, details[0].Address())
			cancel()
			return nil, nil
		})

	p := indexer.NewProcessor(indexer.ProcessorConfig{}, tm.store, []token.Adapter{tm.adapter}, tm.clock)
	assert.NoError(t, p.Start(ctx))
}

func TestProcessor_AbandonsPassWhenNodeUnavailable(t *testing.T) {
	tm := newProcessorMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.store.EXPECT().
		GetPublicListings(gomock.Any(), domain.TemplateStraightBond).
		Return([]store.ListedToken{listedBond(testBondAddress)}, nil)

	tm.adapter.EXPECT().
		Fetch(gomock.Any(), testBondAddress, gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection refused", domain.ErrServiceUnavailable))

	// nothing reaches the store when the node disappears mid-pass
	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			cancel()
			return make(chan time.Time)
		})

	config := indexer.ProcessorConfig{RefreshInterval: time.Minute}
	p := indexer.NewProcessor(config, tm.store, []token.Adapter{tm.adapter}, tm.clock)
	assert.NoError(t, p.Start(ctx))
}

func TestProcessor_Stop(t *testing.T) {
	tm := newProcessorMocks(t)

	tm.store.EXPECT().
		GetPublicListings(gomock.Any(), domain.TemplateStraightBond).
		Return(nil, nil).
		AnyTimes()
	tm.store.EXPECT().
		UpsertTokenDetails(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	p := indexer.NewProcessor(indexer.ProcessorConfig{}, tm.store, []token.Adapter{tm.adapter}, tm.clock)

	done := make(chan error, 1)
	go func() {
		done <- p.Start(context.Background())
	}()

	// let the loop spin at least once before stopping
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, p.Stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("processor did not stop")
	}
}

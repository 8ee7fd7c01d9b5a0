package emitter_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/emitter"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/messaging"
	"github.com/ibet-fin/ibet-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testEmitterMocks contains all the mocks needed for testing the emitter
type testEmitterMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	store      *mocks.MockStore
	clock      *mocks.MockClock
}

// setupTestEmitter creates all the mocks for testing
func setupTestEmitter(t *testing.T) *testEmitterMocks {
	ctrl := gomock.NewController(t)

	return &testEmitterMocks{
		ctrl:       ctrl,
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		store:      mocks.NewMockStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
}

func newTestEmitter(tm *testEmitterMocks, startBlock uint64) emitter.Emitter {
	return emitter.NewEmitter(
		tm.subscriber,
		tm.publisher,
		tm.store,
		emitter.Config{
			StartBlock:      startBlock,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		tm.clock,
	)
}

func validTransferEvent(blockNumber uint64) *domain.TokenEvent {
	return &domain.TokenEvent{
		TokenAddress: "0x1111111111111111111111111111111111111111",
		EventType:    domain.EventTypeTransfer,
		FromAddress:  "0x2222222222222222222222222222222222222222",
		ToAddress:    "0x3333333333333333333333333333333333333333",
		Value:        "100",
		TxHash:       "0xabc",
		BlockNumber:  blockNumber,
		Timestamp:    time.Now(),
	}
}

func TestEmitter_Run_WithStartBlock(t *testing.T) {
	tm := setupTestEmitter(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newTestEmitter(tm, 1000)

	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).MinTimes(1)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	event := validTransferEvent(1001)

	// No cursor lookup when a start block is configured
	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			_ = handler(event)
			cancel()
			return nil
		})

	tm.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), event).
		Return(nil)

	// lastSavedBlock starts at 0, 1001-0 >= CursorSaveFreq, so the cursor is
	// saved at 1001
	tm.store.
		EXPECT().
		SetSyncCursor(gomock.Any(), emitter.EmitterCursorName, uint64(1001)).
		Return(nil).
		AnyTimes()

	err := e.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_ResumesFromCursor(t *testing.T) {
	tm := setupTestEmitter(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newTestEmitter(tm, 0)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	tm.store.
		EXPECT().
		GetSyncCursor(gomock.Any(), emitter.EmitterCursorName).
		Return(uint64(500), nil)

	// Resume one past the last processed block
	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(501), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			cancel()
			return nil
		})

	err := e.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_StartsFromLatestWithoutCursor(t *testing.T) {
	tm := setupTestEmitter(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newTestEmitter(tm, 0)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	tm.store.
		EXPECT().
		GetSyncCursor(gomock.Any(), emitter.EmitterCursorName).
		Return(uint64(0), nil)

	tm.subscriber.
		EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(9000), nil)

	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(9000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			cancel()
			return nil
		})

	err := e.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_DropsInvalidEvent(t *testing.T) {
	tm := setupTestEmitter(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newTestEmitter(tm, 1000)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Missing from/to addresses makes a Transfer structurally invalid; the
	// event must be dropped without reaching the publisher
	invalid := &domain.TokenEvent{
		TokenAddress: "0x1111111111111111111111111111111111111111",
		EventType:    domain.EventTypeTransfer,
		TxHash:       "0xdef",
		BlockNumber:  1001,
	}

	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			err := handler(invalid)
			assert.NoError(t, err)
			cancel()
			return nil
		})

	err := e.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_SubscriptionFailure(t *testing.T) {
	tm := setupTestEmitter(t)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newTestEmitter(tm, 1000)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	subErr := errors.New("websocket closed")
	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		Return(subErr)

	err := e.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, subErr, err)
}

func TestEmitter_Close(t *testing.T) {
	tm := setupTestEmitter(t)
	defer tm.ctrl.Finish()

	e := newTestEmitter(tm, 0)

	tm.subscriber.EXPECT().Close()
	tm.publisher.EXPECT().Close()

	e.Close()
}

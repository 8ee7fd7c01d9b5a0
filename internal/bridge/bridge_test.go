package bridge

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/mocks"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: false})
	m.Run()
}

const (
	testTokenAddress    = "0x1000000000000000000000000000000000000001"
	testFromAddress     = "0x3000000000000000000000000000000000000001"
	testToAddress       = "0x3000000000000000000000000000000000000002"
	testLockAddress     = "0x5000000000000000000000000000000000000001"
	testExchangeAddress = "0x4000000000000000000000000000000000000001"
)

type bridgeMocks struct {
	ctrl  *gomock.Controller
	store *mocks.MockStore
	chain *mocks.MockClient
}

func newTestBridge(t *testing.T) (*bridge, *bridgeMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tm := &bridgeMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		chain: mocks.NewMockClient(ctrl),
	}

	registry, err := contracts.LoadRegistry(adapter.NewFileSystem(), adapter.NewJSON(), "../../config/contracts.json")
	require.NoError(t, err)

	return &bridge{
		store:    tm.store,
		chain:    tm.chain,
		registry: registry,
		json:     adapter.NewJSON(),
	}, tm
}

func transferEvent() *domain.TokenEvent {
	return &domain.TokenEvent{
		TokenAddress: testTokenAddress,
		EventType:    domain.EventTypeTransfer,
		FromAddress:  testFromAddress,
		ToAddress:    testToAddress,
		Value:        "100",
		TxHash:       "0xtx",
		BlockNumber:  12345678,
		TxIndex:      17,
		LogIndex:     2,
		Timestamp:    time.Unix(1700000000, 0).UTC(),
	}
}

func indexedBond(exchangeAddress string) *schema.BondToken {
	bond := &schema.BondToken{}
	bond.TokenAddress = testTokenAddress
	bond.TokenTemplate = domain.TemplateStraightBond
	bond.Name = "Sample Bond"
	bond.CompanyName = "Example Securities K.K."
	bond.TradableExchange = exchangeAddress
	return bond
}

func TestApplyEvent_TransferRefreshesBothAccounts(t *testing.T) {
	b, tm := newTestBridge(t)
	ctx := context.Background()

	tm.store.EXPECT().
		GetTokenTemplate(ctx, testTokenAddress).
		Return(domain.TemplateStraightBond, nil)
	// no tradable exchange, so only token balances are read
	tm.store.EXPECT().
		GetTokenDetail(ctx, testTokenAddress).
		Return(indexedBond(""), nil).
		Times(2)

	tm.chain.EXPECT().
		CallUint256(ctx, gomock.Any(), testTokenAddress, "balanceOf", common.HexToAddress(testFromAddress)).
		Return(big.NewInt(900), nil)
	tm.chain.EXPECT().
		CallUint256(ctx, gomock.Any(), testTokenAddress, "balanceOf", common.HexToAddress(testToAddress)).
		Return(big.NewInt(100), nil)

	tm.store.EXPECT().
		UpsertPositions(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, positions []*schema.Position) error {
			require.Len(t, positions, 2)
			assert.Equal(t, int64(900), positions[0].Balance)
			assert.Equal(t, int64(100), positions[1].Balance)
			return nil
		})

	tm.store.EXPECT().
		InsertNotifications(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, notifications []*schema.Notification) error {
			require.Len(t, notifications, 1)
			// the recipient of a transfer is the receiver
			assert.Equal(t, testToAddress, notifications[0].Address)
			assert.Equal(t, "0x000000bc614e00001100000200", notifications[0].NotificationID)
			assert.Equal(t, "Sample Bond", notifications[0].Metainfo["token_name"])
			return nil
		})

	assert.NoError(t, b.applyEvent(ctx, transferEvent()))
}

func TestApplyEvent_TransferReadsExchangeBalances(t *testing.T) {
	b, tm := newTestBridge(t)
	ctx := context.Background()

	event := transferEvent()

	tm.store.EXPECT().
		GetTokenTemplate(ctx, testTokenAddress).
		Return(domain.TemplateStraightBond, nil)
	tm.store.EXPECT().
		GetTokenDetail(ctx, testTokenAddress).
		Return(indexedBond(testExchangeAddress), nil).
		Times(2)

	for _, account := range []string{testFromAddress, testToAddress} {
		accountAddr := common.HexToAddress(account)
		tm.chain.EXPECT().
			CallUint256(ctx, gomock.Any(), testTokenAddress, "balanceOf", accountAddr).
			Return(big.NewInt(10), nil)
		tm.chain.EXPECT().
			CallUint256(ctx, gomock.Any(), testExchangeAddress, "balanceOf", accountAddr, common.HexToAddress(testTokenAddress)).
			Return(big.NewInt(5), nil)
		tm.chain.EXPECT().
			CallUint256(ctx, gomock.Any(), testExchangeAddress, "commitmentOf", accountAddr, common.HexToAddress(testTokenAddress)).
			Return(big.NewInt(3), nil)
	}

	tm.store.EXPECT().
		UpsertPositions(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, positions []*schema.Position) error {
			require.Len(t, positions, 2)
			assert.Equal(t, int64(5), positions[0].ExchangeBalance)
			assert.Equal(t, int64(3), positions[0].ExchangeCommitment)
			return nil
		})
	tm.store.EXPECT().InsertNotifications(ctx, gomock.Any()).Return(nil)

	assert.NoError(t, b.applyEvent(ctx, event))
}

func TestApplyEvent_TransferOfUnlistedTokenOnlyNotifies(t *testing.T) {
	b, tm := newTestBridge(t)
	ctx := context.Background()

	tm.store.EXPECT().
		GetTokenTemplate(ctx, testTokenAddress).
		Return(domain.TokenTemplate(""), nil)
	tm.store.EXPECT().
		GetTokenDetail(ctx, testTokenAddress).
		Return(nil, nil)
	tm.store.EXPECT().
		InsertNotifications(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, notifications []*schema.Notification) error {
			require.Len(t, notifications, 1)
			assert.Nil(t, notifications[0].Metainfo["token_name"])
			return nil
		})

	assert.NoError(t, b.applyEvent(ctx, transferEvent()))
}

func TestApplyEvent_LockRefreshesLockedPosition(t *testing.T) {
	b, tm := newTestBridge(t)
	ctx := context.Background()

	event := &domain.TokenEvent{
		TokenAddress: testTokenAddress,
		EventType:    domain.EventTypeLock,
		FromAddress:  testFromAddress,
		LockAddress:  testLockAddress,
		Value:        "30",
		TxHash:       "0xtx",
		BlockNumber:  100,
		Timestamp:    time.Unix(1700000000, 0).UTC(),
	}

	tm.store.EXPECT().
		GetTokenTemplate(ctx, testTokenAddress).
		Return(domain.TemplateStraightBond, nil).
		Times(2)
	tm.chain.EXPECT().
		CallUint256(ctx, gomock.Any(), testTokenAddress, "lockedOf",
			common.HexToAddress(testLockAddress), common.HexToAddress(testFromAddress)).
		Return(big.NewInt(30), nil)
	tm.store.EXPECT().
		UpsertLockedPositions(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, positions []*schema.LockedPosition) error {
			require.Len(t, positions, 1)
			assert.Equal(t, testLockAddress, positions[0].LockAddress)
			assert.Equal(t, int64(30), positions[0].Value)
			return nil
		})

	tm.store.EXPECT().GetTokenDetail(ctx, testTokenAddress).Return(indexedBond(""), nil).Times(2)
	tm.chain.EXPECT().
		CallUint256(ctx, gomock.Any(), testTokenAddress, "balanceOf", common.HexToAddress(testFromAddress)).
		Return(big.NewInt(70), nil)
	tm.store.EXPECT().UpsertPositions(ctx, gomock.Any()).Return(nil)
	tm.store.EXPECT().
		InsertNotifications(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, notifications []*schema.Notification) error {
			require.Len(t, notifications, 1)
			// the lock holder is the one notified
			assert.Equal(t, testFromAddress, notifications[0].Address)
			return nil
		})

	assert.NoError(t, b.applyEvent(ctx, event))
}

func TestApplyEvent_SettlementOK(t *testing.T) {
	b, tm := newTestBridge(t)
	ctx := context.Background()

	event := &domain.TokenEvent{
		TokenAddress:    testTokenAddress,
		EventType:       domain.EventTypeSettlementOK,
		FromAddress:     testFromAddress,
		ToAddress:       testToAddress,
		ExchangeAddress: testExchangeAddress,
		OrderID:         7,
		AgreementID:     3,
		Price:           100,
		Amount:          50,
		TxHash:          "0xtx",
		BlockNumber:     200,
		Timestamp:       time.Unix(1700000000, 0).UTC(),
	}

	tm.store.EXPECT().
		SetAgreementStatus(ctx, testExchangeAddress, int64(7), int64(3), schema.AgreementStatusDone, gomock.Not(gomock.Nil())).
		Return(nil)
	tm.store.EXPECT().GetTokenDetail(ctx, testTokenAddress).Return(indexedBond(testExchangeAddress), nil)
	tm.store.EXPECT().
		InsertNotifications(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, notifications []*schema.Notification) error {
			// buyer and seller both get a row, kept distinct by the id option
			require.Len(t, notifications, 2)
			assert.Equal(t, testFromAddress, notifications[0].Address)
			assert.Equal(t, testToAddress, notifications[1].Address)
			assert.NotEqual(t, notifications[0].NotificationID, notifications[1].NotificationID)
			assert.Equal(t, domain.PriorityMedium, notifications[0].Priority)
			assert.Equal(t, int64(7), notifications[0].Args["order_id"])
			return nil
		})

	assert.NoError(t, b.applyEvent(ctx, event))
}

func TestApplyEvent_CancelOrder(t *testing.T) {
	b, tm := newTestBridge(t)
	ctx := context.Background()

	event := &domain.TokenEvent{
		TokenAddress:    testTokenAddress,
		EventType:       domain.EventTypeCancelOrder,
		FromAddress:     testFromAddress,
		ExchangeAddress: testExchangeAddress,
		OrderID:         7,
		TxHash:          "0xtx",
		BlockNumber:     200,
		Timestamp:       time.Unix(1700000000, 0).UTC(),
	}

	tm.store.EXPECT().CancelOrder(ctx, testExchangeAddress, int64(7)).Return(nil)
	tm.store.EXPECT().GetTokenDetail(ctx, testTokenAddress).Return(nil, nil)
	tm.store.EXPECT().InsertNotifications(ctx, gomock.Any()).Return(nil)

	assert.NoError(t, b.applyEvent(ctx, event))
}

func TestApplyEvent_UnknownType(t *testing.T) {
	b, _ := newTestBridge(t)

	event := transferEvent()
	event.EventType = domain.EventType("Exotic")

	assert.Error(t, b.applyEvent(context.Background(), event))
}

func TestHandleMessage_TerminatesUnparseablePayload(t *testing.T) {
	b, tm := newTestBridge(t)

	msg := mocks.NewMockJetStreamMessage(tm.ctrl)
	msg.EXPECT().Data().Return([]byte("not json")).AnyTimes()
	msg.EXPECT().Term().Return(nil)

	b.handleMessage(context.Background(), msg)
}

func TestHandleMessage_NaksOnApplyFailure(t *testing.T) {
	b, tm := newTestBridge(t)

	payload, err := b.json.Marshal(transferEvent())
	require.NoError(t, err)

	tm.store.EXPECT().
		GetTokenTemplate(gomock.Any(), testTokenAddress).
		Return(domain.TokenTemplate(""), assert.AnError)

	msg := mocks.NewMockJetStreamMessage(tm.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Nak().Return(nil)

	b.handleMessage(context.Background(), msg)
}

func TestHandleMessage_AcksAppliedEvent(t *testing.T) {
	b, tm := newTestBridge(t)

	payload, err := b.json.Marshal(transferEvent())
	require.NoError(t, err)

	tm.store.EXPECT().
		GetTokenTemplate(gomock.Any(), testTokenAddress).
		Return(domain.TokenTemplate(""), nil)
	tm.store.EXPECT().GetTokenDetail(gomock.Any(), testTokenAddress).Return(nil, nil)
	tm.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).Return(nil)

	msg := mocks.NewMockJetStreamMessage(tm.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Ack().Return(nil)

	b.handleMessage(context.Background(), msg)
}

func TestNotificationRecipients(t *testing.T) {
	tests := []struct {
		eventType domain.EventType
		expected  []string
	}{
		{domain.EventTypeTransfer, []string{testToAddress}},
		{domain.EventTypeLock, []string{testFromAddress}},
		{domain.EventTypeUnlock, []string{testToAddress}},
		{domain.EventTypeNewOrder, []string{testFromAddress}},
		{domain.EventTypeCancelOrder, []string{testFromAddress}},
		{domain.EventTypeAgree, []string{testFromAddress, testToAddress}},
		{domain.EventTypeSettlementOK, []string{testFromAddress, testToAddress}},
		{domain.EventTypeSettlementNG, []string{testFromAddress, testToAddress}},
		{domain.EventType("Exotic"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			event := &domain.TokenEvent{
				EventType:   tt.eventType,
				FromAddress: testFromAddress,
				ToAddress:   testToAddress,
			}
			assert.Equal(t, tt.expected, notificationRecipients(event))
		})
	}
}

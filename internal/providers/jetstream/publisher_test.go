package jetstream_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/messaging"
	"github.com/ibet-fin/ibet-indexer/internal/mocks"
	"github.com/ibet-fin/ibet-indexer/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: false})
	m.Run()
}

func newTestPublisher(t *testing.T) (messaging.Publisher, *mocks.MockJetStream, *mocks.MockNatsConn) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	pub, err := jetstream.NewPublisher(jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "IBET_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "test-publisher",
	}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	return pub, js, nc
}

func TestPublishEvent_TokenSubject(t *testing.T) {
	pub, js, _ := newTestPublisher(t)
	ctx := context.Background()

	event := &domain.TokenEvent{
		TokenAddress: "0x1000000000000000000000000000000000000001",
		EventType:    domain.EventTypeTransfer,
		ToAddress:    "0x3000000000000000000000000000000000000002",
		Value:        "100",
		TxHash:       "0xtx",
	}

	js.EXPECT().
		Publish(ctx, "events.token.transfer", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.TokenEvent
			require.NoError(t, adapter.NewJSON().Unmarshal(data, &decoded))
			assert.Equal(t, event.TokenAddress, decoded.TokenAddress)
			assert.Equal(t, event.EventType, decoded.EventType)
			return &natsjs.PubAck{Stream: "IBET_EVENTS", Sequence: 1}, nil
		})

	assert.NoError(t, pub.PublishEvent(ctx, event))
}

func TestPublishEvent_ExchangeSubject(t *testing.T) {
	pub, js, _ := newTestPublisher(t)
	ctx := context.Background()

	event := &domain.TokenEvent{
		TokenAddress:    "0x1000000000000000000000000000000000000001",
		EventType:       domain.EventTypeNewOrder,
		FromAddress:     "0x3000000000000000000000000000000000000001",
		ExchangeAddress: "0x4000000000000000000000000000000000000001",
		OrderID:         7,
		TxHash:          "0xtx",
	}

	js.EXPECT().
		Publish(ctx, "events.exchange.neworder", gomock.Any()).
		Return(&natsjs.PubAck{Stream: "IBET_EVENTS", Sequence: 2}, nil)

	assert.NoError(t, pub.PublishEvent(ctx, event))
}

func TestPublishEvent_PublishFailure(t *testing.T) {
	pub, js, _ := newTestPublisher(t)
	ctx := context.Background()

	js.EXPECT().
		Publish(ctx, gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err := pub.PublishEvent(ctx, &domain.TokenEvent{
		TokenAddress: "0x1000000000000000000000000000000000000001",
		EventType:    domain.EventTypeTransfer,
		TxHash:       "0xtx",
	})
	assert.ErrorContains(t, err, "failed to publish event")
}

func TestPublisher_Close(t *testing.T) {
	pub, _, nc := newTestPublisher(t)

	nc.EXPECT().Close()
	pub.Close()
}

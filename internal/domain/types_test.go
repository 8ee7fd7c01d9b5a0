package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

func TestTokenTemplate_Valid(t *testing.T) {
	assert.True(t, domain.TemplateStraightBond.Valid())
	assert.True(t, domain.TemplateShare.Valid())
	assert.True(t, domain.TemplateMembership.Valid())
	assert.True(t, domain.TemplateCoupon.Valid())
	assert.False(t, domain.TokenTemplate("IbetUnknown").Valid())
	assert.False(t, domain.TokenTemplate("").Valid())
}

func TestEventType_IsExchangeEvent(t *testing.T) {
	assert.False(t, domain.EventTypeTransfer.IsExchangeEvent())
	assert.False(t, domain.EventTypeLock.IsExchangeEvent())
	assert.False(t, domain.EventTypeUnlock.IsExchangeEvent())
	assert.True(t, domain.EventTypeNewOrder.IsExchangeEvent())
	assert.True(t, domain.EventTypeCancelOrder.IsExchangeEvent())
	assert.True(t, domain.EventTypeAgree.IsExchangeEvent())
	assert.True(t, domain.EventTypeSettlementOK.IsExchangeEvent())
	assert.True(t, domain.EventTypeSettlementNG.IsExchangeEvent())
}

func TestTokenEvent_Valid(t *testing.T) {
	tests := []struct {
		name  string
		event domain.TokenEvent
		want  bool
	}{
		{
			name: "valid transfer",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventTypeTransfer,
				FromAddress:  "0x2",
				ToAddress:    "0x3",
				TxHash:       "0xabc",
			},
			want: true,
		},
		{
			name: "transfer missing to address",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventTypeTransfer,
				FromAddress:  "0x2",
				TxHash:       "0xabc",
			},
			want: false,
		},
		{
			name: "missing token address",
			event: domain.TokenEvent{
				EventType:   domain.EventTypeTransfer,
				FromAddress: "0x2",
				ToAddress:   "0x3",
				TxHash:      "0xabc",
			},
			want: false,
		},
		{
			name: "missing tx hash",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventTypeTransfer,
				FromAddress:  "0x2",
				ToAddress:    "0x3",
			},
			want: false,
		},
		{
			name: "valid lock",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventTypeLock,
				LockAddress:  "0x4",
				TxHash:       "0xabc",
			},
			want: true,
		},
		{
			name: "lock missing lock address",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventTypeLock,
				TxHash:       "0xabc",
			},
			want: false,
		},
		{
			name: "valid new order",
			event: domain.TokenEvent{
				TokenAddress:    "0x1",
				EventType:       domain.EventTypeNewOrder,
				ExchangeAddress: "0x5",
				TxHash:          "0xabc",
			},
			want: true,
		},
		{
			name: "exchange event missing exchange address",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventTypeSettlementOK,
				TxHash:       "0xabc",
			},
			want: false,
		},
		{
			name: "unknown event type",
			event: domain.TokenEvent{
				TokenAddress: "0x1",
				EventType:    domain.EventType("Mint"),
				TxHash:       "0xabc",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Valid())
		})
	}
}

func TestTokenEvent_NotificationID(t *testing.T) {
	event := domain.TokenEvent{
		BlockNumber: 12345678,
		TxIndex:     17,
		LogIndex:    2,
	}

	// 0x + 12 hex block number + 6 hex tx index + 6 hex log index + 2 hex option
	id := event.NotificationID(0)
	assert.Equal(t, "0x000000bc614e00001100000200", id)
	assert.Len(t, id, 28)

	// Same log position, different option stays distinct
	assert.NotEqual(t, id, event.NotificationID(1))
	assert.Equal(t, "0x000000bc614e00001100000201", event.NotificationID(1))
}

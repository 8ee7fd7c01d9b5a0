package domain

import (
	"fmt"
	"time"
)

// TokenTemplate identifies one of the supported token contract interfaces
type TokenTemplate string

const (
	TemplateStraightBond TokenTemplate = "IbetStraightBond"
	TemplateShare        TokenTemplate = "IbetShare"
	TemplateMembership   TokenTemplate = "IbetMembership"
	TemplateCoupon       TokenTemplate = "IbetCoupon"
)

// AllTemplates lists the templates in their canonical processing order
var AllTemplates = []TokenTemplate{
	TemplateStraightBond,
	TemplateShare,
	TemplateMembership,
	TemplateCoupon,
}

// Valid checks if a token template is one of the supported interfaces
func (t TokenTemplate) Valid() bool {
	switch t {
	case TemplateStraightBond, TemplateShare, TemplateMembership, TemplateCoupon:
		return true
	}
	return false
}

// EventType represents the type of on-chain event the emitter publishes
type EventType string

const (
	EventTypeTransfer EventType = "Transfer"
	EventTypeLock     EventType = "Lock"
	EventTypeUnlock   EventType = "Unlock"

	// Exchange contract events
	EventTypeNewOrder     EventType = "NewOrder"
	EventTypeCancelOrder  EventType = "CancelOrder"
	EventTypeAgree        EventType = "Agree"
	EventTypeSettlementOK EventType = "SettlementOK"
	EventTypeSettlementNG EventType = "SettlementNG"
)

// IsExchangeEvent reports whether the event type originates from the
// exchange contract rather than the token contract
func (t EventType) IsExchangeEvent() bool {
	switch t {
	case EventTypeNewOrder, EventTypeCancelOrder, EventTypeAgree,
		EventTypeSettlementOK, EventTypeSettlementNG:
		return true
	}
	return false
}

// TokenEvent is a normalized on-chain event for a listed token.
// This is the standard format published to NATS.
type TokenEvent struct {
	TokenAddress string    `json:"token_address"`
	EventType    EventType `json:"event_type"`
	FromAddress  string    `json:"from_address,omitempty"`
	ToAddress    string    `json:"to_address,omitempty"`
	LockAddress  string    `json:"lock_address,omitempty"` // Lock/Unlock only
	Value        string    `json:"value,omitempty"`        // decimal string
	TxHash       string    `json:"tx_hash"`
	BlockNumber  uint64    `json:"block_number"`
	TxIndex      uint      `json:"tx_index"`
	LogIndex     uint      `json:"log_index"`
	Timestamp    time.Time `json:"timestamp"`

	// Exchange event fields
	ExchangeAddress string `json:"exchange_address,omitempty"`
	OrderID         int64  `json:"order_id,omitempty"`
	AgreementID     int64  `json:"agreement_id,omitempty"`
	Price           int64  `json:"price,omitempty"`
	Amount          int64  `json:"amount,omitempty"`
	IsBuy           bool   `json:"is_buy,omitempty"`
}

// Valid performs a structural check on the event
func (e *TokenEvent) Valid() bool {
	if e.TokenAddress == "" || e.TxHash == "" {
		return false
	}
	switch e.EventType {
	case EventTypeTransfer:
		return e.FromAddress != "" && e.ToAddress != ""
	case EventTypeLock, EventTypeUnlock:
		return e.LockAddress != ""
	case EventTypeNewOrder, EventTypeCancelOrder,
		EventTypeAgree, EventTypeSettlementOK, EventTypeSettlementNG:
		return e.ExchangeAddress != ""
	}
	return false
}

// NotificationID builds the deterministic feed row identifier:
// 0x | blockNumber (12 hex) | txIndex (6 hex) | logIndex (6 hex) | option (2 hex).
// Events sharing the same log position use option to stay distinct.
func (e *TokenEvent) NotificationID(option uint8) string {
	return fmt.Sprintf("0x%012x%06x%06x%02x", e.BlockNumber, e.TxIndex, e.LogIndex, option)
}

// NotificationPriority ranks notifications in the wallet feed
type NotificationPriority int

const (
	PriorityLow NotificationPriority = iota
	PriorityMedium
	PriorityHigh
)

// Package bridge consumes the emitted token events from NATS JetStream and
// applies them to the index: positions are refreshed from chain state, DEX
// orders and agreements are mirrored, and a notification feed row is written
// per event. Positions are re-read from the chain rather than accumulated,
// so redelivered or reordered messages converge on the same state.
package bridge

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	jsprovider "github.com/ibet-fin/ibet-indexer/internal/providers/jetstream"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

// zeroAddress marks an unset contract reference on chain
const zeroAddress = "0x0000000000000000000000000000000000000000"

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc       adapter.NatsConn
	js       adapter.JetStream
	store    store.Store
	chain    chain.Client
	registry *contracts.Registry
	json     adapter.JSON
	config   Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	chainClient chain.Client,
	registry *contracts.Registry,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	nc, js, err := natsJS.Connect(cfg.URL, jsprovider.ConnectOptions(jsprovider.Config{
		ConnectionName: cfg.ConnectionName,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
	})...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:       nc,
		js:       js,
		store:    st,
		chain:    chainClient,
		registry: registry,
		json:     jsonAdapter,
		config:   cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: "events.*.>",
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var event domain.TokenEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.Info("Received event",
		zap.String("event_type", string(event.EventType)),
		zap.String("token_address", event.TokenAddress),
		zap.String("tx_hash", event.TxHash))

	if err := b.applyEvent(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to apply event"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// applyEvent routes one event to its index updates
func (b *bridge) applyEvent(ctx context.Context, event *domain.TokenEvent) error {
	switch event.EventType {
	case domain.EventTypeTransfer:
		if err := b.refreshPositions(ctx, event.TokenAddress, event.FromAddress, event.ToAddress); err != nil {
			return err
		}
	case domain.EventTypeLock:
		if err := b.refreshLockedPosition(ctx, event.TokenAddress, event.LockAddress, event.FromAddress); err != nil {
			return err
		}
		if err := b.refreshPositions(ctx, event.TokenAddress, event.FromAddress); err != nil {
			return err
		}
	case domain.EventTypeUnlock:
		if err := b.refreshLockedPosition(ctx, event.TokenAddress, event.LockAddress, event.FromAddress); err != nil {
			return err
		}
		if err := b.refreshPositions(ctx, event.TokenAddress, event.FromAddress, event.ToAddress); err != nil {
			return err
		}
	case domain.EventTypeNewOrder:
		if err := b.applyNewOrder(ctx, event); err != nil {
			return err
		}
	case domain.EventTypeCancelOrder:
		if err := b.store.CancelOrder(ctx, event.ExchangeAddress, event.OrderID); err != nil {
			return err
		}
	case domain.EventTypeAgree:
		if err := b.applyAgreement(ctx, event, schema.AgreementStatusPending); err != nil {
			return err
		}
	case domain.EventTypeSettlementOK:
		settledAt := event.Timestamp
		if err := b.store.SetAgreementStatus(ctx, event.ExchangeAddress, event.OrderID, event.AgreementID, schema.AgreementStatusDone, &settledAt); err != nil {
			return err
		}
	case domain.EventTypeSettlementNG:
		if err := b.store.SetAgreementStatus(ctx, event.ExchangeAddress, event.OrderID, event.AgreementID, schema.AgreementStatusCanceled, nil); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}

	return b.writeNotifications(ctx, event)
}

// refreshPositions re-reads the chain balances of the given accounts and
// merges the snapshots
func (b *bridge) refreshPositions(ctx context.Context, tokenAddress string, accounts ...string) error {
	template, err := b.store.GetTokenTemplate(ctx, tokenAddress)
	if err != nil {
		return err
	}
	if !template.Valid() {
		// Not a listed token, nothing to track
		return nil
	}
	tokenABI, ok := b.registry.TemplateABI(template)
	if !ok {
		return fmt.Errorf("no ABI registered for template %s", template)
	}

	// The tradable exchange is part of the indexed base attributes
	var exchangeAddress string
	detail, err := b.store.GetTokenDetail(ctx, tokenAddress)
	if err != nil {
		return err
	}
	if detail != nil {
		exchangeAddress = detail.Base().TradableExchange
	}

	dexABI, _ := b.registry.ABI(contracts.NameExchange)

	positions := make([]*schema.Position, 0, len(accounts))
	for _, account := range accounts {
		if account == "" {
			continue
		}

		balance, err := b.chain.CallUint256(ctx, tokenABI, tokenAddress, "balanceOf", common.HexToAddress(account))
		if err != nil {
			return err
		}

		position := &schema.Position{
			TokenAddress:   tokenAddress,
			AccountAddress: account,
			Balance:        balance.Int64(),
		}

		if exchangeAddress != "" && exchangeAddress != zeroAddress {
			exchangeBalance, err := b.chain.CallUint256(ctx, dexABI, exchangeAddress, "balanceOf",
				common.HexToAddress(account), common.HexToAddress(tokenAddress))
			if err != nil {
				return err
			}
			commitment, err := b.chain.CallUint256(ctx, dexABI, exchangeAddress, "commitmentOf",
				common.HexToAddress(account), common.HexToAddress(tokenAddress))
			if err != nil {
				return err
			}
			position.ExchangeBalance = exchangeBalance.Int64()
			position.ExchangeCommitment = commitment.Int64()
		}

		positions = append(positions, position)
	}

	return b.store.UpsertPositions(ctx, positions)
}

// refreshLockedPosition re-reads the locked value of one account under one
// lock contract
func (b *bridge) refreshLockedPosition(ctx context.Context, tokenAddress, lockAddress, account string) error {
	template, err := b.store.GetTokenTemplate(ctx, tokenAddress)
	if err != nil {
		return err
	}
	if !template.Valid() {
		return nil
	}
	tokenABI, ok := b.registry.TemplateABI(template)
	if !ok {
		return fmt.Errorf("no ABI registered for template %s", template)
	}

	value, err := b.chain.CallUint256(ctx, tokenABI, tokenAddress, "lockedOf",
		common.HexToAddress(lockAddress), common.HexToAddress(account))
	if err != nil {
		return err
	}

	return b.store.UpsertLockedPositions(ctx, []*schema.LockedPosition{{
		TokenAddress:   tokenAddress,
		LockAddress:    lockAddress,
		AccountAddress: account,
		Value:          value.Int64(),
	}})
}

// applyNewOrder mirrors a fresh order, reading its full state from the
// exchange contract
func (b *bridge) applyNewOrder(ctx context.Context, event *domain.TokenEvent) error {
	dexABI, ok := b.registry.ABI(contracts.NameExchange)
	if !ok {
		return fmt.Errorf("exchange ABI not registered")
	}

	values, err := b.chain.Call(ctx, dexABI, event.ExchangeAddress, "getOrder", big.NewInt(event.OrderID))
	if err != nil {
		return err
	}
	if len(values) != 7 {
		return fmt.Errorf("unexpected getOrder output for order %d", event.OrderID)
	}

	order := &schema.Order{
		TokenAddress:    event.TokenAddress,
		ExchangeAddress: event.ExchangeAddress,
		OrderID:         event.OrderID,
		AccountAddress:  values[0].(common.Address).Hex(),
		IsBuy:           values[4].(bool),
		Price:           values[3].(*big.Int).Int64(),
		Amount:          values[2].(*big.Int).Int64(),
		AgentAddress:    values[5].(common.Address).Hex(),
		IsCancelled:     values[6].(bool),
		OrderTimestamp:  event.Timestamp,
	}
	return b.store.UpsertOrder(ctx, order)
}

// applyAgreement mirrors a matched trade
func (b *bridge) applyAgreement(ctx context.Context, event *domain.TokenEvent, status schema.AgreementStatus) error {
	agreement := &schema.Agreement{
		TokenAddress:       event.TokenAddress,
		ExchangeAddress:    event.ExchangeAddress,
		OrderID:            event.OrderID,
		AgreementID:        event.AgreementID,
		BuyerAddress:       event.FromAddress,
		SellerAddress:      event.ToAddress,
		Price:              event.Price,
		Amount:             event.Amount,
		Status:             status,
		AgreementTimestamp: event.Timestamp,
	}
	return b.store.UpsertAgreement(ctx, agreement)
}

// notificationPriorities ranks each event type in the wallet feed
var notificationPriorities = map[domain.EventType]domain.NotificationPriority{
	domain.EventTypeTransfer:     domain.PriorityLow,
	domain.EventTypeLock:         domain.PriorityLow,
	domain.EventTypeUnlock:       domain.PriorityLow,
	domain.EventTypeNewOrder:     domain.PriorityLow,
	domain.EventTypeCancelOrder:  domain.PriorityLow,
	domain.EventTypeAgree:        domain.PriorityMedium,
	domain.EventTypeSettlementOK: domain.PriorityMedium,
	domain.EventTypeSettlementNG: domain.PriorityHigh,
}

// writeNotifications inserts the per-address feed rows for one event. The
// deterministic notification id makes redelivery a no-op.
func (b *bridge) writeNotifications(ctx context.Context, event *domain.TokenEvent) error {
	recipients := notificationRecipients(event)
	if len(recipients) == 0 {
		return nil
	}

	metainfo := schema.NotificationArgs{
		"token_address": event.TokenAddress,
	}
	if detail, err := b.store.GetTokenDetail(ctx, event.TokenAddress); err == nil && detail != nil {
		base := detail.Base()
		metainfo["token_type"] = string(base.TokenTemplate)
		metainfo["token_name"] = base.Name
		metainfo["company_name"] = base.CompanyName
		metainfo["exchange_address"] = base.TradableExchange
	}

	args := schema.NotificationArgs{
		"event_type":    string(event.EventType),
		"token_address": event.TokenAddress,
		"value":         event.Value,
		"from":          event.FromAddress,
		"to":            event.ToAddress,
	}
	if event.EventType.IsExchangeEvent() {
		args["exchange_address"] = event.ExchangeAddress
		args["order_id"] = event.OrderID
		args["agreement_id"] = event.AgreementID
		args["price"] = event.Price
		args["amount"] = event.Amount
	}

	priority := notificationPriorities[event.EventType]

	notifications := make([]*schema.Notification, 0, len(recipients))
	for option, address := range recipients {
		notifications = append(notifications, &schema.Notification{
			NotificationID:   event.NotificationID(uint8(option)),
			NotificationType: string(event.EventType),
			Priority:         priority,
			Address:          address,
			Args:             args,
			Metainfo:         metainfo,
			BlockTimestamp:   event.Timestamp,
		})
	}
	return b.store.InsertNotifications(ctx, notifications)
}

// notificationRecipients selects who is told about an event. The slice
// position doubles as the id option keeping per-recipient rows distinct.
func notificationRecipients(event *domain.TokenEvent) []string {
	switch event.EventType {
	case domain.EventTypeTransfer:
		return []string{event.ToAddress}
	case domain.EventTypeLock:
		return []string{event.FromAddress}
	case domain.EventTypeUnlock:
		return []string{event.ToAddress}
	case domain.EventTypeNewOrder, domain.EventTypeCancelOrder:
		return []string{event.FromAddress}
	case domain.EventTypeAgree, domain.EventTypeSettlementOK, domain.EventTypeSettlementNG:
		// Buyer and seller both care about settlement
		return []string{event.FromAddress, event.ToAddress}
	}
	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc != nil {
		b.nc.Close()
	}
}

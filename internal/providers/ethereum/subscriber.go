// Package ethereum provides the chain-facing implementation of the messaging
// Subscriber: it watches the listed token contracts and the configured
// exchange contracts and normalizes their logs into domain events.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/messaging"
	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// catchupChunk bounds the block range of one historical FilterLogs call
const catchupChunk = uint64(5000)

// SubscriberConfig holds configuration for the event subscriber
type SubscriberConfig struct {
	// ExchangeAddresses are the DEX contracts to watch alongside the listed
	// tokens
	ExchangeAddresses []string
}

type subscriber struct {
	config   SubscriberConfig
	chain    chain.Client
	store    store.Store
	tokenABI abi.ABI
	dexABI   abi.ABI

	// headerTimes memoizes the most recently resolved block timestamp
	lastHeaderNumber uint64
	lastHeaderTime   time.Time
}

// NewSubscriber creates a chain event subscriber. The watched token set is
// the listings at subscription time; newly listed tokens are picked up when
// the subscription is restarted.
func NewSubscriber(config SubscriberConfig, chainClient chain.Client, st store.Store, registry *contracts.Registry) (messaging.Subscriber, error) {
	// Transfer/Lock/Unlock carry the same signature on every template
	tokenABI, ok := registry.TemplateABI(domain.TemplateStraightBond)
	if !ok {
		return nil, fmt.Errorf("token ABI not registered")
	}
	dexABI, ok := registry.ABI(contracts.NameExchange)
	if !ok {
		return nil, fmt.Errorf("exchange ABI not registered")
	}

	return &subscriber{
		config:   config,
		chain:    chainClient,
		store:    st,
		tokenABI: tokenABI,
		dexABI:   dexABI,
	}, nil
}

// GetLatestBlock returns the latest block number
func (s *subscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	return s.chain.BlockNumber(ctx)
}

func (s *subscriber) watchedAddresses(ctx context.Context) ([]common.Address, error) {
	listed, err := s.store.GetListedTokenAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load listed tokens: %w", err)
	}

	addresses := make([]common.Address, 0, len(listed)+len(s.config.ExchangeAddresses))
	for _, a := range listed {
		addresses = append(addresses, common.HexToAddress(a))
	}
	for _, a := range s.config.ExchangeAddresses {
		addresses = append(addresses, common.HexToAddress(a))
	}
	return addresses, nil
}

func (s *subscriber) watchedTopics() []common.Hash {
	return []common.Hash{
		s.tokenABI.Events["Transfer"].ID,
		s.tokenABI.Events["Lock"].ID,
		s.tokenABI.Events["Unlock"].ID,
		s.dexABI.Events["NewOrder"].ID,
		s.dexABI.Events["CancelOrder"].ID,
		s.dexABI.Events["Agree"].ID,
		s.dexABI.Events["SettlementOK"].ID,
		s.dexABI.Events["SettlementNG"].ID,
	}
}

// SubscribeEvents streams events of the watched contracts starting at
// fromBlock, invoking handler for each event in chain order
func (s *subscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	addresses, err := s.watchedAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no watched contracts, nothing to subscribe to")
	}
	topics := [][]common.Hash{s.watchedTopics()}

	latest, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return err
	}

	// Catch up on history before going live
	if fromBlock > 0 && fromBlock <= latest {
		if err := s.catchup(ctx, addresses, topics, fromBlock, latest, handler); err != nil {
			return err
		}
	}

	logCh := make(chan types.Log, 256)
	sub, err := s.chain.SubscribeFilterLogs(ctx, ethereum.FilterQuery{
		Addresses: addresses,
		Topics:    topics,
		FromBlock: new(big.Int).SetUint64(latest + 1),
	}, logCh)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	logger.InfoCtx(ctx, "Subscribed to contract logs",
		zap.Int("contracts", len(addresses)),
		zap.Uint64("from_block", latest+1))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("%w: log subscription failed: %v", domain.ErrServiceUnavailable, err)
		case vLog := <-logCh:
			if vLog.Removed {
				continue
			}
			event, err := s.parseLog(ctx, vLog)
			if err != nil {
				logger.WarnCtx(ctx, "Dropping unparseable log",
					zap.String("tx_hash", vLog.TxHash.Hex()),
					zap.Error(err))
				continue
			}
			if event == nil {
				continue
			}
			if err := handler(event); err != nil {
				return err
			}
		}
	}
}

// Close closes the underlying chain connection
func (s *subscriber) Close() {
	s.chain.Close()
}

// catchup replays historical logs in bounded chunks
func (s *subscriber) catchup(ctx context.Context, addresses []common.Address, topics [][]common.Hash, from, to uint64, handler messaging.EventHandler) error {
	logger.InfoCtx(ctx, "Catching up on historical logs",
		zap.Uint64("from", from),
		zap.Uint64("to", to))

	for chunkFrom := from; chunkFrom <= to; chunkFrom += catchupChunk {
		chunkTo := chunkFrom + catchupChunk - 1
		if chunkTo > to {
			chunkTo = to
		}

		logs, err := s.chain.FilterLogs(ctx, ethereum.FilterQuery{
			Addresses: addresses,
			Topics:    topics,
			FromBlock: new(big.Int).SetUint64(chunkFrom),
			ToBlock:   new(big.Int).SetUint64(chunkTo),
		})
		if err != nil {
			return err
		}

		for _, vLog := range logs {
			if vLog.Removed {
				continue
			}
			event, err := s.parseLog(ctx, vLog)
			if err != nil {
				logger.WarnCtx(ctx, "Dropping unparseable log",
					zap.String("tx_hash", vLog.TxHash.Hex()),
					zap.Error(err))
				continue
			}
			if event == nil {
				continue
			}
			if err := handler(event); err != nil {
				return err
			}
		}
	}
	return nil
}

// blockTime resolves a block number to its timestamp, memoizing the last hit
// since consecutive logs usually share a block
func (s *subscriber) blockTime(ctx context.Context, number uint64) (time.Time, error) {
	if number == s.lastHeaderNumber && !s.lastHeaderTime.IsZero() {
		return s.lastHeaderTime, nil
	}
	header, err := s.chain.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return time.Time{}, err
	}
	s.lastHeaderNumber = number
	s.lastHeaderTime = time.Unix(int64(header.Time), 0).UTC()
	return s.lastHeaderTime, nil
}

// parseLog normalizes one contract log into a TokenEvent. Logs with an
// unknown topic yield (nil, nil).
func (s *subscriber) parseLog(ctx context.Context, vLog types.Log) (*domain.TokenEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, nil
	}

	timestamp, err := s.blockTime(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, err
	}

	event := &domain.TokenEvent{
		TxHash:      vLog.TxHash.Hex(),
		BlockNumber: vLog.BlockNumber,
		TxIndex:     vLog.TxIndex,
		LogIndex:    vLog.Index,
		Timestamp:   timestamp,
	}

	topic := vLog.Topics[0]
	switch topic {
	case s.tokenABI.Events["Transfer"].ID:
		if len(vLog.Topics) < 3 {
			return nil, fmt.Errorf("short Transfer log")
		}
		values, err := s.tokenABI.Unpack("Transfer", vLog.Data)
		if err != nil {
			return nil, err
		}
		event.EventType = domain.EventTypeTransfer
		event.TokenAddress = vLog.Address.Hex()
		event.FromAddress = common.HexToAddress(vLog.Topics[1].Hex()).Hex()
		event.ToAddress = common.HexToAddress(vLog.Topics[2].Hex()).Hex()
		event.Value = values[0].(*big.Int).String()

	case s.tokenABI.Events["Lock"].ID:
		if len(vLog.Topics) < 3 {
			return nil, fmt.Errorf("short Lock log")
		}
		values, err := s.tokenABI.Unpack("Lock", vLog.Data)
		if err != nil {
			return nil, err
		}
		event.EventType = domain.EventTypeLock
		event.TokenAddress = vLog.Address.Hex()
		event.FromAddress = common.HexToAddress(vLog.Topics[1].Hex()).Hex()
		event.LockAddress = common.HexToAddress(vLog.Topics[2].Hex()).Hex()
		event.Value = values[0].(*big.Int).String()

	case s.tokenABI.Events["Unlock"].ID:
		if len(vLog.Topics) < 4 {
			return nil, fmt.Errorf("short Unlock log")
		}
		values, err := s.tokenABI.Unpack("Unlock", vLog.Data)
		if err != nil {
			return nil, err
		}
		event.EventType = domain.EventTypeUnlock
		event.TokenAddress = vLog.Address.Hex()
		event.FromAddress = common.HexToAddress(vLog.Topics[1].Hex()).Hex()
		event.LockAddress = common.HexToAddress(vLog.Topics[2].Hex()).Hex()
		event.ToAddress = common.HexToAddress(vLog.Topics[3].Hex()).Hex()
		event.Value = values[0].(*big.Int).String()

	case s.dexABI.Events["NewOrder"].ID, s.dexABI.Events["CancelOrder"].ID:
		if len(vLog.Topics) < 3 {
			return nil, fmt.Errorf("short order log")
		}
		name := "NewOrder"
		event.EventType = domain.EventTypeNewOrder
		if topic == s.dexABI.Events["CancelOrder"].ID {
			name = "CancelOrder"
			event.EventType = domain.EventTypeCancelOrder
		}
		values, err := s.dexABI.Unpack(name, vLog.Data)
		if err != nil {
			return nil, err
		}
		event.ExchangeAddress = vLog.Address.Hex()
		event.TokenAddress = common.HexToAddress(vLog.Topics[1].Hex()).Hex()
		event.FromAddress = common.HexToAddress(vLog.Topics[2].Hex()).Hex()
		event.IsBuy = values[0].(bool)
		event.Price = values[1].(*big.Int).Int64()
		event.Amount = values[2].(*big.Int).Int64()
		event.OrderID = values[3].(*big.Int).Int64()

	case s.dexABI.Events["Agree"].ID, s.dexABI.Events["SettlementOK"].ID, s.dexABI.Events["SettlementNG"].ID:
		if len(vLog.Topics) < 4 {
			return nil, fmt.Errorf("short agreement log")
		}
		name := "Agree"
		event.EventType = domain.EventTypeAgree
		switch topic {
		case s.dexABI.Events["SettlementOK"].ID:
			name = "SettlementOK"
			event.EventType = domain.EventTypeSettlementOK
		case s.dexABI.Events["SettlementNG"].ID:
			name = "SettlementNG"
			event.EventType = domain.EventTypeSettlementNG
		}
		values, err := s.dexABI.Unpack(name, vLog.Data)
		if err != nil {
			return nil, err
		}
		event.ExchangeAddress = vLog.Address.Hex()
		event.TokenAddress = common.HexToAddress(vLog.Topics[1].Hex()).Hex()
		event.OrderID = new(big.Int).SetBytes(vLog.Topics[2].Bytes()).Int64()
		event.AgreementID = new(big.Int).SetBytes(vLog.Topics[3].Bytes()).Int64()
		event.FromAddress = values[0].(common.Address).Hex() // buyer
		event.ToAddress = values[1].(common.Address).Hex()   // seller
		event.Price = values[2].(*big.Int).Int64()
		event.Amount = values[3].(*big.Int).Int64()

	default:
		return nil, nil
	}

	return event, nil
}

package messaging

import (
	"context"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// EventHandler is called for each token event received from the chain
type EventHandler func(event *domain.TokenEvent) error

// Subscriber defines the interface for subscribing to on-chain token events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents streams events of the watched contracts starting at
	// fromBlock (0 for latest), invoking handler for each event in chain
	// order. Blocks until the context is canceled or the stream fails.
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}

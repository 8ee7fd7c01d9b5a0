package messaging

import (
	"context"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// Publisher defines the interface for publishing token events to the
// message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a token event to the message broker
	PublishEvent(ctx context.Context, event *domain.TokenEvent) error
	// Close closes the connection
	Close()
}

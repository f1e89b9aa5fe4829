package messaging

import (
	"context"
	"sync"

	"github.com/rwa-market/asset-catalog/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes an asset lifecycle event to the message broker
	PublishEvent(ctx context.Context, event *domain.AssetEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}

type noopPublisher struct {
	once   sync.Once
	closed chan struct{}
}

// NewNoopPublisher creates a publisher that drops every event.
// It is used when no message broker is configured.
func NewNoopPublisher() Publisher {
	return &noopPublisher{closed: make(chan struct{})}
}

func (p *noopPublisher) PublishEvent(ctx context.Context, event *domain.AssetEvent) error {
	return nil
}

func (p *noopPublisher) Close() {
	p.once.Do(func() { close(p.closed) })
}

func (p *noopPublisher) CloseChan() <-chan struct{} {
	return p.closed
}

package jetstream

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/rwa-market/asset-catalog/internal/adapter"
	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/logger"
	"github.com/rwa-market/asset-catalog/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	PublishTimeout time.Duration
}

type publisher struct {
	nc             adapter.NatsConn
	js             adapter.JetStream
	json           adapter.JSON
	subjectPrefix  string
	publishTimeout time.Duration

	closeOnce sync.Once
	closed    chan struct{}
}

// NewPublisher connects to NATS, makes sure the stream exists and returns a JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	subjectPrefix := strings.TrimSuffix(cfg.SubjectPrefix, ".")
	if subjectPrefix == "" {
		subjectPrefix = "assets"
	}

	p := &publisher{
		json:           jsonAdapter,
		subjectPrefix:  subjectPrefix,
		publishTimeout: cfg.PublishTimeout,
		closed:         make(chan struct{}),
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
			p.markClosed()
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}
	p.nc = nc
	p.js = js

	if cfg.StreamName != "" {
		err = js.EnsureStream(ctx, natsjs.StreamConfig{
			Name:     cfg.StreamName,
			Subjects: []string{subjectPrefix + ".>"},
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to create or update stream %s: %w", cfg.StreamName, err)
		}
	}

	return p, nil
}

// PublishEvent publishes an asset event to NATS JetStream.
// The event id is used as message id so the broker drops duplicates.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.AssetEvent) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if p.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.publishTimeout)
		defer cancel()
	}

	_, err = p.js.Publish(ctx, p.buildSubject(event), data, natsjs.WithMsgID(event.EventID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
// Format: {prefix}.{event_type}, e.g. assets.created, assets.invested
func (p *publisher) buildSubject(event *domain.AssetEvent) string {
	eventType := strings.TrimPrefix(string(event.Type), "asset.")
	return fmt.Sprintf("%s.%s", p.subjectPrefix, eventType)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
	p.markClosed()
}

// CloseChan returns a channel that is closed once the connection is closed
func (p *publisher) CloseChan() <-chan struct{} {
	return p.closed
}

func (p *publisher) markClosed() {
	p.closeOnce.Do(func() { close(p.closed) })
}

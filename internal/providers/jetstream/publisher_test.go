package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/mocks"
	"github.com/rwa-market/asset-catalog/internal/providers/jetstream"
)

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "ASSETS",
		SubjectPrefix:  "assets",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "asset-catalog-test",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	ctx := context.Background()

	mockNatsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(mockConn, mockJS, nil)
	mockJS.EXPECT().
		EnsureStream(ctx, natsjs.StreamConfig{Name: "ASSETS", Subjects: []string{"assets.>"}}).
		Return(nil)

	p, err := jetstream.NewPublisher(ctx, testConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), mockNatsJS, mockJSON)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
	assert.Nil(t, p)
}

func TestNewPublisher_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mockConn, mockJS, nil)
	mockJS.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("stream subjects overlap"))
	mockConn.EXPECT().Close()

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), mockNatsJS, mockJSON)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ASSETS")
	assert.Nil(t, p)
}

func TestPublisher_PublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	ctx := context.Background()
	event := &domain.AssetEvent{
		EventID:         "01JABCDEF0000000000000000",
		Type:            domain.AssetEventInvested,
		AssetID:         "art-1",
		Category:        domain.CategoryArt,
		PricePerToken:   250,
		AvailableTokens: 9,
		Tokens:          1,
	}
	payload := []byte(`{"event_id":"01JABCDEF0000000000000000"}`)

	mockNatsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mockConn, mockJS, nil)
	mockJS.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	mockJSON.EXPECT().Marshal(event).Return(payload, nil)
	mockJS.EXPECT().
		Publish(ctx, "assets.invested", payload, gomock.Any()).
		Return(&natsjs.PubAck{Stream: "ASSETS", Sequence: 1}, nil)

	p, err := jetstream.NewPublisher(ctx, testConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	assert.NoError(t, p.PublishEvent(ctx, event))
}

func TestPublisher_PublishEvent_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mockConn, mockJS, nil)
	mockJS.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	mockJSON.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	err = p.PublishEvent(context.Background(), &domain.AssetEvent{Type: domain.AssetEventCreated})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event")
}

func TestPublisher_PublishEvent_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mockConn, mockJS, nil)
	mockJS.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	mockJSON.EXPECT().Marshal(gomock.Any()).Return([]byte(`{}`), nil)
	mockJS.EXPECT().
		Publish(gomock.Any(), "assets.created", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no responders"))

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	err = p.PublishEvent(context.Background(), &domain.AssetEvent{EventID: "e1", Type: domain.AssetEventCreated})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mockConn, mockJS, nil)
	mockJS.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	mockConn.EXPECT().Close()

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	p.Close()

	select {
	case <-p.CloseChan():
	default:
		t.Fatal("CloseChan not closed after Close")
	}
}

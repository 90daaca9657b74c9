package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"megabot/domain/events"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runJetStreamServer starts an embedded NATS server with JetStream enabled
func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()
	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
	}
	srv, err := server.NewServer(opts)
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(srv.Shutdown)
	require.True(t, srv.ReadyForConnections(5*time.Second), "embedded NATS not ready")
	return srv
}

func connectedClient(t *testing.T, srv *server.Server) *NATSClient {
	t.Helper()
	client := NewNATSClient(srv.ClientURL())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNATSEventPublisher_PublishesEnvelope(t *testing.T) {
	srv := runJetStreamServer(t)
	client := connectedClient(t, srv)

	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), nil)
	require.NoError(t, publisher.EnsureLedgerEventStream())
	require.NoError(t, publisher.EnsureLedgerEventStream(), "ensuring twice is idempotent")

	nc, err := nats.Connect(srv.ClientURL())
	require.NoError(t, err)
	defer nc.Close()
	js, err := nc.JetStream()
	require.NoError(t, err)

	sub, err := js.SubscribeSync("ledger.balance_changed", nats.DeliverAll())
	require.NoError(t, err)

	event := events.BalanceChangeEvent{
		UserID:          100,
		GuildID:         555,
		OldBalance:      1000,
		NewBalance:      1500,
		ChangeAmount:    500,
		TransactionType: "admin_add",
	}
	require.NoError(t, publisher.Publish(event))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(msg.Data, &envelope))
	assert.NotEmpty(t, envelope.EventID)
	assert.Equal(t, "balance_change", envelope.EventType)
	assert.Equal(t, SourceService, envelope.SourceService)
	assert.WithinDuration(t, time.Now(), envelope.Timestamp, time.Minute)

	var payload events.BalanceChangeEvent
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, event, payload)
}

func TestNATSEventPublisher_LocalHandlers(t *testing.T) {
	srv := runJetStreamServer(t)
	client := connectedClient(t, srv)

	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), nil)
	require.NoError(t, publisher.EnsureLedgerEventStream())

	var received []events.Event
	publisher.RegisterLocalHandler(events.EventTypeUserReset, func(ctx context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})
	publisher.RegisterLocalHandler(events.EventTypeUserReset, func(ctx context.Context, event events.Event) error {
		return errors.New("handler failure")
	})

	reset := events.UserResetEvent{UserID: 1, GuildID: 2, AdminID: 3, NewBalance: 1000, ItemsCleared: 4}
	require.NoError(t, publisher.Publish(reset), "local handler errors do not fail publishing")
	require.NoError(t, publisher.Publish(events.BalanceChangeEvent{UserID: 1}))

	assert.Equal(t, []events.Event{reset}, received)
}

func TestNATSEventPublisher_NoStreamIsTolerated(t *testing.T) {
	srv := runJetStreamServer(t)
	client := connectedClient(t, srv)

	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), nil)
	assert.NoError(t, publisher.Publish(events.InventoryClearedEvent{UserID: 1}))
}

func TestNATSClient_NotConnected(t *testing.T) {
	t.Parallel()
	client := NewNATSClient("nats://127.0.0.1:1")

	assert.False(t, client.IsConnected())
	assert.Error(t, client.Publish(context.Background(), "ledger.user_reset", []byte("{}")))
	assert.Error(t, client.EnsureStream(LedgerEventStream, []string{"ledger.>"}, ""))
	assert.NoError(t, client.Close())
}

package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	return mr, rdb
}

func registerClient(t *testing.T, hub *Hub) *Client {
	t.Helper()

	client := &Client{ID: "c1", Send: make(chan []byte, 4), Hub: hub}
	hub.register <- client
	require.Eventually(t, func() bool { return hub.GetConnectedClients() == 1 }, time.Second, 10*time.Millisecond)
	return client
}

func receive(t *testing.T, client *Client) []byte {
	t.Helper()
	select {
	case msg := <-client.Send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func TestRedisPublisherRelaysToHub(t *testing.T) {
	mr, rdb := newTestRedis(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)
	client := registerClient(t, hub)

	publisher := NewRedisPublisher(rdb, hub)

	relayCtx, stopRelay := context.WithCancel(ctx)
	relayErr := make(chan error, 1)
	go func() { relayErr <- publisher.Relay(relayCtx) }()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(ChangesChannel)[ChangesChannel] == 1 && publisher.relaying.Load()
	}, 2*time.Second, 10*time.Millisecond)

	event := NewChangeEvent(EventCreated, "passager", 3, map[string]string{"nom_passager": "Mounguengui"})
	publisher.Publish(ctx, event)

	want, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(receive(t, client)))

	// another instance publishing on the channel reaches this hub too
	require.NoError(t, rdb.Publish(ctx, ChangesChannel, `{"type":"deleted","resource":"trajet","id":2}`).Err())
	assert.JSONEq(t, `{"type":"deleted","resource":"trajet","id":2}`, string(receive(t, client)))

	stopRelay()
	select {
	case err := <-relayErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Relay did not return after cancel")
	}
	assert.False(t, publisher.relaying.Load())
}

func TestRedisPublisherFallsBackToHubWithoutRelay(t *testing.T) {
	mr, rdb := newTestRedis(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)
	client := registerClient(t, hub)

	publisher := NewRedisPublisher(rdb, hub)

	mr.Close()
	require.Error(t, publisher.Relay(ctx))

	publisher.Publish(ctx, NewChangeEvent(EventUpdated, "conducteur", 8, nil))

	var ev ChangeEvent
	require.NoError(t, json.Unmarshal(receive(t, client), &ev))
	assert.Equal(t, EventUpdated, ev.Type)
	assert.Equal(t, "conducteur", ev.Resource)
	assert.Equal(t, uint(8), ev.ID)
}

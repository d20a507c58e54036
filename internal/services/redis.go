package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

// ChangesChannel is the Redis pub/sub channel receiving every ChangeEvent.
const ChangesChannel = "covoiturage:changes"

// NewRedisClient parses redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// RedisPublisher publishes change events on ChangesChannel. While Relay is
// not running, events go straight to the local hub instead so this
// instance's WebSocket clients keep receiving them.
type RedisPublisher struct {
	client   redis.UniversalClient
	hub      *Hub
	relaying atomic.Bool
}

// NewRedisPublisher wraps an open Redis client. hub receives relayed events.
func NewRedisPublisher(client redis.UniversalClient, hub *Hub) *RedisPublisher {
	return &RedisPublisher{client: client, hub: hub}
}

// Publish implements EventPublisher.
func (p *RedisPublisher) Publish(ctx context.Context, event ChangeEvent) {
	if !p.relaying.Load() {
		p.hub.Publish(ctx, event)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling change event: %v", err)
		return
	}

	if err := p.client.Publish(ctx, ChangesChannel, data).Err(); err != nil {
		log.Printf("Failed to publish %s %s event to Redis, delivering locally: %v", event.Resource, event.Type, err)
		p.hub.Publish(ctx, event)
	}
}

// Relay forwards every event published on ChangesChannel, by this instance
// or any other, to the WebSocket clients of the hub. It returns nil when ctx
// is done and an error when the subscription cannot be established.
func (p *RedisPublisher) Relay(ctx context.Context) error {
	sub := p.client.Subscribe(ctx, ChangesChannel)
	defer sub.Close()

	// Wait for the subscription to be confirmed before reading
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", ChangesChannel, err)
	}

	p.relaying.Store(true)
	defer p.relaying.Store(false)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			p.hub.BroadcastToAll([]byte(msg.Payload))
		}
	}
}

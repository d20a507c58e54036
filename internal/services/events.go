package services

import (
	"context"
	"time"
)

// Change types carried by ChangeEvent.Type.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// ChangeEvent describes one successful write on a resource.
type ChangeEvent struct {
	Type      string      `json:"type"`
	Resource  string      `json:"resource"`
	ID        uint        `json:"id"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// NewChangeEvent stamps an event with the current time.
func NewChangeEvent(eventType, resource string, id uint, data interface{}) ChangeEvent {
	return ChangeEvent{
		Type:      eventType,
		Resource:  resource,
		ID:        id,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
}

// EventPublisher fans a change out to interested listeners. Publishing is
// best-effort and must not fail the write that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

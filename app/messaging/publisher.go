// Package messaging publishes domain events after the database commit.
package messaging

import (
	"context"
	"sync"
)

const (
	TopicOrderPlaced    = "orders.placed"
	TopicSellerApproved = "sellers.approved"
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	return nil
}

type RecordedEvent struct {
	Topic string
	Key   string
	Event any
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []RecordedEvent
}

func (r *Recorder) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, RecordedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedEvent, len(r.events))
	copy(out, r.events)
	return out
}

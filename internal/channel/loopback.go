package channel

import (
	"context"
	"sync"
	"time"

	"auction-sync/internal/models"
)

// Loopback is an in-process transport. Whatever is published on a subscribed
// topic is dispatched to the bound sink; used with the in-memory backend.
type Loopback struct {
	mu     sync.RWMutex
	topics map[string]bool
	sink   Sink
}

// NewLoopback creates an unbound loopback transport
func NewLoopback() *Loopback {
	return &Loopback{topics: make(map[string]bool)}
}

// Bind attaches the sink and reports the connection as up
func (l *Loopback) Bind(ctx context.Context, sink Sink) {
	l.mu.Lock()
	l.sink = sink
	l.mu.Unlock()
	sink.MarkConnected(ctx)
}

// Drop simulates a lost connection
func (l *Loopback) Drop(err error) {
	l.mu.RLock()
	sink := l.sink
	l.mu.RUnlock()
	if sink != nil {
		sink.MarkDisconnected(err)
	}
}

func (l *Loopback) Subscribe(_ context.Context, topic string) error {
	l.mu.Lock()
	l.topics[topic] = true
	l.mu.Unlock()
	return nil
}

func (l *Loopback) Unsubscribe(_ context.Context, topic string) error {
	l.mu.Lock()
	delete(l.topics, topic)
	l.mu.Unlock()
	return nil
}

// Publish delivers msg on topic if anyone is subscribed. A zero timestamp is stamped with now.
func (l *Loopback) Publish(topic string, msg models.PushMessage) {
	l.mu.RLock()
	sink, ok := l.sink, l.topics[topic]
	l.mu.RUnlock()
	if !ok || sink == nil {
		return
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	sink.Dispatch(topic, msg)
}

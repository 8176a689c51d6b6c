// Package channel multiplexes logical topic subscriptions over one shared push
// connection and dispatches inbound messages to per-topic handlers.
package channel

import (
	"context"
	"fmt"
	"sync"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/metrics"
	"auction-sync/internal/models"
	"auction-sync/utils"
)

//go:generate mockgen -source=manager.go -destination=mock_manager.go -package=channel

// Handler consumes messages of one topic
type Handler func(msg models.PushMessage)

// Transport is the push connection. Implementations must not call back into the
// manager from Subscribe or Unsubscribe.
type Transport interface {
	Subscribe(ctx context.Context, topic string) error
	Unsubscribe(ctx context.Context, topic string) error
}

// Subscriber is the manager as seen by reconcilers and aggregators
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) (string, error)
	Unsubscribe(ctx context.Context, subscriptionID string)
	IsConnected() bool
}

// Sink receives what a transport reads off the wire
type Sink interface {
	Dispatch(topic string, msg models.PushMessage)
	MarkConnected(ctx context.Context)
	MarkDisconnected(err error)
}

type registration struct {
	id      string
	topic   string
	handler Handler
}

// Manager is the channel subscription manager
type Manager struct {
	mu        sync.RWMutex
	transport Transport
	connected bool
	lastErr   error
	subs      map[string]*registration // key: subscriptionID
	topics    map[string][]string      // key: topic -> subscription ids in registration order

	// wireMu orders transport calls. It is taken before mu and never while
	// holding it, so network writes do not stall readers or dispatch.
	wireMu sync.Mutex

	// dispatch runs one handler at a time, like a UI event loop
	dispatchMu sync.Mutex
}

// NewManager creates a manager over transport. It starts disconnected.
func NewManager(transport Transport) *Manager {
	return &Manager{
		transport: transport,
		subs:      make(map[string]*registration),
		topics:    make(map[string][]string),
	}
}

func (m *Manager) addLocked(reg *registration) {
	m.subs[reg.id] = reg
	m.topics[reg.topic] = append(m.topics[reg.topic], reg.id)
}

// removeLocked drops a registration and reports whether its topic is now empty
func (m *Manager) removeLocked(subscriptionID string) (*registration, bool) {
	reg, ok := m.subs[subscriptionID]
	if !ok {
		return nil, false
	}
	delete(m.subs, subscriptionID)

	ids := m.topics[reg.topic]
	for i, id := range ids {
		if id == subscriptionID {
			ids = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) > 0 {
		m.topics[reg.topic] = ids
		return reg, false
	}
	delete(m.topics, reg.topic)
	return reg, true
}

// Subscribe registers handler for topic. It fails fast when disconnected.
// Only the first registration of a topic goes to the transport; the
// registration is reserved first and rolled back if that call fails.
func (m *Manager) Subscribe(ctx context.Context, topic string, handler Handler) (string, error) {
	reg := &registration{id: utils.GenerateID(), topic: topic, handler: handler}

	m.mu.Lock()
	if !m.connected {
		m.lastErr = biddingerrors.ErrNotConnected
		m.mu.Unlock()
		return "", fmt.Errorf("subscribe %s: %w", topic, biddingerrors.ErrNotConnected)
	}
	if len(m.topics[topic]) > 0 {
		m.addLocked(reg)
		m.mu.Unlock()
		utils.Debug("channel: subscribed", map[string]any{"topic": topic, "subscription_id": reg.id})
		return reg.id, nil
	}
	m.mu.Unlock()

	m.wireMu.Lock()
	defer m.wireMu.Unlock()

	m.mu.Lock()
	if !m.connected {
		m.lastErr = biddingerrors.ErrNotConnected
		m.mu.Unlock()
		return "", fmt.Errorf("subscribe %s: %w", topic, biddingerrors.ErrNotConnected)
	}
	first := len(m.topics[topic]) == 0
	m.addLocked(reg)
	m.mu.Unlock()

	if first {
		if err := m.transport.Subscribe(ctx, topic); err != nil {
			m.mu.Lock()
			m.removeLocked(reg.id)
			m.lastErr = err
			m.mu.Unlock()
			return "", fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}

	utils.Debug("channel: subscribed", map[string]any{"topic": topic, "subscription_id": reg.id})
	return reg.id, nil
}

// Unsubscribe removes a registration. Unknown or already removed ids are ignored.
func (m *Manager) Unsubscribe(ctx context.Context, subscriptionID string) {
	m.wireMu.Lock()
	defer m.wireMu.Unlock()

	m.mu.Lock()
	reg, last := m.removeLocked(subscriptionID)
	connected := m.connected
	m.mu.Unlock()

	if reg == nil || !last || !connected {
		return
	}
	if err := m.transport.Unsubscribe(ctx, reg.topic); err != nil {
		utils.Warn("channel: transport unsubscribe failed", map[string]any{"topic": reg.topic, "error": err.Error()})
	}
}

// IsConnected reports the push connection state
func (m *Manager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// LastError returns the most recent non-fatal channel error, if any
func (m *Manager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Topics returns the topics that currently have at least one registration
func (m *Manager) Topics() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.topics))
	for t := range m.topics {
		out = append(out, t)
	}
	return out
}

// Dispatch delivers msg to the handlers of topic in registration order.
// Messages arriving while disconnected are dropped.
func (m *Manager) Dispatch(topic string, msg models.PushMessage) {
	m.mu.RLock()
	if !m.connected {
		m.mu.RUnlock()
		utils.Debug("channel: dropped message while disconnected", map[string]any{"topic": topic})
		return
	}
	handlers := make([]Handler, 0, len(m.topics[topic]))
	for _, id := range m.topics[topic] {
		handlers = append(handlers, m.subs[id].handler)
	}
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	metrics.PushDispatched(TopicKind(topic))

	m.dispatchMu.Lock()
	defer m.dispatchMu.Unlock()
	for _, h := range handlers {
		invoke(topic, h, msg)
	}
}

func invoke(topic string, h Handler, msg models.PushMessage) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("channel: handler panicked", map[string]any{"topic": topic, "type": msg.Type, "panic": fmt.Sprint(r)})
		}
	}()
	h(msg)
}

// MarkConnected resumes delivery and re-issues transport subscriptions for every
// retained topic, so existing subscription ids keep working.
func (m *Manager) MarkConnected(ctx context.Context) {
	m.wireMu.Lock()
	defer m.wireMu.Unlock()

	m.mu.Lock()
	m.connected = true
	m.lastErr = nil
	topics := make([]string, 0, len(m.topics))
	for topic := range m.topics {
		topics = append(topics, topic)
	}
	m.mu.Unlock()

	for _, topic := range topics {
		if err := m.transport.Subscribe(ctx, topic); err != nil {
			m.mu.Lock()
			m.lastErr = err
			m.mu.Unlock()
			utils.Warn("channel: resubscribe failed", map[string]any{"topic": topic, "error": err.Error()})
		}
	}
	utils.Info("channel: connected", map[string]any{"topics": len(topics)})
}

// MarkDisconnected stops delivery. Registrations are retained.
func (m *Manager) MarkDisconnected(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	fields := map[string]any{"topics": len(m.topics)}
	if err != nil {
		m.lastErr = err
		fields["error"] = err.Error()
	} else {
		m.lastErr = biddingerrors.ErrNotConnected
	}
	utils.Warn("channel: disconnected", fields)
}

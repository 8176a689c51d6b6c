// Package alert is the platform alerting capability: OS-level notifications for
// outbid and auction-end events. Delivery needs a one-time permission grant and
// is skipped silently without it.
package alert

import (
	"sync"

	"auction-sync/utils"
)

//go:generate mockgen -source=alert.go -destination=mock_alert.go -package=alert

// Alerter shows a user-facing alert outside the notification list
type Alerter interface {
	Alert(title, body string)
}

// Sink delivers an alert that has passed the permission gate
type Sink func(title, body string)

// Gate forwards alerts to a sink once permission has been granted
type Gate struct {
	mu      sync.RWMutex
	granted bool
	sink    Sink
}

// NewGate creates a gate delivering to sink. A nil sink logs the alert.
func NewGate(sink Sink) *Gate {
	if sink == nil {
		sink = logSink
	}
	return &Gate{sink: sink}
}

// Grant records the user's permission
func (g *Gate) Grant() {
	g.mu.Lock()
	g.granted = true
	g.mu.Unlock()
}

// Revoke withdraws the user's permission
func (g *Gate) Revoke() {
	g.mu.Lock()
	g.granted = false
	g.mu.Unlock()
}

// Granted reports whether alerts are currently delivered
func (g *Gate) Granted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.granted
}

// Alert implements Alerter
func (g *Gate) Alert(title, body string) {
	if !g.Granted() {
		utils.Debug("alert skipped, permission not granted", map[string]any{"title": title})
		return
	}
	g.sink(title, body)
}

func logSink(title, body string) {
	utils.Info("alert", map[string]any{"title": title, "body": body})
}

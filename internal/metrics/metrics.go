// Package metrics exposes prometheus counters for the synchronization core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	pushMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_push_messages_total",
			Help: "Push messages dispatched to handlers, by topic kind",
		},
		[]string{"kind"},
	)
	staleDropsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auction_stale_messages_dropped_total",
			Help: "Price pushes dropped because they would decrease the current price",
		},
	)
	bidSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bid_submissions_total",
			Help: "Bid submissions by outcome",
		},
		[]string{"outcome"},
	)
	chargeAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_charge_attempts_total",
			Help: "Winning-bid payment attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	registry.MustRegister(pushMessagesTotal, staleDropsTotal, bidSubmissionsTotal, chargeAttemptsTotal)
}

// PushDispatched counts one delivered push message
func PushDispatched(kind string) { pushMessagesTotal.WithLabelValues(kind).Inc() }

// StaleDropped counts one rejected price decrease
func StaleDropped() { staleDropsTotal.Inc() }

// BidSubmission counts one bid submission outcome
func BidSubmission(outcome string) { bidSubmissionsTotal.WithLabelValues(outcome).Inc() }

// ChargeAttempt counts one payment outcome
func ChargeAttempt(outcome string) { chargeAttemptsTotal.WithLabelValues(outcome).Inc() }

// Handler serves the registry in the prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCounters(t *testing.T) {
	PushDispatched("price")
	StaleDropped()
	BidSubmission("success")
	ChargeAttempt("insufficient_balance")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `auction_push_messages_total{kind="price"}`)
	require.Contains(t, string(body), "auction_stale_messages_dropped_total")
	require.Contains(t, string(body), `auction_bid_submissions_total{outcome="success"}`)
	require.Contains(t, string(body), `auction_charge_attempts_total{outcome="insufficient_balance"}`)
}

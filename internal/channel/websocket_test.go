package channel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/models"

	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// pushServer subscribes the client to whatever it asks for, pushes one garbage
// frame and one real frame, then closes normally after the client unsubscribes.
func pushServer(t *testing.T, controls chan<- controlFrame, auth chan<- string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close(websocket.StatusInternalError, "unexpected exit")
		ctx := r.Context()

		var ctl controlFrame
		if err := wsjson.Read(ctx, c, &ctl); err != nil {
			return
		}
		controls <- ctl

		_ = c.Write(ctx, websocket.MessageText, []byte("{not json"))
		_ = c.Write(ctx, websocket.MessageBinary, []byte{0x01})
		_ = wsjson.Write(ctx, c, map[string]any{
			"topic":     ctl.Topic,
			"type":      "PRICE_UPDATE",
			"data":      map[string]any{"currentPrice": 1100000, "bidCount": 4},
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})

		if err := wsjson.Read(ctx, c, &ctl); err != nil {
			return
		}
		controls <- ctl
		c.Close(websocket.StatusNormalClosure, "bye")
	}))
}

func TestWSTransport_RoundTrip(t *testing.T) {
	controls := make(chan controlFrame, 4)
	auth := make(chan string, 1)
	srv := pushServer(t, controls, auth)
	defer srv.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer token-1")
	tr := NewWSTransport("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	m := NewManager(tr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, tr.Connect(ctx, m))
	require.True(t, m.IsConnected())
	require.Equal(t, "Bearer token-1", <-auth)

	received := make(chan models.PushMessage, 1)
	topic := AuctionTopic("a1")
	id, err := m.Subscribe(ctx, topic, func(p models.PushMessage) { received <- p })
	require.NoError(t, err)
	require.Equal(t, controlFrame{Action: actionSubscribe, Topic: topic}, <-controls)

	select {
	case p := <-received:
		require.Equal(t, "PRICE_UPDATE", p.Type)
		require.JSONEq(t, `{"currentPrice":1100000,"bidCount":4}`, string(p.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("no push message delivered")
	}

	m.Unsubscribe(ctx, id)
	require.Equal(t, controlFrame{Action: actionUnsubscribe, Topic: topic}, <-controls)

	require.Eventually(t, func() bool { return !m.IsConnected() }, 2*time.Second, 10*time.Millisecond)
	require.ErrorIs(t, m.LastError(), biddingerrors.ErrNotConnected)

	_, err = m.Subscribe(ctx, topic, func(models.PushMessage) {})
	require.ErrorIs(t, err, biddingerrors.ErrNotConnected)
}

func TestWSTransport_DialFailure(t *testing.T) {
	tr := NewWSTransport("ws://127.0.0.1:1/ws", nil)
	m := NewManager(tr)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.Error(t, tr.Connect(ctx, m))
	require.False(t, m.IsConnected())
	require.Error(t, m.LastError())
}

func TestWSTransport_WriteWithoutConnection(t *testing.T) {
	tr := NewWSTransport("ws://unused", nil)
	require.ErrorIs(t, tr.Subscribe(context.Background(), "/topic/x"), biddingerrors.ErrNotConnected)
	require.NoError(t, tr.Close())
}

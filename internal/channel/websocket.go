package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"auction-sync/internal/biddingerrors"
	"auction-sync/internal/models"
	"auction-sync/utils"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	actionSubscribe   = "SUBSCRIBE"
	actionUnsubscribe = "UNSUBSCRIBE"

	readLimit = 1 << 20 // 1MB
)

// controlFrame is written by the client to open or close a topic
type controlFrame struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

// inboundFrame is one push message as it arrives on the wire
type inboundFrame struct {
	Topic string `json:"topic"`
	models.PushMessage
}

// WSTransport is a push transport over a single websocket connection.
// It does not reconnect; a read failure marks the sink disconnected.
type WSTransport struct {
	url    string
	header http.Header

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSTransport creates a transport for url authenticated with header
func NewWSTransport(url string, header http.Header) *WSTransport {
	return &WSTransport{url: url, header: header}
}

// Connect dials the push endpoint, reports the sink connected and starts the read loop.
// The loop stops when ctx is cancelled or the connection fails.
func (t *WSTransport) Connect(ctx context.Context, sink Sink) error {
	conn, _, err := websocket.Dial(ctx, t.url, &websocket.DialOptions{HTTPHeader: t.header})
	if err != nil {
		sink.MarkDisconnected(err)
		return fmt.Errorf("dial push channel: %w", err)
	}
	conn.SetReadLimit(readLimit)

	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()

	sink.MarkConnected(ctx)
	go t.readLoop(ctx, conn, sink)
	return nil
}

func (t *WSTransport) readLoop(ctx context.Context, conn *websocket.Conn, sink Sink) {
	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			t.mu.Lock()
			if t.conn == conn {
				t.conn = nil
			}
			t.mu.Unlock()

			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || ctx.Err() != nil {
				sink.MarkDisconnected(nil)
				return
			}
			utils.Warn("channel: websocket read error", map[string]any{"error": err.Error()})
			sink.MarkDisconnected(fmt.Errorf("push read: %w", err))
			return
		}

		if msgType != websocket.MessageText {
			utils.Debug("channel: ignoring non-text frame", map[string]any{"type": int(msgType)})
			continue
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Topic == "" {
			utils.Warn("channel: undecodable frame", map[string]any{"size": len(data)})
			continue
		}
		sink.Dispatch(frame.Topic, frame.PushMessage)
	}
}

func (t *WSTransport) write(ctx context.Context, action, topic string) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return biddingerrors.ErrNotConnected
	}
	if err := wsjson.Write(ctx, conn, controlFrame{Action: action, Topic: topic}); err != nil {
		return fmt.Errorf("%s %s: %w", action, topic, err)
	}
	return nil
}

func (t *WSTransport) Subscribe(ctx context.Context, topic string) error {
	return t.write(ctx, actionSubscribe, topic)
}

func (t *WSTransport) Unsubscribe(ctx context.Context, topic string) error {
	return t.write(ctx, actionUnsubscribe, topic)
}

// Close shuts the connection down normally
func (t *WSTransport) Close() error {
	t.mu.Lock()
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close(websocket.StatusNormalClosure, "client closing")
}

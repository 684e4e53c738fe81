package gateway

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/robgonnella/yunmon/internal/logger"
)

// WebsocketTransport implements the Transport interface over a persistent
// websocket connection. Calls are serialized, one request in flight at a time.
type WebsocketTransport struct {
	url     string
	timeout time.Duration
	dialer  *websocket.Dialer
	conn    *websocket.Conn
	mux     sync.Mutex
	log     logger.Logger
}

// NewWebsocketTransport returns a new instance of WebsocketTransport
func NewWebsocketTransport(url string, timeout time.Duration) *WebsocketTransport {
	return &WebsocketTransport{
		url:     url,
		timeout: timeout,
		dialer: &websocket.Dialer{
			HandshakeTimeout: timeout,
		},
		mux: sync.Mutex{},
		log: logger.New().With("websocket-transport"),
	}
}

// Call writes the request and waits for the reply carrying the same id
func (t *WebsocketTransport) Call(ctx context.Context, req *Request) (*Response, error) {
	t.mux.Lock()
	defer t.mux.Unlock()

	conn, err := t.connect(ctx)

	if err != nil {
		return nil, err
	}

	outgoing := *req
	outgoing.ID = uuid.New().String()

	// zero deadline means no deadline
	var deadline time.Time

	if t.timeout > 0 {
		deadline = time.Now().Add(t.timeout)
	}

	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}

	// unblock reads and writes if the caller gives up
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})

	defer func() {
		if !stop() {
			t.reset()
		}
	}()

	if err := conn.SetWriteDeadline(deadline); err != nil {
		t.reset()
		return nil, err
	}

	if err := conn.WriteJSON(outgoing); err != nil {
		t.reset()
		return nil, t.callError(ctx, err)
	}

	if err := conn.SetReadDeadline(deadline); err != nil {
		t.reset()
		return nil, err
	}

	for {
		_, data, err := conn.ReadMessage()

		if err != nil {
			t.reset()
			return nil, t.callError(ctx, err)
		}

		res := &Response{}

		if err := json.Unmarshal(data, res); err != nil {
			t.log.Warn().
				Err(err).
				Str("operation", string(req.Method)).
				Msg("failed to decode websocket message")

			return &Response{}, nil
		}

		if res.ID != "" && res.ID != outgoing.ID {
			t.log.Debug().Str("id", res.ID).Msg("discarding stale response")
			continue
		}

		return res, nil
	}
}

// Close closes the current connection if any
func (t *WebsocketTransport) Close() error {
	t.mux.Lock()
	defer t.mux.Unlock()

	t.reset()

	return nil
}

func (t *WebsocketTransport) connect(ctx context.Context) (*websocket.Conn, error) {
	if t.conn != nil {
		return t.conn, nil
	}

	t.log.Debug().Str("url", t.url).Msg("dialing device")

	conn, _, err := t.dialer.DialContext(ctx, t.url, nil)

	if err != nil {
		return nil, err
	}

	t.conn = conn

	return conn, nil
}

// must be called with mux held
func (t *WebsocketTransport) reset() {
	if t.conn == nil {
		return
	}

	t.conn.Close()
	t.conn = nil
}

func (t *WebsocketTransport) callError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return err
}

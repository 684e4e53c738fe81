package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/gateway"
	"github.com/stretchr/testify/assert"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newDeviceServer starts a websocket server answering every request with
// the provided reply function
func newDeviceServer(
	t *testing.T,
	reply func(conn *websocket.Conn, req gateway.Request),
) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)

		if err != nil {
			t.Logf("failed to upgrade connection: %s", err.Error())
			return
		}

		defer conn.Close()

		for {
			req := gateway.Request{}

			if err := conn.ReadJSON(&req); err != nil {
				return
			}

			reply(conn, req)
		}
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestWebsocketTransport(t *testing.T) {
	t.Run("sends request and matches reply by id", func(st *testing.T) {
		server := newDeviceServer(st, func(conn *websocket.Conn, req gateway.Request) {
			// a stale reply that must be skipped
			conn.WriteJSON(gateway.Response{
				ID:     "stale",
				Result: json.RawMessage(`"wrong"`),
			})

			conn.WriteJSON(gateway.Response{
				ID:     req.ID,
				Result: json.RawMessage(`"` + string(req.Method) + `"`),
			})
		})

		defer server.Close()

		transport := gateway.NewWebsocketTransport(wsURL(server), time.Second)

		defer transport.Close()

		for _, op := range []gateway.Operation{gateway.OpNetInfo, gateway.OpIWInfo} {
			res, err := transport.Call(context.Background(), &gateway.Request{
				Method: op,
				Args:   gateway.Args{},
			})

			assert.NoError(st, err)
			assert.Equal(st, json.RawMessage(`"`+string(op)+`"`), res.Result)
		}
	})

	t.Run("propagates remote error through gateway", func(st *testing.T) {
		server := newDeviceServer(st, func(conn *websocket.Conn, req gateway.Request) {
			conn.WriteJSON(gateway.Response{
				ID:    req.ID,
				Error: json.RawMessage(`"busy"`),
			})
		})

		defer server.Close()

		gw := gateway.New(gateway.NewWebsocketTransport(wsURL(server), time.Second))

		defer gw.Close()

		_, err := gw.Invoke(context.Background(), gateway.OpNetInfo, nil)

		remoteErr := &exception.RemoteError{}

		assert.True(st, errors.As(err, &remoteErr))
		assert.Equal(st, "busy", err.Error())
	})

	t.Run("returns error when device does not answer in time", func(st *testing.T) {
		server := newDeviceServer(st, func(conn *websocket.Conn, req gateway.Request) {})

		defer server.Close()

		transport := gateway.NewWebsocketTransport(wsURL(server), time.Millisecond*50)

		defer transport.Close()

		_, err := transport.Call(context.Background(), &gateway.Request{Method: gateway.OpNetInfo})

		assert.Error(st, err)
	})

	t.Run("returns context error when caller cancels", func(st *testing.T) {
		server := newDeviceServer(st, func(conn *websocket.Conn, req gateway.Request) {})

		defer server.Close()

		transport := gateway.NewWebsocketTransport(wsURL(server), time.Second*5)

		defer transport.Close()

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			time.Sleep(time.Millisecond * 20)
			cancel()
		}()

		_, err := transport.Call(ctx, &gateway.Request{Method: gateway.OpNetInfo})

		assert.ErrorIs(st, err, context.Canceled)
	})

	t.Run("returns error when device is unreachable", func(st *testing.T) {
		transport := gateway.NewWebsocketTransport("ws://127.0.0.1:1", time.Millisecond*100)

		_, err := transport.Call(context.Background(), &gateway.Request{Method: gateway.OpNetInfo})

		assert.Error(st, err)
	})
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/logger"
)

// RemoteGateway implements the Gateway interface on top of a Transport
type RemoteGateway struct {
	transport Transport
	log       logger.Logger
}

// New returns a new instance of RemoteGateway
func New(transport Transport) *RemoteGateway {
	return &RemoteGateway{
		transport: transport,
		log:       logger.New().With("gateway"),
	}
}

// Invoke performs a single remote operation and normalizes the outcome into
// either a payload or one of RemoteError, ErrNoResponse or TransportError
func (g *RemoteGateway) Invoke(ctx context.Context, op Operation, args Args) (json.RawMessage, error) {
	if op == "" {
		return nil, errors.New("operation cannot be empty")
	}

	if args == nil {
		args = Args{}
	}

	g.log.Debug().Str("operation", string(op)).Msg("invoking remote operation")

	res, err := g.transport.Call(ctx, &Request{Method: op, Args: args})

	if err != nil {
		return nil, exception.NewTransportError(err)
	}

	if res == nil {
		res = &Response{}
	}

	if !isEmptyValue(res.Result) {
		return res.Result, nil
	}

	if !isEmptyValue(res.Error) {
		return nil, exception.NewRemoteError(res.Error)
	}

	return nil, exception.ErrNoResponse
}

// Close closes the underlying transport
func (g *RemoteGateway) Close() error {
	return g.transport.Close()
}

// isEmptyValue reports whether a raw json value should be treated as absent:
// missing, null, false, zero or an empty string
func isEmptyValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) == 0 {
		return true
	}

	switch string(trimmed) {
	case "null", "false", `""`:
		return true
	}

	if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
		return f == 0
	}

	return false
}

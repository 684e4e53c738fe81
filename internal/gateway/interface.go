package gateway

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination=../mock/gateway/mock_gateway.go -package=mock_gateway . Transport,Gateway

// Operation a named remote procedure known to the device
type Operation string

const (
	// OpNetInfo returns the device info and arp tables
	OpNetInfo Operation = "netinfo"
	// OpIWInfo returns the wireless connection summary
	OpIWInfo Operation = "iwinfo"
)

// Args structured parameters for a remote operation
type Args map[string]any

// Request represents a single call sent over a Transport
type Request struct {
	ID     string    `json:"id,omitempty"`
	Method Operation `json:"method"`
	Args   Args      `json:"args"`
}

// Response represents the raw reply of the remote device. At most one of
// Result or Error is expected to be set.
type Response struct {
	ID     string          `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// Transport interface for delivering a request to the remote device
type Transport interface {
	Call(ctx context.Context, req *Request) (*Response, error)
	Close() error
}

// Gateway interface for invoking named remote operations
type Gateway interface {
	Invoke(ctx context.Context, op Operation, args Args) (json.RawMessage, error)
}

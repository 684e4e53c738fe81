package exception

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrNoResponse the remote device replied with neither a result nor an error
var ErrNoResponse = errors.New("no response from device")

// ErrServiceStopped returned when starting a service that has been stopped
var ErrServiceStopped = errors.New("service has been stopped")

// ErrServiceStarted returned when starting a service twice
var ErrServiceStarted = errors.New("service already started")

// ErrHistoryDisabled returned when querying device history while it is
// turned off in configuration
var ErrHistoryDisabled = errors.New("device history is disabled")

// ErrInvalidTarget returned when a history target is neither an ip nor a
// CIDR block
var ErrInvalidTarget = errors.New("invalid target")

// RemoteError an error value reported by the remote device itself
type RemoteError struct {
	Value json.RawMessage
}

// NewRemoteError returns a RemoteError wrapping the raw error value
func NewRemoteError(value json.RawMessage) *RemoteError {
	return &RemoteError{Value: value}
}

// Error returns the remote error verbatim. JSON strings are unquoted, any
// other value is returned as raw JSON.
func (e *RemoteError) Error() string {
	var str string

	if err := json.Unmarshal(e.Value, &str); err == nil {
		return str
	}

	return string(e.Value)
}

// TransportError the remote device could not be reached or did not answer
type TransportError struct {
	Err error
}

// NewTransportError wraps an underlying transport failure
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to get response from device: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedPayloadError a remote payload did not have the expected shape
type MalformedPayloadError struct {
	Operation string
	Reason    string
}

// NewMalformedPayloadError returns a new MalformedPayloadError
func NewMalformedPayloadError(operation, reason string) *MalformedPayloadError {
	return &MalformedPayloadError{Operation: operation, Reason: reason}
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed %s payload: %s", e.Operation, e.Reason)
}

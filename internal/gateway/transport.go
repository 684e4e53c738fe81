package gateway

import (
	"fmt"

	"github.com/robgonnella/yunmon/internal/config"
)

// NewTransport returns the Transport selected by the gateway config
func NewTransport(conf config.GatewayConfig) (Transport, error) {
	switch conf.Transport {
	case config.TransportHTTP:
		return NewHTTPTransport(conf.URL, conf.Timeout), nil
	case config.TransportWebsocket:
		return NewWebsocketTransport(conf.URL, conf.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported gateway transport: %q", conf.Transport)
	}
}

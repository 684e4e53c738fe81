package discovery

import (
	"encoding/json"
	"strings"

	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/gateway"
)

// placeholders for missing iwinfo tokens
const (
	placeholderText   = "null"
	placeholderSignal = "0"
	placeholderUnit   = "dBm"
)

// DisconnectedWifiInfo returns the wifi info reported when the remote device
// gave no usable answer
func DisconnectedWifiInfo() WifiInfo {
	return ParseWifiInfo("")
}

// ParseWifiInfo maps the space delimited iwinfo string positionally onto
// access point, ssid, security, signal strength and unit
func ParseWifiInfo(raw string) WifiInfo {
	raw = strings.TrimSpace(raw)

	status := WifiDisconnected
	tokens := []string{}

	if raw != "" {
		status = WifiConnected
		tokens = strings.Split(raw, " ")
	}

	token := func(i int, fallback string) string {
		if i < len(tokens) && tokens[i] != "" {
			return tokens[i]
		}
		return fallback
	}

	return WifiInfo{
		Status:   status,
		AP:       token(0, placeholderText),
		SSID:     token(1, placeholderText),
		Security: token(2, placeholderText),
		Signal:   token(3, placeholderSignal) + " " + token(4, placeholderUnit),
	}
}

// DecodeWifiInfo decodes an iwinfo payload which must be a json string
func DecodeWifiInfo(payload json.RawMessage) (WifiInfo, error) {
	var raw string

	if err := json.Unmarshal(payload, &raw); err != nil {
		return DisconnectedWifiInfo(), exception.NewMalformedPayloadError(
			string(gateway.OpIWInfo),
			"payload is not a string",
		)
	}

	return ParseWifiInfo(raw), nil
}

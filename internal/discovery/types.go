package discovery

import (
	"encoding/json"
	"sort"

	"github.com/robgonnella/yunmon/internal/event"
)

// SnapshotUpdatedEvent is sent every time a discovery cycle replaces the
// current snapshot
const SnapshotUpdatedEvent event.EventType = "snapshot-updated"

// Wifi connection states
const (
	WifiConnected    = "connected"
	WifiDisconnected = "disconnected"
)

// Device represents the attributes of a device discovered on the network.
// Any attribute may be empty when unknown.
type Device struct {
	IP   string `json:"IP"`
	Mask string `json:"Mask"`
	MAC  string `json:"MAC"`
}

// Snapshot maps device keys to the devices found by one discovery cycle
type Snapshot map[string]Device

// Clone returns a copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	clone := make(Snapshot, len(s))

	for k, d := range s {
		clone[k] = d
	}

	return clone
}

// Keys returns the sorted device keys in the snapshot
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))

	for k := range s {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// ARPRecord a single row of the remote address resolution table
type ARPRecord struct {
	Device string
	IP     string
	Mask   string
	MAC    string
}

// DiscoveryResult the decoded output of a single netinfo call
type DiscoveryResult struct {
	DeviceInfo map[string]json.RawMessage
	ARPTable   []ARPRecord
}

// WifiInfo represents the current wireless connection of the remote device
type WifiInfo struct {
	Status   string `json:"status"`
	AP       string `json:"ap"`
	SSID     string `json:"ssid"`
	Security string `json:"security"`
	Signal   string `json:"signal"`
}

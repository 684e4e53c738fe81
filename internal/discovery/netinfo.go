package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/gateway"
)

// wire names of the netinfo payload
const (
	deviceInfoField = "deviceinfo"
	arpTableField   = "arptable"
	arpDeviceField  = "Device"
	arpIPField      = "IP address"
	arpMaskField    = "Mask"
	arpMACField     = "HW address"
)

// ParseDiscoveryResult decodes a netinfo payload. A malformed payload never
// fails the cycle: the returned result is always usable and degraded parts
// are reported through the returned error.
func ParseDiscoveryResult(payload json.RawMessage) (*DiscoveryResult, error) {
	result := &DiscoveryResult{
		DeviceInfo: map[string]json.RawMessage{},
		ARPTable:   []ARPRecord{},
	}

	op := string(gateway.OpNetInfo)

	tables := map[string]json.RawMessage{}

	if err := json.Unmarshal(payload, &tables); err != nil || tables == nil {
		return result, exception.NewMalformedPayloadError(op, "payload is not an object")
	}

	var errs []error

	deviceInfo := map[string]json.RawMessage{}

	if err := json.Unmarshal(tables[deviceInfoField], &deviceInfo); err != nil || deviceInfo == nil {
		errs = append(
			errs,
			exception.NewMalformedPayloadError(op, "missing or invalid deviceinfo table"),
		)
	} else {
		result.DeviceInfo = deviceInfo
	}

	rows := []map[string]json.RawMessage{}

	if err := json.Unmarshal(tables[arpTableField], &rows); err != nil {
		errs = append(
			errs,
			exception.NewMalformedPayloadError(op, "missing or invalid arptable"),
		)
	}

	for _, row := range rows {
		result.ARPTable = append(result.ARPTable, ARPRecord{
			Device: stringField(row, arpDeviceField),
			IP:     stringField(row, arpIPField),
			Mask:   stringField(row, arpMaskField),
			MAC:    stringField(row, arpMACField),
		})
	}

	return result, errors.Join(errs...)
}

// DeviceKeys returns the sorted keys of the device info table
func (r *DiscoveryResult) DeviceKeys() []string {
	keys := make([]string, 0, len(r.DeviceInfo))

	for k := range r.DeviceInfo {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Lookup returns the first arp record whose device matches key exactly
func (r *DiscoveryResult) Lookup(key string) (ARPRecord, bool) {
	for _, rec := range r.ARPTable {
		if rec.Device == key {
			return rec, true
		}
	}

	return ARPRecord{}, false
}

// BuildSnapshot merges the device info and arp tables into a new snapshot.
// Devices without an arp record get empty attributes.
func BuildSnapshot(result *DiscoveryResult) Snapshot {
	snapshot := Snapshot{}

	for _, key := range result.DeviceKeys() {
		rec, _ := result.Lookup(key)

		snapshot[key] = Device{
			IP:   rec.IP,
			Mask: rec.Mask,
			MAC:  rec.MAC,
		}
	}

	return snapshot
}

// Discover performs a single netinfo call and returns the resulting
// snapshot. Malformed payload warnings are returned alongside a usable
// snapshot, call failures return a nil snapshot.
func Discover(ctx context.Context, gw gateway.Gateway) (Snapshot, error) {
	payload, err := gw.Invoke(ctx, gateway.OpNetInfo, gateway.Args{})

	if err != nil {
		return nil, err
	}

	result, err := ParseDiscoveryResult(payload)

	return BuildSnapshot(result), err
}

// stringField returns the string value of field or an empty string when the
// field is missing or not a string
func stringField(row map[string]json.RawMessage, field string) string {
	var value string

	if err := json.Unmarshal(row[field], &value); err != nil {
		return ""
	}

	return value
}

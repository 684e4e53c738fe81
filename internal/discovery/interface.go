package discovery

import "context"

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Service

// Service interface for monitoring the devices on a network
type Service interface {
	Start() error
	Stop()
	CurrentSnapshot() Snapshot
	WifiStatus(ctx context.Context) (WifiInfo, error)
}

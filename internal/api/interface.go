package api

import (
	"context"

	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/discovery"
)

//go:generate mockgen -destination=../mock/api/mock_api.go -package=mock_api . Backend

// Backend the operations served by the api
type Backend interface {
	Snapshot() discovery.Snapshot
	Wifi(ctx context.Context) (discovery.WifiInfo, error)
	History() (device.Service, error)
}

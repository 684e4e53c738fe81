package core

import (
	"errors"

	"github.com/robgonnella/yunmon/internal/config"
	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/event"
	"github.com/robgonnella/yunmon/internal/gateway"
	"github.com/spf13/viper"
)

// CreateGateway returns the gateway for the configured transport
func CreateGateway(conf config.Config) (*gateway.RemoteGateway, error) {
	transport, err := gateway.NewTransport(conf.Gateway)

	if err != nil {
		return nil, err
	}

	return gateway.New(transport), nil
}

// CreateHistoryService opens the database file found in viper and returns
// the device history service along with a function to close the database
func CreateHistoryService(conf config.Config) (*device.HistoryService, func() error, error) {
	dbFile := viper.GetString("database-file")

	if dbFile == "" {
		return nil, nil, errors.New("failed to find database file path config")
	}

	db, err := device.OpenSqliteDatabase(dbFile)

	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()

	if err != nil {
		return nil, nil, err
	}

	repo := device.NewSqliteRepo(db)

	return device.NewService(repo, conf.History.Retain), sqlDB.Close, nil
}

// CreateNewAppCore creates and returns a new instance of *core.Core
func CreateNewAppCore(conf config.Config) (*Core, error) {
	gw, err := CreateGateway(conf)

	if err != nil {
		return nil, err
	}

	eventManager := event.NewEventManager()

	discoveryService := discovery.NewPollingService(
		gw,
		eventManager,
		conf.PollInterval,
	)

	var history device.Service

	closers := []func() error{gw.Close}

	if !conf.History.Disabled {
		historyService, closeDB, err := CreateHistoryService(conf)

		if err != nil {
			gw.Close()
			return nil, err
		}

		history = historyService
		closers = append(closers, closeDB)
	}

	c := New(conf, discoveryService, eventManager, history)

	for _, closer := range closers {
		c.addCloser(closer)
	}

	return c, nil
}

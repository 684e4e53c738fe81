package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robgonnella/yunmon/internal/config"
	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/event"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/logger"
)

// number of consecutive failed cycles before the device is reported
// unreachable
const unreachableThreshold = 3

// Core represents our core data structure
type Core struct {
	ctx       context.Context
	cancel    context.CancelFunc
	conf      config.Config
	discovery discovery.Service
	events    event.Manager
	history   device.Service
	closers   []func() error
	done      chan struct{}
	started   bool
	mux       sync.Mutex
	logger    logger.Logger
}

// New returns new core module for given configuration. A nil history
// service disables device history.
func New(
	conf config.Config,
	discovery discovery.Service,
	events event.Manager,
	history device.Service,
) *Core {
	ctx, cancel := context.WithCancel(context.Background())

	return &Core{
		ctx:       ctx,
		cancel:    cancel,
		conf:      conf,
		discovery: discovery,
		events:    events,
		history:   history,
		closers:   []func() error{},
		done:      make(chan struct{}),
		mux:       sync.Mutex{},
		logger:    logger.New().With("core"),
	}
}

// Conf returns the configuration core was created with
func (c *Core) Conf() config.Config {
	return c.conf
}

// Start starts network discovery and the event monitor
func (c *Core) Start() error {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.started {
		return exception.ErrServiceStarted
	}

	snapshots := make(chan event.Event, 10)
	errs := make(chan event.Event, 10)

	// listeners must exist before the first cycle completes
	snapshotID := c.events.RegisterListener(discovery.SnapshotUpdatedEvent, snapshots)
	errID := c.events.RegisterListener(event.ErrorEventType, errs)

	if err := c.discovery.Start(); err != nil {
		c.events.RemoveListener(snapshotID)
		c.events.RemoveListener(errID)
		return err
	}

	c.started = true

	go func() {
		defer close(c.done)
		defer c.events.RemoveListener(snapshotID)
		defer c.events.RemoveListener(errID)

		c.monitor(snapshots, errs)
	}()

	return nil
}

// Stop stops discovery and the event monitor and releases resources
func (c *Core) Stop() {
	c.discovery.Stop()
	c.cancel()

	c.mux.Lock()
	defer c.mux.Unlock()

	if c.started {
		<-c.done
	}

	for _, closer := range c.closers {
		if err := closer(); err != nil {
			c.logger.Warn().Err(err).Msg("failed to release resource")
		}
	}

	c.closers = nil
}

// Snapshot returns the current device snapshot
func (c *Core) Snapshot() discovery.Snapshot {
	return c.discovery.CurrentSnapshot()
}

// Wifi returns the current wifi status of the remote device
func (c *Core) Wifi(ctx context.Context) (discovery.WifiInfo, error) {
	return c.discovery.WifiStatus(ctx)
}

// History returns the device history service
func (c *Core) History() (device.Service, error) {
	if c.history == nil {
		return nil, exception.ErrHistoryDisabled
	}

	return c.history, nil
}

// registers a function called once on Stop
func (c *Core) addCloser(fn func() error) {
	c.closers = append(c.closers, fn)
}

func (c *Core) monitor(snapshots, errs chan event.Event) {
	failures := 0

	for {
		select {
		case <-c.ctx.Done():
			return
		case evt := <-snapshots:
			failures = 0
			c.handleSnapshot(evt)
		case evt := <-errs:
			failures++
			c.handleError(evt, failures)
		}
	}
}

func (c *Core) handleSnapshot(evt event.Event) {
	snapshot, ok := evt.Payload.(discovery.Snapshot)

	if !ok {
		c.logger.Error().Str("type", string(evt.Type)).Msg("unexpected event payload")
		return
	}

	c.logger.Debug().Int("count", len(snapshot)).Msg("Snapshot updated")

	if c.history == nil {
		return
	}

	if err := c.history.RecordSnapshot(snapshot, time.Now()); err != nil {
		c.logger.Error().Err(err).Msg("failed to record device history")
	}
}

func (c *Core) handleError(evt event.Event, failures int) {
	err, ok := evt.Payload.(error)

	if !ok {
		err = errors.New("unknown error")
	}

	if failures == unreachableThreshold {
		c.logger.Error().
			Err(err).
			Int("failures", failures).
			Msg("remote device appears unreachable")
		return
	}

	c.logger.Debug().Err(err).Int("failures", failures).Msg("discovery error received")
}

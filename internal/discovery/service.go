package discovery

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robgonnella/yunmon/internal/event"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/gateway"
	"github.com/robgonnella/yunmon/internal/logger"
)

// DefaultPollInterval period between two discovery cycles
const DefaultPollInterval = time.Second * 15

// PollingService implements the discovery Service by polling the remote
// device inventory through the gateway on a fixed interval
type PollingService struct {
	ctx      context.Context
	cancel   context.CancelFunc
	gateway  gateway.Gateway
	events   event.Manager
	interval time.Duration
	snapshot atomic.Pointer[Snapshot]
	polling  atomic.Bool
	started  bool
	stopped  bool
	// serializes snapshot swaps with Start and Stop
	mux  sync.Mutex
	loop sync.WaitGroup
	log  logger.Logger
}

// NewPollingService returns a new instance of PollingService
func NewPollingService(
	gw gateway.Gateway,
	events event.Manager,
	interval time.Duration,
) *PollingService {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &PollingService{
		ctx:      ctx,
		cancel:   cancel,
		gateway:  gw,
		events:   events,
		interval: interval,
		log:      logger.New().With("discovery"),
	}

	s.snapshot.Store(&Snapshot{})

	return s
}

// Start arms the poll timer and triggers an immediate discovery cycle
func (s *PollingService) Start() error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.stopped {
		return exception.ErrServiceStopped
	}

	if s.started {
		return exception.ErrServiceStarted
	}

	s.started = true

	s.log.Info().
		Str("interval", s.interval.String()).
		Msg("Starting network discovery")

	ticker := time.NewTicker(s.interval)

	s.loop.Add(1)
	go s.run(ticker)

	s.poll()

	return nil
}

// Stop cancels the timer and any in-flight call and clears the snapshot.
// A cycle that completes after Stop is discarded.
func (s *PollingService) Stop() {
	s.mux.Lock()

	if s.stopped {
		s.mux.Unlock()
		return
	}

	s.stopped = true
	s.cancel()
	s.snapshot.Store(&Snapshot{})

	s.mux.Unlock()

	s.loop.Wait()

	s.log.Info().Msg("Network discovery stopped")
}

// CurrentSnapshot returns a copy of the most recently applied snapshot
func (s *PollingService) CurrentSnapshot() Snapshot {
	return s.snapshot.Load().Clone()
}

// WifiStatus queries the remote device for its current wireless connection.
// On failure the disconnected record is returned along with the error.
func (s *PollingService) WifiStatus(ctx context.Context) (WifiInfo, error) {
	if s.isStopped() {
		return DisconnectedWifiInfo(), exception.ErrServiceStopped
	}

	payload, err := s.gateway.Invoke(ctx, gateway.OpIWInfo, gateway.Args{})

	if err != nil {
		s.log.Warn().Err(err).Msg("failed to retrieve wifi status")
		return DisconnectedWifiInfo(), err
	}

	info, err := DecodeWifiInfo(payload)

	if err != nil {
		s.log.Warn().Err(err).Msg("failed to parse wifi status")
		return info, err
	}

	return info, nil
}

// private
func (s *PollingService) run(ticker *time.Ticker) {
	defer s.loop.Done()
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.log.Debug().Msg("Network polling timer cancelled")
			return
		case <-ticker.C:
			s.poll()
		}
	}
}

// poll starts a discovery cycle unless one is already in flight
func (s *PollingService) poll() {
	if s.ctx.Err() != nil {
		return
	}

	if !s.polling.CompareAndSwap(false, true) {
		s.log.Debug().Msg("discovery cycle still in flight, skipping tick")
		return
	}

	go func() {
		defer s.polling.Store(false)
		s.cycle()
	}()
}

func (s *PollingService) cycle() {
	start := time.Now()

	snapshot, err := Discover(s.ctx, s.gateway)

	if snapshot == nil {
		if s.ctx.Err() != nil {
			s.log.Debug().Err(err).Msg("discovery cycle abandoned after stop")
			return
		}

		s.log.Warn().Err(err).Msg("network discovery failed, keeping previous snapshot")
		s.events.ReportError(err)

		return
	}

	if err != nil {
		s.log.Warn().Err(err).Msg("malformed discovery result")
	}

	if !s.apply(snapshot) {
		s.log.Debug().Msg("discarding discovery result received after stop")
		return
	}

	s.log.Info().
		Fields(map[string]interface{}{
			"count":    len(snapshot),
			"duration": time.Since(start).String(),
		}).
		Msg("Discovery results")

	s.events.Send(event.Event{
		Type:    SnapshotUpdatedEvent,
		Payload: snapshot.Clone(),
	})
}

func (s *PollingService) apply(snapshot Snapshot) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.stopped {
		return false
	}

	s.snapshot.Store(&snapshot)

	return true
}

func (s *PollingService) isStopped() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.stopped
}

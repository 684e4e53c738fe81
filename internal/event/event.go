package event

import (
	"sync"

	"github.com/robgonnella/yunmon/internal/logger"
)

// events queued for a single listener before new ones are dropped
const listenerQueueSize = 64

// represents a registered event listener
type listener struct {
	id        int
	eventType EventType
	channel   chan Event
	queue     chan Event
	done      chan struct{}
}

// forward delivers queued events to the listener channel in the order they
// were sent until the listener is removed
func (l *listener) forward() {
	for {
		select {
		case <-l.done:
			return
		case evt := <-l.queue:
			select {
			case l.channel <- evt:
			case <-l.done:
				return
			}
		}
	}
}

// EventManager implements the event.Manager interface
type EventManager struct {
	listeners []*listener
	nextID    int
	mux       sync.RWMutex
	log       logger.Logger
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners: []*listener{},
		nextID:    1,
		mux:       sync.RWMutex{},
		log:       logger.New().With("event"),
	}
}

// RegisterListener registers a channel to receive events of a specific type
func (m *EventManager) RegisterListener(eventType EventType, channel chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:        m.nextID,
		eventType: eventType,
		channel:   channel,
		queue:     make(chan Event, listenerQueueSize),
		done:      make(chan struct{}),
	}

	go l.forward()

	m.listeners = append(m.listeners, l)
	m.nextID++

	return l.id
}

// RemoveListener removes a registered listener and returns its id
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	listeners := []*listener{}

	for _, l := range m.listeners {
		if l.id != id {
			listeners = append(listeners, l)
			continue
		}

		close(l.done)
	}

	m.listeners = listeners

	return id
}

// Send queues the event for every listener registered for its type. Each
// listener receives events in the order they were sent. Events for a
// listener whose queue is full are dropped so a slow listener never blocks
// the sender.
func (m *EventManager) Send(evt Event) {
	m.mux.RLock()
	defer m.mux.RUnlock()

	for _, l := range m.listeners {
		if l.eventType != evt.Type {
			continue
		}

		select {
		case l.queue <- evt:
		default:
			m.log.Warn().
				Str("type", string(evt.Type)).
				Int("listener", l.id).
				Msg("listener queue full, dropping event")
		}
	}
}

// ReportFatalError sends a fatal error event
func (m *EventManager) ReportFatalError(err error) {
	m.log.Error().Err(err).Msg("fatal error reported")

	m.Send(Event{
		Type:    FatalErrorEventType,
		Payload: err,
	})
}

// ReportError sends a non-fatal error event
func (m *EventManager) ReportError(err error) {
	m.log.Warn().Err(err).Msg("error reported")

	m.Send(Event{
		Type:    ErrorEventType,
		Payload: err,
	})
}

package event

//go:generate mockgen -destination=../mock/event/event.go -package=mock_event . Manager

// Manager interface for publishing events to registered listeners. Listeners
// only receive events of the type they registered for.
type Manager interface {
	RegisterListener(eventType EventType, listener chan Event) int
	RemoveListener(id int) int
	Send(evt Event)
	// ReportFatalError sends a FatalErrorEventType event carrying err
	ReportFatalError(err error)
	// ReportError sends an ErrorEventType event carrying err
	ReportError(err error)
}

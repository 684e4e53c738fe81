package event

// EventType identifies the kind of event being sent
type EventType string

const (
	FatalErrorEventType EventType = "fatal-error"
	ErrorEventType      EventType = "error"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}

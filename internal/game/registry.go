package game

import "fmt"

// eventRegistry maps event kinds to their constructors. The set is closed
// and known at compile time.
var eventRegistry = map[EventKind]func() Event{
	EventRagnarok:       func() Event { return RagnarokEvent{} },
	EventOsirisJudgment: func() Event { return OsirisJudgmentEvent{} },
	EventBifrost:        func() Event { return BifrostEvent{} },
	EventMysteries:      func() Event { return MysteriesEvent{} },
}

// NewEvent constructs the event for the given kind.
// Panics on an unknown kind: that is a contract violation, not a runtime
// data condition.
func NewEvent(kind EventKind) Event {
	ctor, ok := eventRegistry[kind]
	if !ok {
		panic(fmt.Sprintf("event kind not in registry: %d", kind))
	}
	return ctor()
}

// EventKinds lists every registered event kind in a stable order.
func EventKinds() []EventKind {
	return []EventKind{EventRagnarok, EventOsirisJudgment, EventBifrost, EventMysteries}
}

// ParseEventKind converts a tool/CLI key to an EventKind.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "ragnarok":
		return EventRagnarok, nil
	case "judgment":
		return EventOsirisJudgment, nil
	case "bifrost":
		return EventBifrost, nil
	case "mysteries":
		return EventMysteries, nil
	default:
		return 0, fmt.Errorf("unknown event kind %q", s)
	}
}

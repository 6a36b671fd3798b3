package game

// EventKind identifies one of the four mythological events. The set is
// closed: constructing an unknown kind is a programming error.
type EventKind int

const (
	EventRagnarok EventKind = iota
	EventOsirisJudgment
	EventBifrost
	EventMysteries
)

func (k EventKind) String() string {
	switch k {
	case EventRagnarok:
		return "Ragnarok"
	case EventOsirisJudgment:
		return "Judgment of Osiris"
	case EventBifrost:
		return "Bifrost"
	case EventMysteries:
		return "Mysteries of Isis/Orpheus"
	default:
		return "Unknown"
	}
}

// EventResult reports the outcome of executing an event.
type EventResult struct {
	Success       bool
	Message       string
	AffectedCards []string // card IDs touched by the event
}

// EventArgs carries the optional, variant-specific parameters of an event
// execution. Zero values mean "let the event pick".
type EventArgs struct {
	TargetPlayerID int      // Judgment: whose card to judge (-1 = first opponent)
	TargetCardID   string   // Judgment: explicit card, Bifrost: reserve card
	CardIDs        []string // Mysteries: explicit subset of hand cards
}

// NoArgs is the zero-argument EventArgs.
var NoArgs = EventArgs{TargetPlayerID: -1}

// Event is the two-operation contract every mythological event implements.
// CanActivate is a pure predicate; Execute mutates game state and does NOT
// re-check CanActivate. GameState.ExecuteEvent enforces the ordering and
// handles the event-budget refund.
type Event interface {
	Kind() EventKind
	Name() string
	Description() string
	CanActivate(gs *GameState, playerID int) bool
	Execute(gs *GameState, playerID int, args EventArgs) EventResult
}

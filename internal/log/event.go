package log

// EventType enumerates all observable match events.
type EventType int

const (
	EventGameStart EventType = iota
	EventAttributeChosen
	EventCardsPlayed
	EventBattleWin
	EventBattleTie
	EventMythEvent
	EventSyncretism
	EventSyncretismReset
	EventProtectionApplied
	EventProtectionExpired
	EventDevoured
	EventRedistribute
	EventTurnEnd
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventGameStart:
		return "GameStart"
	case EventAttributeChosen:
		return "AttributeChosen"
	case EventCardsPlayed:
		return "CardsPlayed"
	case EventBattleWin:
		return "BattleWin"
	case EventBattleTie:
		return "BattleTie"
	case EventMythEvent:
		return "MythEvent"
	case EventSyncretism:
		return "Syncretism"
	case EventSyncretismReset:
		return "SyncretismReset"
	case EventProtectionApplied:
		return "ProtectionApplied"
	case EventProtectionExpired:
		return "ProtectionExpired"
	case EventDevoured:
		return "Devoured"
	case EventRedistribute:
		return "Redistribute"
	case EventTurnEnd:
		return "TurnEnd"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Choose Attribute")
	Player  int       // acting player ID (-1 when none applies)
	Type    EventType // event type
	Card    string    // card ID (if applicable)
	Details string    // human-readable detail string
}

package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging match events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 18 chars for alignment
	for len(phase) < 18 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameStartEvent(playerCount int, starter string) GameEvent {
	return GameEvent{
		Turn:    1,
		Phase:   "Setup",
		Player:  -1,
		Type:    EventGameStart,
		Details: fmt.Sprintf("Game started with %d players. %s goes first", playerCount, starter),
	}
}

func NewAttributeChosenEvent(turn int, player int, playerName, attribute string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Choose Attribute",
		Player:  player,
		Type:    EventAttributeChosen,
		Details: fmt.Sprintf("%s chooses %s for this round", playerName, attribute),
	}
}

func NewCardsPlayedEvent(turn int, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Player:  -1,
		Type:    EventCardsPlayed,
		Details: fmt.Sprintf("%d cards staged for battle", count),
	}
}

func NewBattleWinEvent(turn int, player int, playerName, cardName, attribute string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Player:  player,
		Type:    EventBattleWin,
		Card:    cardName,
		Details: fmt.Sprintf("%s wins the battle with %s (%s)", playerName, cardName, attribute),
	}
}

func NewBattleTieEvent(turn int, attribute string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Player:  -1,
		Type:    EventBattleTie,
		Details: fmt.Sprintf("Tie on %s, no cards change hands", attribute),
	}
}

func NewMythEventEvent(turn int, player int, playerName, eventName, message string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Event",
		Player:  player,
		Type:    EventMythEvent,
		Details: fmt.Sprintf("%s invokes %s: %s", playerName, eventName, message),
	}
}

func NewSyncretismEvent(turn int, player int, cardID, newName, pantheon string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Choose Attribute",
		Player:  player,
		Type:    EventSyncretism,
		Card:    cardID,
		Details: fmt.Sprintf("Card %s manifests as %s (%s)", cardID, newName, pantheon),
	}
}

func NewDevouredEvent(turn int, cardID, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Event",
		Player:  -1,
		Type:    EventDevoured,
		Card:    cardID,
		Details: fmt.Sprintf("%s is devoured and leaves the match for good", cardName),
	}
}

func NewRedistributeEvent(turn int, cardCount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Event",
		Player:  -1,
		Type:    EventRedistribute,
		Details: fmt.Sprintf("%d surviving cards reshuffled and redealt", cardCount),
	}
}

func NewTurnEndEvent(turn int, nextPlayerName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "End Turn",
		Player:  -1,
		Type:    EventTurnEnd,
		Details: fmt.Sprintf("Turn %d ends, %s is up next", turn, nextPlayerName),
	}
}

func NewGameOverEvent(turn int, winner int, winnerName string, score int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Game Over",
		Player:  winner,
		Type:    EventGameOver,
		Details: fmt.Sprintf("Game over! %s wins with %d points", winnerName, score),
	}
}

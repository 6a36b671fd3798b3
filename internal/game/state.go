package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/xxholden07/st/internal/log"
)

// ReserveCardsPerPlayer is how many dealt cards are seeded into each
// player's reserve at setup. The rest go to the hand.
const ReserveCardsPerPlayer = 2

// Config holds knobs for creating a game.
type Config struct {
	Seed      int64           // RNG seed (0 for time-based)
	NoShuffle bool            // skip deck shuffle (for deterministic tests)
	Logger    log.EventLogger // nil for an in-memory logger
}

// BattleResult reports the outcome of ResolveBattle.
type BattleResult struct {
	Success     bool
	Message     string
	Tie         bool
	Winner      *Player
	WinningCard *Card
	LosingCard  *Card
	Attribute   string
}

// PlayedCard is one staged entry: which player committed which card.
type PlayedCard struct {
	PlayerID int
	Card     *Card
}

// GameState is the aggregate root of a match. It owns the players, the
// deck, the staged cards and the phase machine. All mutation goes through
// its public operations; each call is atomic from the caller's view.
type GameState struct {
	Players       []*Player
	Deck          []*Card
	CardsInPlay   []PlayedCard
	DevouredCards []*Card

	CurrentPlayerIndex int
	CurrentPhase       Phase
	TurnNumber         int
	ChosenAttribute    string

	logger    log.EventLogger
	rng       *rand.Rand
	noShuffle bool
}

// NewGameState creates a game over the given card population.
// The deck is the injected, immutable dataset from the deck loader; the
// game takes ownership of the card battle state from here on.
func NewGameState(deck []*Card, cfg Config) *GameState {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &GameState{
		Deck:         deck,
		CurrentPhase: PhaseSetup,
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		noShuffle:    cfg.NoShuffle,
	}
}

// InitializeGame builds the players, shuffles and deals the deck, picks a
// random starting player and opens the first turn.
func (gs *GameState) InitializeGame(playerNames []string) error {
	if len(playerNames) < 2 {
		return fmt.Errorf("need at least 2 players, got %d", len(playerNames))
	}
	if len(gs.Deck) < len(playerNames) {
		return fmt.Errorf("deck of %d cards cannot serve %d players", len(gs.Deck), len(playerNames))
	}

	gs.Players = gs.Players[:0]
	for i, name := range playerNames {
		gs.Players = append(gs.Players, NewPlayer(i, name))
	}

	if !gs.noShuffle {
		gs.shuffleDeck()
	}
	gs.distributeCards()

	gs.CurrentPlayerIndex = gs.rng.Intn(len(gs.Players))
	gs.CurrentPhase = PhaseChooseAttribute
	gs.TurnNumber = 1

	gs.logger.Log(log.NewGameStartEvent(len(gs.Players), gs.CurrentPlayer().Name))
	return nil
}

func (gs *GameState) shuffleDeck() {
	gs.rng.Shuffle(len(gs.Deck), func(i, j int) {
		gs.Deck[i], gs.Deck[j] = gs.Deck[j], gs.Deck[i]
	})
}

// distributeCards deals the deck evenly: the first ReserveCardsPerPlayer of
// each player's share seed the reserve, the rest go to the hand. Undealt
// remainder cards stay in the deck.
func (gs *GameState) distributeCards() {
	perPlayer := len(gs.Deck) / len(gs.Players)
	dealt := 0
	for _, player := range gs.Players {
		share := gs.Deck[dealt : dealt+perPlayer]
		for i, card := range share {
			if i < ReserveCardsPerPlayer {
				player.AddToReserve(card)
			} else {
				player.AddCard(card)
			}
		}
		dealt += perPlayer
	}
	gs.Deck = gs.Deck[dealt:]
}

// RedistributeCards pools every surviving card (hands, reserves and the
// undealt deck), resets syncretism and protection, reshuffles and deals the
// pool evenly into hands. No reserve carve-out on this path; the remainder
// stays in the deck. Used by the Ragnarok event.
func (gs *GameState) RedistributeCards() {
	var pool []*Card
	for _, player := range gs.Players {
		for _, c := range player.Hand {
			if !c.IsDestroyed {
				pool = append(pool, c)
			}
		}
		for _, c := range player.Reserve {
			if !c.IsDestroyed {
				pool = append(pool, c)
			}
		}
		player.Hand = player.Hand[:0]
		player.Reserve = player.Reserve[:0]
	}
	for _, c := range gs.Deck {
		if !c.IsDestroyed {
			pool = append(pool, c)
		}
	}

	for _, c := range pool {
		c.ResetSyncretism()
		c.IsProtected = false
		c.ProtectionTurns = 0
	}

	gs.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	perPlayer := len(pool) / len(gs.Players)
	dealt := 0
	for _, player := range gs.Players {
		for _, c := range pool[dealt : dealt+perPlayer] {
			player.AddCard(c)
		}
		dealt += perPlayer
	}
	gs.Deck = pool[dealt:]

	gs.logger.Log(log.NewRedistributeEvent(gs.TurnNumber, len(pool)))
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.CurrentPlayerIndex]
}

// GetPlayer returns the player with the given ID, or nil.
func (gs *GameState) GetPlayer(playerID int) *Player {
	for _, p := range gs.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// GetOpponent returns the first player other than playerID (two-player
// convenience), or nil.
func (gs *GameState) GetOpponent(playerID int) *Player {
	for _, p := range gs.Players {
		if p.ID != playerID {
			return p
		}
	}
	return nil
}

// AddToDevoured takes a card permanently out of circulation.
func (gs *GameState) AddToDevoured(card *Card) {
	gs.DevouredCards = append(gs.DevouredCards, card)
	gs.logger.Log(log.NewDevouredEvent(gs.TurnNumber, card.ID, card.CurrentName()))
}

// ChooseAttribute sets the attribute for this round's comparison and
// advances to the battle phase. Unknown attribute names are rejected with
// no state change.
func (gs *GameState) ChooseAttribute(attribute string) bool {
	if !IsValidAttribute(attribute) {
		return false
	}
	gs.ChosenAttribute = attribute
	gs.CurrentPhase = PhaseBattle
	gs.logger.Log(log.NewAttributeChosenEvent(gs.TurnNumber, gs.CurrentPlayer().ID, gs.CurrentPlayer().Name, attribute))
	return true
}

// ActivateSyncretism re-maps a hand card of the given player and logs the
// transformation. Fails without mutation when the player or card is absent
// or the pantheon is not among the card's identities.
func (gs *GameState) ActivateSyncretism(playerID int, cardID string, target Pantheon) bool {
	player := gs.GetPlayer(playerID)
	if player == nil {
		return false
	}
	card := player.GetCard(cardID)
	if card == nil {
		return false
	}
	if !card.ActivateSyncretism(target) {
		return false
	}
	gs.logger.Log(log.NewSyncretismEvent(gs.TurnNumber, playerID, card.ID, card.CurrentName(), target.String()))
	return true
}

// PlayCards stages the given cards for comparison, one per player, in
// player order. The reference two-player mode stages exactly two.
func (gs *GameState) PlayCards(cards map[int]*Card) {
	gs.CardsInPlay = gs.CardsInPlay[:0]
	for _, player := range gs.Players {
		if card, ok := cards[player.ID]; ok {
			gs.CardsInPlay = append(gs.CardsInPlay, PlayedCard{PlayerID: player.ID, Card: card})
		}
	}
	gs.logger.Log(log.NewCardsPlayedEvent(gs.TurnNumber, len(gs.CardsInPlay)))
}

// ResolveBattle compares the two staged cards on the chosen attribute. The
// winner takes both cards; on a tie nothing changes hands. Either way the
// staging area is cleared and the phase advances to End Turn. Fails with no
// mutation when fewer than two cards are staged or no attribute is chosen.
func (gs *GameState) ResolveBattle() BattleResult {
	if len(gs.CardsInPlay) < 2 || gs.ChosenAttribute == "" {
		return BattleResult{Success: false, Message: "Invalid battle: need two staged cards and a chosen attribute."}
	}

	first, second := gs.CardsInPlay[0], gs.CardsInPlay[1]
	outcome := first.Card.Compare(second.Card, gs.ChosenAttribute)

	if outcome == CompareTie {
		gs.CardsInPlay = gs.CardsInPlay[:0]
		gs.CurrentPhase = PhaseEndTurn
		gs.logger.Log(log.NewBattleTieEvent(gs.TurnNumber, gs.ChosenAttribute))
		return BattleResult{
			Success:   true,
			Tie:       true,
			Message:   "Tie! The deities are equal.",
			Attribute: gs.ChosenAttribute,
		}
	}

	winning, losing := first, second
	if outcome == CompareLoss {
		winning, losing = second, first
	}
	winner := gs.GetPlayer(winning.PlayerID)
	loser := gs.GetPlayer(losing.PlayerID)

	// Both cards leave their owners' hands; the winner takes both.
	winner.RemoveCard(winning.Card)
	loser.RemoveCard(losing.Card)
	winner.WinCard(winning.Card)
	winner.WinCard(losing.Card)

	gs.CardsInPlay = gs.CardsInPlay[:0]
	gs.CurrentPhase = PhaseEndTurn
	gs.logger.Log(log.NewBattleWinEvent(gs.TurnNumber, winner.ID, winner.Name, winning.Card.CurrentName(), gs.ChosenAttribute))

	return BattleResult{
		Success:     true,
		Winner:      winner,
		WinningCard: winning.Card,
		LosingCard:  losing.Card,
		Attribute:   gs.ChosenAttribute,
		Message:     fmt.Sprintf("%s wins with %s!", winner.Name, winning.Card.CurrentName()),
	}
}

// EndTurn ticks protection counters, checks for game over and otherwise
// passes the turn to the next player.
func (gs *GameState) EndTurn() {
	for _, player := range gs.Players {
		player.DecreaseProtectionCounters()
	}

	if gs.checkGameOver() {
		gs.CurrentPhase = PhaseGameOver
		winner := gs.GetWinner()
		gs.logger.Log(log.NewGameOverEvent(gs.TurnNumber, winner.ID, winner.Name, winner.Score))
		return
	}

	gs.CurrentPlayerIndex = (gs.CurrentPlayerIndex + 1) % len(gs.Players)
	gs.TurnNumber++
	gs.ChosenAttribute = ""
	gs.CurrentPhase = PhaseChooseAttribute
	gs.logger.Log(log.NewTurnEndEvent(gs.TurnNumber-1, gs.CurrentPlayer().Name))
}

func (gs *GameState) checkGameOver() bool {
	for _, player := range gs.Players {
		if !player.HasCards() {
			return true
		}
	}
	return false
}

// GetWinner returns the highest-scoring player, stable by player order on
// equal scores. Only meaningful in the Game Over phase; returns nil before
// then.
func (gs *GameState) GetWinner() *Player {
	if gs.CurrentPhase != PhaseGameOver {
		return nil
	}
	winner := gs.Players[0]
	for _, p := range gs.Players[1:] {
		if p.Score > winner.Score {
			winner = p
		}
	}
	return winner
}

// ExecuteEvent runs a mythological event for a player. It consumes one
// unit of the player's event budget, refunding it when the activation
// predicate fails. Successful executions land in the match history.
func (gs *GameState) ExecuteEvent(event Event, playerID int, args EventArgs) EventResult {
	player := gs.GetPlayer(playerID)
	if player == nil {
		return EventResult{Success: false, Message: "Player not found."}
	}

	if !player.UseEvent() {
		return EventResult{Success: false, Message: "No events available."}
	}

	if !event.CanActivate(gs, playerID) {
		player.RefundEvent()
		return EventResult{Success: false, Message: "Conditions for the event are not met."}
	}

	result := event.Execute(gs, playerID, args)

	if result.Success {
		gs.logger.Log(log.NewMythEventEvent(gs.TurnNumber, playerID, player.Name, event.Name(), result.Message))
	}

	return result
}

// Events returns the full structured event log of the match.
func (gs *GameState) Events() []log.GameEvent {
	return gs.logger.Events()
}

// EventHistory returns the match history as formatted, append-only lines.
func (gs *GameState) EventHistory() []string {
	events := gs.logger.Events()
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, log.FormatEvent(e))
	}
	return lines
}

// Status returns a human-readable summary of the match.
func (gs *GameState) Status() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== TURN %d ===\n", gs.TurnNumber)
	fmt.Fprintf(&sb, "Phase: %s\n", gs.CurrentPhase)
	fmt.Fprintf(&sb, "Current player: %s\n\n", gs.CurrentPlayer().Name)

	for _, p := range gs.Players {
		fmt.Fprintf(&sb, "=== %s ===\n", p.Name)
		fmt.Fprintf(&sb, "Hand: %d  Reserve: %d  Won: %d\n", len(p.Hand), len(p.Reserve), len(p.WonCards))
		fmt.Fprintf(&sb, "Score: %d  Events left: %d\n\n", p.Score, p.EventsAvailable)
	}

	if len(gs.DevouredCards) > 0 {
		fmt.Fprintf(&sb, "Cards devoured by Ammit: %d\n", len(gs.DevouredCards))
	}
	return sb.String()
}

package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/xxholden07/st/internal/game"
	"github.com/xxholden07/st/internal/ranking"
)

// GameSession holds one match played through the MCP tools. The caller
// controls player 0; player 1 is a built-in opponent that always commits
// the first card of its hand.
type GameSession struct {
	state *game.GameState
	rank  *ranking.System

	humanID int
	botID   int

	// Per-turn flags feeding the scoring system.
	humanUsedSyncretism bool
}

// NewGameSession loads the deck, opens the leaderboard and deals a match.
func NewGameSession(deckFile, rankingFile, playerName string, seed int64) (*GameSession, error) {
	var deck []*game.Card
	var err error
	if deckFile != "" {
		deck, err = game.LoadDeckFile(deckFile)
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
	} else {
		deck = game.DefaultDeck()
	}

	// A broken leaderboard file starts an empty board; play continues.
	rank, _ := ranking.NewSystem(ranking.NewStore(rankingFile))

	state := game.NewGameState(deck, game.Config{Seed: seed})
	if err := state.InitializeGame([]string{playerName, "Oracle"}); err != nil {
		return nil, fmt.Errorf("initialize game: %w", err)
	}

	return &GameSession{
		state:   state,
		rank:    rank,
		humanID: 0,
		botID:   1,
	}, nil
}

// CardView is a card as presented in tool responses.
type CardView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Pantheon    string         `json:"pantheon"`
	Attributes  map[string]int `json:"attributes"`
	SuperTrump  bool           `json:"super_trump,omitempty"`
	Protected   bool           `json:"protected,omitempty"`
	Syncretisms []string       `json:"syncretisms,omitempty"`
}

// PlayerView is one player's public state.
type PlayerView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	HandSize int    `json:"hand_size"`
	Reserve  int    `json:"reserve"`
	WonCards int    `json:"won_cards"`
	Score    int    `json:"score"`
	Events   int    `json:"events_left"`
}

// StateView is the game state snapshot embedded in tool responses.
type StateView struct {
	Turn            int          `json:"turn"`
	Phase           string       `json:"phase"`
	CurrentPlayer   string       `json:"current_player"`
	ChosenAttribute string       `json:"chosen_attribute,omitempty"`
	Players         []PlayerView `json:"players"`
	Hand            []CardView   `json:"hand"`
	ReserveCards    []CardView   `json:"reserve_cards,omitempty"`
	Devoured        int          `json:"devoured,omitempty"`
}

// ToolResponse is the JSON envelope returned by all game tools.
type ToolResponse struct {
	Message  string     `json:"message,omitempty"`
	State    *StateView `json:"state,omitempty"`
	History  []string   `json:"history,omitempty"`
	GameOver bool       `json:"game_over,omitempty"`
	Winner   string     `json:"winner,omitempty"`
}

func cardView(c *game.Card) CardView {
	attrs := c.CurrentAttributes()
	var syncs []string
	for _, l := range c.SyncretismLinks {
		syncs = append(syncs, fmt.Sprintf("%s (%s)", l.DeityName, l.Pantheon))
	}
	return CardView{
		ID:       c.ID,
		Name:     c.CurrentName(),
		Pantheon: c.CurrentPantheon.String(),
		Attributes: map[string]int{
			game.AttrCombatPower: attrs.CombatPower,
			game.AttrWisdom:      attrs.Wisdom,
			game.AttrJustice:     attrs.Justice,
			game.AttrEternity:    attrs.Eternity,
		},
		SuperTrump:  c.IsSuperTrump,
		Protected:   c.IsProtected,
		Syncretisms: syncs,
	}
}

// stateView snapshots the match from the human player's side.
func (s *GameSession) stateView() *StateView {
	gs := s.state
	view := &StateView{
		Turn:            gs.TurnNumber,
		Phase:           gs.CurrentPhase.String(),
		CurrentPlayer:   gs.CurrentPlayer().Name,
		ChosenAttribute: gs.ChosenAttribute,
		Devoured:        len(gs.DevouredCards),
	}
	for _, p := range gs.Players {
		view.Players = append(view.Players, PlayerView{
			ID:       p.ID,
			Name:     p.Name,
			HandSize: len(p.Hand),
			Reserve:  len(p.Reserve),
			WonCards: len(p.WonCards),
			Score:    p.Score,
			Events:   p.EventsAvailable,
		})
	}
	human := gs.GetPlayer(s.humanID)
	for _, c := range human.Hand {
		view.Hand = append(view.Hand, cardView(c))
	}
	for _, c := range human.Reserve {
		view.ReserveCards = append(view.ReserveCards, cardView(c))
	}
	return view
}

// botTurnIfNeeded lets the opponent choose an attribute when it holds the
// turn, so the caller can go straight to playing a card. Returns a note for
// the tool response.
func (s *GameSession) botTurnIfNeeded() string {
	gs := s.state
	if gs.CurrentPhase != game.PhaseChooseAttribute || gs.CurrentPlayer().ID != s.botID {
		return "Your turn: choose an attribute."
	}

	bot := gs.GetPlayer(s.botID)
	if len(bot.Hand) == 0 {
		return "The opponent has no cards left."
	}

	// The opponent leads with the strongest attribute of its next card.
	attrs := bot.Hand[0].CurrentAttributes()
	best := game.AttrCombatPower
	for _, name := range game.AttributeNames {
		if attrs.Get(name) > attrs.Get(best) {
			best = name
		}
	}
	gs.ChooseAttribute(best)
	return fmt.Sprintf("The opponent chose %s. Play a card.", best)
}

// recordBattle feeds a resolved battle into the scoring system.
func (s *GameSession) recordBattle(result game.BattleResult) {
	if result.Tie || result.Winner == nil {
		return
	}
	if result.Winner.ID == s.humanID {
		s.rank.RecordBattleWin(result.WinningCard.IsSuperTrump, s.humanUsedSyncretism)
	} else {
		s.rank.RecordBattleLoss()
	}
	s.humanUsedSyncretism = false
}

// finishGame scores the game-over bookkeeping and submits the session.
// The returned error is a leaderboard save failure; the in-memory result
// is still valid.
func (s *GameSession) finishGame() (winnerName string, position int, isRecord bool, err error) {
	winner := s.state.GetWinner()
	if winner == nil {
		return "", -1, false, nil
	}
	if winner.ID == s.humanID {
		human := s.state.GetPlayer(s.humanID)
		for _, p := range game.AllPantheons {
			if dominatesPantheon(human.WonCards, p) {
				s.rank.RecordPantheonDominated(p.String())
			}
		}
		s.rank.RecordGameWon()
	}
	position, isRecord, err = s.rank.SubmitScore(s.state.GetPlayer(s.humanID).Name)
	return winner.Name, position, isRecord, err
}

// dominatesPantheon reports whether the won pile holds all 8 cards of a
// pantheon.
func dominatesPantheon(won []*game.Card, p game.Pantheon) bool {
	count := 0
	for _, c := range won {
		if c.Pantheon == p {
			count++
		}
	}
	return count == 8
}

func respondJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

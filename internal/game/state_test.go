package game

import (
	"testing"

	"github.com/xxholden07/st/internal/log"
)

func TestInitializeGameDeals(t *testing.T) {
	gs := NewGameState(DefaultDeck(), Config{Seed: 7})
	if err := gs.InitializeGame([]string{"Alice", "Bob"}); err != nil {
		t.Fatal(err)
	}

	if gs.CurrentPhase != PhaseChooseAttribute {
		t.Errorf("phase = %v, want Choose Attribute", gs.CurrentPhase)
	}
	if gs.TurnNumber != 1 {
		t.Errorf("turn = %d, want 1", gs.TurnNumber)
	}
	for _, p := range gs.Players {
		if len(p.Hand) != 14 {
			t.Errorf("%s hand = %d cards, want 14", p.Name, len(p.Hand))
		}
		if len(p.Reserve) != ReserveCardsPerPlayer {
			t.Errorf("%s reserve = %d cards, want %d", p.Name, len(p.Reserve), ReserveCardsPerPlayer)
		}
		if p.EventsAvailable != StartingEventBudget {
			t.Errorf("%s events = %d, want %d", p.Name, p.EventsAvailable, StartingEventBudget)
		}
	}
	if len(gs.Deck) != 0 {
		t.Errorf("undealt deck = %d cards, want 0", len(gs.Deck))
	}
}

func TestInitializeGameRejectsSinglePlayer(t *testing.T) {
	gs := NewGameState(DefaultDeck(), Config{Seed: 7})
	if err := gs.InitializeGame([]string{"Alice"}); err == nil {
		t.Fatal("expected an error for a single player")
	}
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	first := NewGameState(DefaultDeck(), Config{Seed: 42})
	second := NewGameState(DefaultDeck(), Config{Seed: 42})
	if err := first.InitializeGame([]string{"Alice", "Bob"}); err != nil {
		t.Fatal(err)
	}
	if err := second.InitializeGame([]string{"Alice", "Bob"}); err != nil {
		t.Fatal(err)
	}

	for i := range first.Players {
		for j := range first.Players[i].Hand {
			if first.Players[i].Hand[j].ID != second.Players[i].Hand[j].ID {
				t.Fatalf("same seed dealt different hands at player %d card %d", i, j)
			}
		}
	}
}

func TestChooseAttributeRejectsUnknown(t *testing.T) {
	gs, _ := newTestGame(t)

	if gs.ChooseAttribute("charisma") {
		t.Fatal("unknown attribute should be rejected")
	}
	if gs.CurrentPhase != PhaseChooseAttribute {
		t.Error("rejected choice must not advance the phase")
	}
	if !gs.ChooseAttribute(AttrWisdom) {
		t.Fatal("valid attribute should be accepted")
	}
	if gs.CurrentPhase != PhaseBattle {
		t.Errorf("phase = %v, want Battle", gs.CurrentPhase)
	}
}

func TestBattleWinnerTakesBoth(t *testing.T) {
	gs, logger := newTestGame(t)
	strong := testCard("1B", PantheonNorse,
		Attributes{CombatPower: 85, Wisdom: 100, Justice: 75, Eternity: 60}, nil)
	weak := testCard("2C", PantheonEgyptian,
		Attributes{CombatPower: 90, Wisdom: 55, Justice: 60, Eternity: 90}, nil)
	gs.Players[0].AddCard(strong)
	gs.Players[1].AddCard(weak)

	gs.ChooseAttribute(AttrWisdom)
	gs.PlayCards(map[int]*Card{0: strong, 1: weak})
	result := gs.ResolveBattle()

	if !result.Success || result.Tie {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Winner.ID != 0 {
		t.Fatalf("winner = player %d, want 0", result.Winner.ID)
	}
	if len(gs.Players[0].Hand) != 0 || len(gs.Players[1].Hand) != 0 {
		t.Error("both staged cards should leave their owners' hands")
	}
	if len(gs.Players[0].WonCards) != 2 {
		t.Errorf("winner trophy pile = %d, want 2", len(gs.Players[0].WonCards))
	}
	// (85+100+75+60)/4 + (90+55+60+90)/4 = 80 + 73
	if gs.Players[0].Score != 153 {
		t.Errorf("winner score = %d, want 153", gs.Players[0].Score)
	}
	if gs.CurrentPhase != PhaseEndTurn {
		t.Errorf("phase = %v, want End Turn", gs.CurrentPhase)
	}
	if len(logger.EventsOfType(log.EventBattleWin)) != 1 {
		t.Error("expected a BattleWin event")
	}
}

func TestBattleTieKeepsCards(t *testing.T) {
	gs, logger := newTestGame(t)
	a := testCard("4A", PantheonEgyptian,
		Attributes{CombatPower: 30, Wisdom: 85, Justice: 100, Eternity: 100}, nil)
	b := testCard("4D", PantheonGrecoRoman,
		Attributes{CombatPower: 35, Wisdom: 88, Justice: 98, Eternity: 100}, nil)
	gs.Players[0].AddCard(a)
	gs.Players[1].AddCard(b)

	gs.ChooseAttribute(AttrEternity)
	gs.PlayCards(map[int]*Card{0: a, 1: b})
	result := gs.ResolveBattle()

	if !result.Success || !result.Tie {
		t.Fatalf("expected a tie, got %+v", result)
	}
	if len(gs.Players[0].Hand) != 1 || len(gs.Players[1].Hand) != 1 {
		t.Error("tied cards should stay in their owners' hands")
	}
	if gs.Players[0].Score != 0 || gs.Players[1].Score != 0 {
		t.Error("a tie should score nothing")
	}
	if len(logger.EventsOfType(log.EventBattleTie)) != 1 {
		t.Error("expected a BattleTie event")
	}
}

func TestResolveBattleNeedsStagingAndAttribute(t *testing.T) {
	gs, _ := newTestGame(t)
	card := testCard("1B", PantheonNorse,
		Attributes{CombatPower: 85, Wisdom: 100, Justice: 75, Eternity: 60}, nil)
	gs.Players[0].AddCard(card)

	if result := gs.ResolveBattle(); result.Success {
		t.Fatal("battle with nothing staged should fail")
	}

	gs.PlayCards(map[int]*Card{0: card})
	gs.ChosenAttribute = AttrWisdom
	if result := gs.ResolveBattle(); result.Success {
		t.Fatal("battle with one staged card should fail")
	}
}

func TestSuperTrumpScoringBonus(t *testing.T) {
	player := NewPlayer(0, "Alice")
	zeus := NewCard("1A", 1, "Zeus", PantheonGrecoRoman,
		Attributes{CombatPower: 95, Wisdom: 85, Justice: 80, Eternity: 100}, nil, true)

	player.WinCard(zeus)
	// (95+85+80+100)/4 = 90, plus the super trump bonus.
	if player.Score != 90+SuperTrumpBonus {
		t.Errorf("score = %d, want %d", player.Score, 90+SuperTrumpBonus)
	}
}

func TestEndTurnAdvances(t *testing.T) {
	gs, _ := newTestGame(t)
	gs.Players[0].AddCard(testCard("1B", PantheonNorse,
		Attributes{CombatPower: 85, Wisdom: 100, Justice: 75, Eternity: 60}, nil))
	gs.Players[1].AddCard(testCard("2C", PantheonEgyptian,
		Attributes{CombatPower: 90, Wisdom: 55, Justice: 60, Eternity: 90}, nil))
	gs.CurrentPlayerIndex = 0
	gs.ChosenAttribute = AttrWisdom
	gs.CurrentPhase = PhaseEndTurn

	gs.EndTurn()

	if gs.CurrentPlayerIndex != 1 {
		t.Errorf("current player = %d, want 1", gs.CurrentPlayerIndex)
	}
	if gs.TurnNumber != 2 {
		t.Errorf("turn = %d, want 2", gs.TurnNumber)
	}
	if gs.ChosenAttribute != "" {
		t.Error("chosen attribute should clear between turns")
	}
	if gs.CurrentPhase != PhaseChooseAttribute {
		t.Errorf("phase = %v, want Choose Attribute", gs.CurrentPhase)
	}
}

func TestEndTurnTicksProtection(t *testing.T) {
	gs, _ := newTestGame(t)
	card := testCard("7A", PantheonEgyptian,
		Attributes{CombatPower: 60, Wisdom: 95, Justice: 85, Eternity: 95}, nil)
	card.ApplyProtection(1)
	gs.Players[0].AddCard(card)
	gs.Players[1].AddCard(testCard("7B", PantheonNorse,
		Attributes{CombatPower: 70, Wisdom: 80, Justice: 75, Eternity: 60}, nil))

	gs.EndTurn()

	if card.IsProtected {
		t.Error("single-turn protection should expire at end of turn")
	}
}

func TestEndTurnDetectsGameOver(t *testing.T) {
	gs, logger := newTestGame(t)
	gs.Players[0].AddCard(testCard("1B", PantheonNorse,
		Attributes{CombatPower: 85, Wisdom: 100, Justice: 75, Eternity: 60}, nil))
	gs.Players[0].Score = 120
	gs.Players[1].Score = 90
	// Bob's hand is empty: the game ends here.

	gs.EndTurn()

	if gs.CurrentPhase != PhaseGameOver {
		t.Fatalf("phase = %v, want Game Over", gs.CurrentPhase)
	}
	winner := gs.GetWinner()
	if winner == nil || winner.ID != 0 {
		t.Errorf("winner = %v, want Alice", winner)
	}
	if len(logger.EventsOfType(log.EventGameOver)) != 1 {
		t.Error("expected a GameOver event")
	}
}

func TestGetWinnerOnlyAtGameOver(t *testing.T) {
	gs, _ := newTestGame(t)
	gs.Players[0].Score = 50
	if gs.GetWinner() != nil {
		t.Error("GetWinner before game over should be nil")
	}
}

func TestGetWinnerTieBreaksByPlayerOrder(t *testing.T) {
	gs, _ := newTestGame(t)
	gs.Players[0].Score = 100
	gs.Players[1].Score = 100
	gs.CurrentPhase = PhaseGameOver

	winner := gs.GetWinner()
	if winner == nil || winner.ID != 0 {
		t.Errorf("equal scores should keep the earlier player, got %v", winner)
	}
}

func TestEventHistoryIsAppendOnlyText(t *testing.T) {
	gs := NewGameState(DefaultDeck(), Config{Seed: 7})
	if err := gs.InitializeGame([]string{"Alice", "Bob"}); err != nil {
		t.Fatal(err)
	}
	gs.ChooseAttribute(AttrWisdom)

	history := gs.EventHistory()
	if len(history) != 2 {
		t.Fatalf("history = %d lines, want 2", len(history))
	}
	for _, line := range history {
		if line == "" {
			t.Error("history lines should be formatted text")
		}
	}
}

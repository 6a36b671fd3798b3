package game

import (
	"testing"

	"github.com/xxholden07/st/internal/log"
)

// newTestGame builds a two-player state directly, bypassing the dealer, so
// each test controls exactly which cards sit where.
func newTestGame(t *testing.T) (*GameState, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	gs := NewGameState(nil, Config{Seed: 1, NoShuffle: true, Logger: logger})
	gs.Players = []*Player{NewPlayer(0, "Alice"), NewPlayer(1, "Bob")}
	gs.CurrentPhase = PhaseChooseAttribute
	gs.TurnNumber = 1
	return gs, logger
}

func TestJudgmentDevoursLowJustice(t *testing.T) {
	gs, logger := newTestGame(t)
	corrupt := testCard("8B", PantheonNorse,
		Attributes{CombatPower: 90, Wisdom: 50, Justice: 30, Eternity: 40}, nil)
	gs.Players[1].AddCard(corrupt)

	result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, NoArgs)

	if !result.Success {
		t.Fatalf("judgment failed: %s", result.Message)
	}
	if !corrupt.IsDestroyed {
		t.Error("card with justice 30 should be destroyed")
	}
	if len(gs.Players[1].Hand) != 0 {
		t.Errorf("devoured card still in hand (%d cards)", len(gs.Players[1].Hand))
	}
	if len(gs.DevouredCards) != 1 || gs.DevouredCards[0] != corrupt {
		t.Error("devoured card should be tracked in DevouredCards")
	}
	if len(logger.EventsOfType(log.EventDevoured)) != 1 {
		t.Error("expected a Devoured event in the log")
	}
}

func TestJudgmentSparesHighJustice(t *testing.T) {
	gs, _ := newTestGame(t)
	righteous := testCard("4A", PantheonEgyptian,
		Attributes{CombatPower: 30, Wisdom: 85, Justice: 100, Eternity: 100}, nil)
	gs.Players[1].AddCard(righteous)

	result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, NoArgs)

	if !result.Success {
		t.Fatalf("judgment failed: %s", result.Message)
	}
	if righteous.IsDestroyed {
		t.Error("card with justice 100 should survive the judgment")
	}
	if len(gs.Players[1].Hand) != 1 {
		t.Error("surviving card should stay in hand")
	}
	if len(gs.DevouredCards) != 0 {
		t.Error("nothing should be devoured")
	}
}

func TestJudgmentExactThresholdSurvives(t *testing.T) {
	gs, _ := newTestGame(t)
	borderline := testCard("8C", PantheonGrecoRoman,
		Attributes{CombatPower: 50, Wisdom: 60, Justice: JusticeThreshold, Eternity: 100}, nil)
	gs.Players[1].AddCard(borderline)

	result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, NoArgs)

	if !result.Success || borderline.IsDestroyed {
		t.Error("justice exactly at the threshold should survive")
	}
}

func TestJudgmentBlockedByProtection(t *testing.T) {
	gs, _ := newTestGame(t)
	shielded := testCard("8B", PantheonNorse,
		Attributes{CombatPower: 90, Wisdom: 50, Justice: 30, Eternity: 40}, nil)
	shielded.ApplyProtection(3)
	gs.Players[1].AddCard(shielded)

	result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, NoArgs)

	if result.Success {
		t.Fatal("judgment against a protected card should fail")
	}
	if shielded.IsDestroyed {
		t.Error("protected card must not be destroyed")
	}
}

func TestJudgmentTargetsExplicitCard(t *testing.T) {
	gs, _ := newTestGame(t)
	safe := testCard("4A", PantheonEgyptian,
		Attributes{CombatPower: 30, Wisdom: 85, Justice: 100, Eternity: 100}, nil)
	doomed := testCard("8B", PantheonNorse,
		Attributes{CombatPower: 90, Wisdom: 50, Justice: 30, Eternity: 40}, nil)
	gs.Players[1].AddCard(safe)
	gs.Players[1].AddCard(doomed)

	args := NoArgs
	args.TargetCardID = "8B"
	result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, args)

	if !result.Success {
		t.Fatalf("judgment failed: %s", result.Message)
	}
	if !doomed.IsDestroyed {
		t.Error("explicitly targeted card should be judged")
	}
	if safe.IsDestroyed {
		t.Error("untargeted card should be untouched")
	}
}

func TestBifrostMovesReserveToHand(t *testing.T) {
	gs, _ := newTestGame(t)
	ally := testCard("6C", PantheonNorse,
		Attributes{CombatPower: 72, Wisdom: 68, Justice: 75, Eternity: 55}, nil)
	gs.Players[0].AddToReserve(ally)

	result := gs.ExecuteEvent(NewEvent(EventBifrost), 0, NoArgs)

	if !result.Success {
		t.Fatalf("bifrost failed: %s", result.Message)
	}
	if len(gs.Players[0].Reserve) != 0 {
		t.Error("reserve should be empty after the crossing")
	}
	if gs.Players[0].GetCard("6C") == nil {
		t.Error("summoned card should be in hand")
	}
}

func TestBifrostWithEmptyReserveFails(t *testing.T) {
	gs, _ := newTestGame(t)
	gs.Players[0].AddCard(testCard("1B", PantheonNorse,
		Attributes{CombatPower: 85, Wisdom: 100, Justice: 75, Eternity: 60}, nil))

	result := gs.ExecuteEvent(NewEvent(EventBifrost), 0, NoArgs)

	if result.Success {
		t.Fatal("bifrost with an empty reserve should fail")
	}
	// The activation check failed, so the budget unit comes back.
	if gs.Players[0].EventsAvailable != StartingEventBudget {
		t.Errorf("events available = %d, want full refund to %d",
			gs.Players[0].EventsAvailable, StartingEventBudget)
	}
}

func TestMysteriesProtectsHand(t *testing.T) {
	gs, _ := newTestGame(t)
	a := testCard("7A", PantheonEgyptian,
		Attributes{CombatPower: 60, Wisdom: 95, Justice: 85, Eternity: 95}, nil)
	b := testCard("7B", PantheonNorse,
		Attributes{CombatPower: 70, Wisdom: 80, Justice: 75, Eternity: 60}, nil)
	gs.Players[0].AddCard(a)
	gs.Players[0].AddCard(b)

	result := gs.ExecuteEvent(NewEvent(EventMysteries), 0, NoArgs)

	if !result.Success {
		t.Fatalf("mysteries failed: %s", result.Message)
	}
	for _, card := range []*Card{a, b} {
		if !card.IsProtected || card.ProtectionTurns != MysteriesProtectionTurns {
			t.Errorf("card %s: protected=%v turns=%d, want protected for %d",
				card.ID, card.IsProtected, card.ProtectionTurns, MysteriesProtectionTurns)
		}
	}
}

func TestMysteriesProtectsSubset(t *testing.T) {
	gs, _ := newTestGame(t)
	chosen := testCard("7A", PantheonEgyptian,
		Attributes{CombatPower: 60, Wisdom: 95, Justice: 85, Eternity: 95}, nil)
	other := testCard("7B", PantheonNorse,
		Attributes{CombatPower: 70, Wisdom: 80, Justice: 75, Eternity: 60}, nil)
	gs.Players[0].AddCard(chosen)
	gs.Players[0].AddCard(other)

	args := NoArgs
	args.CardIDs = []string{"7A"}
	result := gs.ExecuteEvent(NewEvent(EventMysteries), 0, args)

	if !result.Success {
		t.Fatalf("mysteries failed: %s", result.Message)
	}
	if !chosen.IsProtected {
		t.Error("named card should be protected")
	}
	if other.IsProtected {
		t.Error("unnamed card should stay unprotected")
	}
}

func TestMysteriesWhenAllProtectedFails(t *testing.T) {
	gs, _ := newTestGame(t)
	card := testCard("7A", PantheonEgyptian,
		Attributes{CombatPower: 60, Wisdom: 95, Justice: 85, Eternity: 95}, nil)
	card.ApplyProtection(3)
	gs.Players[0].AddCard(card)

	result := gs.ExecuteEvent(NewEvent(EventMysteries), 0, NoArgs)
	if result.Success {
		t.Fatal("mysteries with every card already protected should fail")
	}
}

func TestRagnarokDestroysAndRedeals(t *testing.T) {
	gs, _ := newTestGame(t)
	doomedA := testCard("2A", PantheonNorse,
		Attributes{CombatPower: 100, Wisdom: 50, Justice: 70, Eternity: 55}, nil)
	doomedB := testCard("2B", PantheonGrecoRoman,
		Attributes{CombatPower: 95, Wisdom: 40, Justice: 45, Eternity: 100}, nil)
	shielded := testCard("7A", PantheonEgyptian,
		Attributes{CombatPower: 60, Wisdom: 95, Justice: 85, Eternity: 95}, nil)
	shielded.ApplyProtection(3)

	gs.Players[0].AddCard(doomedA)
	gs.Players[0].AddCard(shielded)
	gs.Players[1].AddCard(doomedB)
	gs.PlayCards(map[int]*Card{0: doomedA, 1: doomedB})

	result := gs.ExecuteEvent(NewEvent(EventRagnarok), 0, NoArgs)

	if !result.Success {
		t.Fatalf("ragnarok failed: %s", result.Message)
	}
	if !doomedA.IsDestroyed || !doomedB.IsDestroyed {
		t.Error("unprotected cards should be destroyed")
	}
	if shielded.IsDestroyed {
		t.Error("protected card should survive ragnarok")
	}
	// Protection does not survive the new age.
	if shielded.IsProtected {
		t.Error("redistribution should reset protection")
	}
	total := gs.Players[0].TotalCards() + gs.Players[1].TotalCards() + len(gs.Deck)
	if total != 1 {
		t.Errorf("exactly the surviving card should remain in circulation, got %d", total)
	}
}

func TestRagnarokNeedsCardsInPlay(t *testing.T) {
	gs, _ := newTestGame(t)
	gs.Players[0].AddCard(testCard("2A", PantheonNorse,
		Attributes{CombatPower: 100, Wisdom: 50, Justice: 70, Eternity: 55}, nil))

	result := gs.ExecuteEvent(NewEvent(EventRagnarok), 0, NoArgs)
	if result.Success {
		t.Fatal("ragnarok with no staged cards should fail")
	}
}

func TestEventBudgetAndRefund(t *testing.T) {
	gs, _ := newTestGame(t)
	for i := 0; i < 4; i++ {
		gs.Players[1].AddCard(testCard("4A", PantheonEgyptian,
			Attributes{CombatPower: 30, Wisdom: 85, Justice: 100, Eternity: 100}, nil))
	}

	// Two successful judgments exhaust the budget.
	for i := 0; i < 2; i++ {
		if result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, NoArgs); !result.Success {
			t.Fatalf("judgment %d failed: %s", i+1, result.Message)
		}
	}
	if gs.Players[0].EventsAvailable != 0 {
		t.Fatalf("events available = %d, want 0", gs.Players[0].EventsAvailable)
	}

	result := gs.ExecuteEvent(NewEvent(EventOsirisJudgment), 0, NoArgs)
	if result.Success {
		t.Fatal("third event should be rejected")
	}
}

func TestEventRegistry(t *testing.T) {
	for _, kind := range EventKinds() {
		event := NewEvent(kind)
		if event.Kind() != kind {
			t.Errorf("NewEvent(%v).Kind() = %v", kind, event.Kind())
		}
		if event.Name() == "" || event.Description() == "" {
			t.Errorf("event %v missing name or description", kind)
		}
	}

	if _, err := ParseEventKind("flood"); err == nil {
		t.Error("unknown event name should not parse")
	}
}

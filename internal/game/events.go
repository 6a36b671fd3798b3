package game

import "fmt"

// JusticeThreshold is the minimum justice value a judged card needs to
// survive the Judgment of Osiris.
const JusticeThreshold = 50

// MysteriesProtectionTurns is how long the Mysteries shield lasts.
const MysteriesProtectionTurns = 3

// --- Ragnarok: destroy everything in play, reshuffle, redeal ---

type RagnarokEvent struct{}

func (RagnarokEvent) Kind() EventKind { return EventRagnarok }
func (RagnarokEvent) Name() string    { return "Ragnarok" }
func (RagnarokEvent) Description() string {
	return "The twilight of the gods. Every card in play is destroyed and new deities repopulate the realms."
}

func (RagnarokEvent) CanActivate(gs *GameState, playerID int) bool {
	return len(gs.CardsInPlay) > 0
}

func (RagnarokEvent) Execute(gs *GameState, playerID int, args EventArgs) EventResult {
	var destroyed []string
	for _, player := range gs.Players {
		for _, card := range player.Hand {
			if card.CanBeDestroyed() {
				card.Destroy()
				destroyed = append(destroyed, card.ID)
			}
		}
	}

	gs.RedistributeCards()

	return EventResult{
		Success:       true,
		Message:       fmt.Sprintf("Ragnarok! %d cards were consumed by fate. New deities rise from the primordial chaos.", len(destroyed)),
		AffectedCards: destroyed,
	}
}

// --- Judgment of Osiris: weigh a card's heart against the Feather ---

type OsirisJudgmentEvent struct{}

func (OsirisJudgmentEvent) Kind() EventKind { return EventOsirisJudgment }
func (OsirisJudgmentEvent) Name() string    { return "Judgment of Osiris" }
func (OsirisJudgmentEvent) Description() string {
	return "The heart is weighed against the Feather of Truth. Those without justice suffer the Second Death in Ammit's jaws."
}

func (OsirisJudgmentEvent) CanActivate(gs *GameState, playerID int) bool {
	for _, player := range gs.Players {
		if player.ID != playerID && len(player.Hand) > 0 {
			return true
		}
	}
	return false
}

func (OsirisJudgmentEvent) Execute(gs *GameState, playerID int, args EventArgs) EventResult {
	// Find the target player: explicit ID, else the first opponent.
	var target *Player
	for _, player := range gs.Players {
		if args.TargetPlayerID >= 0 && player.ID == args.TargetPlayerID {
			target = player
			break
		}
		if args.TargetPlayerID < 0 && player.ID != playerID {
			target = player
			break
		}
	}

	if target == nil || len(target.Hand) == 0 {
		return EventResult{Success: false, Message: "There are no cards to judge."}
	}

	var card *Card
	if args.TargetCardID != "" {
		card = target.GetCard(args.TargetCardID)
	}
	if card == nil {
		card = target.Hand[gs.rng.Intn(len(target.Hand))]
	}

	if card.IsProtected {
		return EventResult{
			Success: false,
			Message: fmt.Sprintf("%s is protected by the Sacred Mysteries.", card.CurrentName()),
		}
	}

	justice := card.CurrentAttributes().Justice
	if justice < JusticeThreshold {
		card.Destroy()
		target.RemoveCard(card)
		gs.AddToDevoured(card)
		return EventResult{
			Success:       true,
			Message:       fmt.Sprintf("The heart of %s outweighed the Feather. Ammit devoured the card! (Justice: %d)", card.CurrentName(), justice),
			AffectedCards: []string{card.ID},
		}
	}

	return EventResult{
		Success: true,
		Message: fmt.Sprintf("%s passed the Judgment! Its heart was pure. (Justice: %d)", card.CurrentName(), justice),
	}
}

// --- Bifrost: summon an ally from the reserve ---

type BifrostEvent struct{}

func (BifrostEvent) Kind() EventKind { return EventBifrost }
func (BifrostEvent) Name() string    { return "Bifrost" }
func (BifrostEvent) Description() string {
	return "The rainbow bridge joins Midgard to Asgard. Summon an ally from the mortal realm."
}

func (BifrostEvent) CanActivate(gs *GameState, playerID int) bool {
	player := gs.GetPlayer(playerID)
	return player != nil && len(player.Reserve) > 0
}

func (BifrostEvent) Execute(gs *GameState, playerID int, args EventArgs) EventResult {
	player := gs.GetPlayer(playerID)
	if player == nil || len(player.Reserve) == 0 {
		return EventResult{Success: false, Message: "There are no allies in Midgard to summon."}
	}

	var card *Card
	if args.TargetCardID != "" {
		card = player.GetCardFromReserve(args.TargetCardID)
	}
	if card == nil {
		card = player.Reserve[0]
	}

	player.RemoveFromReserve(card)
	player.AddCard(card)

	return EventResult{
		Success:       true,
		Message:       fmt.Sprintf("The Bifrost shines! %s crosses the bridge from Midgard to Asgard!", card.CurrentName()),
		AffectedCards: []string{card.ID},
	}
}

// --- Mysteries of Isis/Orpheus: timed protection from destruction ---

type MysteriesEvent struct{}

func (MysteriesEvent) Kind() EventKind { return EventMysteries }
func (MysteriesEvent) Name() string    { return "Mysteries of Isis/Orpheus" }
func (MysteriesEvent) Description() string {
	return "The sacred mysteries grant purification and protection. Your cards become immune to destruction."
}

func (MysteriesEvent) CanActivate(gs *GameState, playerID int) bool {
	player := gs.GetPlayer(playerID)
	if player == nil {
		return false
	}
	for _, card := range player.Hand {
		if !card.IsProtected {
			return true
		}
	}
	return false
}

func (MysteriesEvent) Execute(gs *GameState, playerID int, args EventArgs) EventResult {
	player := gs.GetPlayer(playerID)
	if player == nil {
		return EventResult{Success: false, Message: "Player not found."}
	}

	var protected []string
	for _, card := range player.Hand {
		if args.CardIDs != nil && !containsID(args.CardIDs, card.ID) {
			continue
		}
		if !card.IsProtected {
			card.ApplyProtection(MysteriesProtectionTurns)
			protected = append(protected, card.ID)
		}
	}

	if len(protected) == 0 {
		return EventResult{Success: false, Message: "No card was purified."}
	}

	return EventResult{
		Success:       true,
		Message:       fmt.Sprintf("The Sacred Mysteries shroud your deities! %d card(s) protected for %d turns.", len(protected), MysteriesProtectionTurns),
		AffectedCards: protected,
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

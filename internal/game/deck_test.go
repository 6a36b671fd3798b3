package game

import "testing"

func TestDefaultDeckShape(t *testing.T) {
	deck := DefaultDeck()

	if len(deck) != 32 {
		t.Fatalf("deck = %d cards, want 32", len(deck))
	}
	if err := ValidateDeck(deck); err != nil {
		t.Fatalf("embedded deck failed validation: %v", err)
	}

	perPantheon := make(map[Pantheon]int)
	var trump *Card
	for _, card := range deck {
		perPantheon[card.Pantheon]++
		if card.IsSuperTrump {
			trump = card
		}
	}
	for _, p := range AllPantheons {
		if perPantheon[p] != 8 {
			t.Errorf("pantheon %s has %d cards, want 8", p, perPantheon[p])
		}
	}
	if trump == nil || trump.ID != "1A" || trump.Name != "Zeus" {
		t.Errorf("super trump = %v, want Zeus (1A)", trump)
	}
}

func TestDefaultDeckLoreAndLinks(t *testing.T) {
	deck := DefaultDeck()
	byID := make(map[string]*Card, len(deck))
	for _, c := range deck {
		byID[c.ID] = c
	}

	zeus := byID["1A"]
	if len(zeus.SyncretismLinks) != 3 {
		t.Fatalf("Zeus has %d syncretism links, want 3", len(zeus.SyncretismLinks))
	}
	var amunRa *SyncretismLink
	for i := range zeus.SyncretismLinks {
		if zeus.SyncretismLinks[i].DeityName == "Amun-Ra" {
			amunRa = &zeus.SyncretismLinks[i]
		}
	}
	if amunRa == nil {
		t.Fatal("Zeus should carry an Amun-Ra identity")
	}
	if amunRa.Pantheon != PantheonEgyptian || amunRa.AttributeBonus[AttrWisdom] != 15 {
		t.Errorf("Amun-Ra link = %+v, want Egyptian with +15 wisdom", amunRa)
	}

	for _, card := range deck {
		if card.Lore.Title == "" || card.Lore.Domain == "" {
			t.Errorf("card %s is missing lore", card.ID)
		}
	}
}

func TestDefaultPantheonBonuses(t *testing.T) {
	bonuses := DefaultPantheonBonuses()

	if len(bonuses) != 4 {
		t.Fatalf("got %d pantheon bonuses, want 4", len(bonuses))
	}
	for key, b := range bonuses {
		if _, err := ParsePantheon(key); err != nil {
			t.Errorf("bonus key %q is not a pantheon: %v", key, err)
		}
		if b.Description == "" || len(b.Bonus) == 0 {
			t.Errorf("pantheon %q bonus is incomplete: %+v", key, b)
		}
	}

	norse := bonuses["norse"]
	if norse.Bonus[AttrCombatPower] != 10 || norse.Bonus[AttrWisdom] != -5 {
		t.Errorf("norse bonus = %v, want +10 combat_power, -5 wisdom", norse.Bonus)
	}
}

func TestParseDeckRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not yaml", `cards: [`},
		{"too few cards", `
cards:
  - id: 1A
    group: 1
    name: Zeus
    pantheon: greco_roman
    attributes: {combat_power: 95, wisdom: 85, justice: 80, eternity: 100}
    super_trump: true
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDeck([]byte(tc.yaml)); err == nil {
				t.Error("expected a parse or validation error")
			}
		})
	}
}

func TestValidateDeckCatchesDuplicates(t *testing.T) {
	deck := DefaultDeck()
	deck[1].ID = deck[0].ID
	if err := ValidateDeck(deck); err == nil {
		t.Error("duplicate IDs should fail validation")
	}
}

func TestValidateDeckRequiresAllPantheons(t *testing.T) {
	deck := DefaultDeck()
	// Fold every Mesopotamian card into the Egyptian pantheon. The deck is
	// still 32 cards in 8 groups of 4 with one super trump.
	for _, c := range deck {
		if c.Pantheon == PantheonMesopotamian {
			c.Pantheon = PantheonEgyptian
		}
	}
	if err := ValidateDeck(deck); err == nil {
		t.Error("a deck missing a pantheon should fail validation")
	}
}

func TestValidateDeckRequiresOneSuperTrump(t *testing.T) {
	deck := DefaultDeck()
	for _, c := range deck {
		c.IsSuperTrump = false
	}
	if err := ValidateDeck(deck); err == nil {
		t.Error("a deck without a super trump should fail validation")
	}

	deck[0].IsSuperTrump = true
	deck[1].IsSuperTrump = true
	if err := ValidateDeck(deck); err == nil {
		t.Error("two super trumps should fail validation")
	}
}

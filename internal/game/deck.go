package game

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed deck.yaml
var defaultDeckYAML []byte

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Cards           []CardEntry              `yaml:"cards"`
	PantheonBonuses map[string]PantheonBonus `yaml:"pantheon_bonuses"`
	Groups          map[int]string           `yaml:"groups"`
}

// CardEntry represents a single card definition in the YAML file.
type CardEntry struct {
	ID           string      `yaml:"id"`
	Group        int         `yaml:"group"`
	Name         string      `yaml:"name"`
	Pantheon     Pantheon    `yaml:"pantheon"`
	Attributes   AttrEntry   `yaml:"attributes"`
	Syncretisms  []LinkEntry `yaml:"syncretisms,omitempty"`
	IsSuperTrump bool        `yaml:"super_trump,omitempty"`
	Lore         LoreEntry   `yaml:"lore,omitempty"`
}

// AttrEntry holds the four attribute values of a card definition.
type AttrEntry struct {
	CombatPower int `yaml:"combat_power"`
	Wisdom      int `yaml:"wisdom"`
	Justice     int `yaml:"justice"`
	Eternity    int `yaml:"eternity"`
}

// LinkEntry represents one syncretism identity in the YAML file.
type LinkEntry struct {
	Name     string         `yaml:"name"`
	Pantheon Pantheon       `yaml:"pantheon"`
	Bonus    map[string]int `yaml:"bonus,omitempty"`
}

// LoreEntry holds the educational blurb of a card definition.
type LoreEntry struct {
	Title  string `yaml:"title"`
	Domain string `yaml:"domain"`
}

// PantheonBonus describes the flavor bonus a pantheon grants.
type PantheonBonus struct {
	Description string         `yaml:"description"`
	Bonus       map[string]int `yaml:"bonus"`
}

// ParseDeckFile parses raw YAML deck data into its file structure, keeping
// the static sections (pantheon bonuses, group names) alongside the cards.
func ParseDeckFile(data []byte) (*DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	return &df, nil
}

// ParseDeck parses YAML deck data into playable cards.
func ParseDeck(data []byte) ([]*Card, error) {
	df, err := ParseDeckFile(data)
	if err != nil {
		return nil, err
	}

	cards := make([]*Card, 0, len(df.Cards))
	for _, entry := range df.Cards {
		links := make([]SyncretismLink, 0, len(entry.Syncretisms))
		for _, l := range entry.Syncretisms {
			links = append(links, SyncretismLink{
				DeityName:      l.Name,
				Pantheon:       l.Pantheon,
				AttributeBonus: l.Bonus,
			})
		}
		card := NewCard(entry.ID, entry.Group, entry.Name, entry.Pantheon, Attributes{
			CombatPower: entry.Attributes.CombatPower,
			Wisdom:      entry.Attributes.Wisdom,
			Justice:     entry.Attributes.Justice,
			Eternity:    entry.Attributes.Eternity,
		}, links, entry.IsSuperTrump)
		card.Lore = Lore{Title: entry.Lore.Title, Domain: entry.Lore.Domain}
		cards = append(cards, card)
	}

	if err := ValidateDeck(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// LoadDeckFile loads and parses a YAML deck file from disk.
func LoadDeckFile(path string) ([]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDeck(data)
}

// DefaultDeck returns the embedded 32-card deck. The data ships with the
// binary, so a parse failure here is a build defect.
func DefaultDeck() []*Card {
	cards, err := ParseDeck(defaultDeckYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded deck is invalid: %v", err))
	}
	return cards
}

// DefaultPantheonBonuses returns the static per-pantheon flavor bonuses
// shipped with the embedded deck, keyed by pantheon config key.
func DefaultPantheonBonuses() map[string]PantheonBonus {
	df, err := ParseDeckFile(defaultDeckYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded deck is invalid: %v", err))
	}
	return df.PantheonBonuses
}

// ValidateDeck enforces the structural rules of the card population:
// 32 cards with unique IDs, 8 groups of 4, exactly one super trump, all
// four pantheons represented and every attribute inside
// [0, MaxAttributeValue].
func ValidateDeck(cards []*Card) error {
	if len(cards) != 32 {
		return fmt.Errorf("deck must have 32 cards, got %d", len(cards))
	}

	seen := make(map[string]bool, len(cards))
	groups := make(map[int]int)
	pantheons := make(map[Pantheon]int)
	superTrumps := 0

	for _, card := range cards {
		if seen[card.ID] {
			return fmt.Errorf("duplicate card ID %q", card.ID)
		}
		seen[card.ID] = true
		groups[card.Group]++
		pantheons[card.Pantheon]++
		if card.IsSuperTrump {
			superTrumps++
		}
		for _, name := range AttributeNames {
			v := card.BaseAttributes.Get(name)
			if v < 0 || v > MaxAttributeValue {
				return fmt.Errorf("card %s: attribute %s out of range: %d", card.ID, name, v)
			}
		}
	}

	if len(groups) != 8 {
		return fmt.Errorf("deck must span 8 groups, got %d", len(groups))
	}
	for g, n := range groups {
		if n != 4 {
			return fmt.Errorf("group %d must have 4 cards, got %d", g, n)
		}
	}
	if superTrumps != 1 {
		return fmt.Errorf("deck must have exactly one super trump, got %d", superTrumps)
	}
	for _, p := range AllPantheons {
		if pantheons[p] == 0 {
			return fmt.Errorf("deck has no %s cards", p)
		}
	}
	return nil
}

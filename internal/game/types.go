package game

import "fmt"

// --- Enums ---

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseChooseAttribute
	PhaseBattle
	PhaseEndTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseChooseAttribute:
		return "Choose Attribute"
	case PhaseBattle:
		return "Battle"
	case PhaseEndTurn:
		return "End Turn"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Pantheon identifies one of the four mythologies in the deck.
type Pantheon int

const (
	PantheonNone Pantheon = iota
	PantheonEgyptian
	PantheonNorse
	PantheonGrecoRoman
	PantheonMesopotamian
)

func (p Pantheon) String() string {
	switch p {
	case PantheonEgyptian:
		return "Egyptian"
	case PantheonNorse:
		return "Norse"
	case PantheonGrecoRoman:
		return "Greco-Roman"
	case PantheonMesopotamian:
		return "Mesopotamian"
	default:
		return "None"
	}
}

// ParsePantheon converts a config-file key to a Pantheon.
func ParsePantheon(s string) (Pantheon, error) {
	switch s {
	case "egyptian":
		return PantheonEgyptian, nil
	case "norse":
		return PantheonNorse, nil
	case "greco_roman":
		return PantheonGrecoRoman, nil
	case "mesopotamian":
		return PantheonMesopotamian, nil
	default:
		return PantheonNone, fmt.Errorf("unknown pantheon %q", s)
	}
}

// UnmarshalYAML lets deck files name pantheons by key.
func (p *Pantheon) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParsePantheon(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// AllPantheons lists every pantheon in deck order.
var AllPantheons = []Pantheon{
	PantheonEgyptian,
	PantheonNorse,
	PantheonGrecoRoman,
	PantheonMesopotamian,
}

// CompareResult is the outcome of comparing two cards on an attribute.
type CompareResult int

const (
	CompareLoss CompareResult = -1
	CompareTie  CompareResult = 0
	CompareWin  CompareResult = 1
)

func (r CompareResult) String() string {
	switch r {
	case CompareWin:
		return "WIN"
	case CompareLoss:
		return "LOSS"
	default:
		return "TIE"
	}
}

// --- Attribute names ---

const (
	AttrCombatPower = "combat_power"
	AttrWisdom      = "wisdom"
	AttrJustice     = "justice"
	AttrEternity    = "eternity"
)

// AttributeNames lists the four comparable attributes in display order.
var AttributeNames = []string{AttrCombatPower, AttrWisdom, AttrJustice, AttrEternity}

// IsValidAttribute reports whether name is one of the four known attributes.
func IsValidAttribute(name string) bool {
	for _, n := range AttributeNames {
		if n == name {
			return true
		}
	}
	return false
}

package game

import "fmt"

// MaxAttributeValue is the ceiling every attribute is clamped to.
const MaxAttributeValue = 100

// Attributes is an immutable set of the four comparable values on a card.
type Attributes struct {
	CombatPower int
	Wisdom      int
	Justice     int
	Eternity    int
}

// Get returns the named attribute value, or 0 for an unrecognized name.
// The silent default is deliberate: attribute names come from player input
// and an unknown name simply loses every comparison.
func (a Attributes) Get(name string) int {
	switch name {
	case AttrCombatPower:
		return a.CombatPower
	case AttrWisdom:
		return a.Wisdom
	case AttrJustice:
		return a.Justice
	case AttrEternity:
		return a.Eternity
	default:
		return 0
	}
}

// ApplyBonus returns a new Attributes with each delta added and clamped to
// MaxAttributeValue. Unspecified fields are unchanged. There is no lower
// clamp: negative deltas pass through as-is.
func (a Attributes) ApplyBonus(bonus map[string]int) Attributes {
	return Attributes{
		CombatPower: capAttr(a.CombatPower + bonus[AttrCombatPower]),
		Wisdom:      capAttr(a.Wisdom + bonus[AttrWisdom]),
		Justice:     capAttr(a.Justice + bonus[AttrJustice]),
		Eternity:    capAttr(a.Eternity + bonus[AttrEternity]),
	}
}

func capAttr(v int) int {
	if v > MaxAttributeValue {
		return MaxAttributeValue
	}
	return v
}

// SyncretismLink describes one alternate identity a card may assume in
// another pantheon, with the attribute deltas that identity carries.
type SyncretismLink struct {
	DeityName      string
	Pantheon       Pantheon
	AttributeBonus map[string]int
}

// Lore holds the educational blurb attached to a deity card.
type Lore struct {
	Title  string
	Domain string
}

// Card is one deity card: static identity plus mutable battle state.
// Cards are created once by the deck loader and live for the whole match;
// destruction is a flag, not removal.
type Card struct {
	// Identity (static after construction)
	ID              string // "1A".."8D"
	Group           int    // 1-8
	Name            string
	Pantheon        Pantheon
	BaseAttributes  Attributes
	SyncretismLinks []SyncretismLink
	IsSuperTrump    bool
	Lore            Lore

	// Battle state
	CurrentPantheon Pantheon
	IsDestroyed     bool
	IsProtected     bool
	ProtectionTurns int
}

// NewCard constructs a card with its battle state at rest.
func NewCard(id string, group int, name string, pantheon Pantheon, base Attributes, links []SyncretismLink, superTrump bool) *Card {
	return &Card{
		ID:              id,
		Group:           group,
		Name:            name,
		Pantheon:        pantheon,
		BaseAttributes:  base,
		SyncretismLinks: links,
		IsSuperTrump:    superTrump,
		CurrentPantheon: pantheon,
	}
}

// activeLink returns the syncretism link matching the current pantheon,
// or nil when the card is in its canonical identity.
func (c *Card) activeLink() *SyncretismLink {
	if c.CurrentPantheon == c.Pantheon {
		return nil
	}
	for i := range c.SyncretismLinks {
		if c.SyncretismLinks[i].Pantheon == c.CurrentPantheon {
			return &c.SyncretismLinks[i]
		}
	}
	return nil
}

// CurrentAttributes returns the base attributes, with the active syncretism
// link's bonus applied when the card presents as another pantheon.
func (c *Card) CurrentAttributes() Attributes {
	link := c.activeLink()
	if link == nil {
		return c.BaseAttributes
	}
	return c.BaseAttributes.ApplyBonus(link.AttributeBonus)
}

// CurrentName returns the deity name for the current pantheon.
func (c *Card) CurrentName() string {
	link := c.activeLink()
	if link == nil {
		return c.Name
	}
	return link.DeityName
}

// ActivateSyncretism re-maps the card to the given pantheon. It succeeds
// when the target is the canonical pantheon or matches one of the card's
// links; otherwise the card is unchanged and false is returned.
func (c *Card) ActivateSyncretism(target Pantheon) bool {
	if target == c.Pantheon {
		c.CurrentPantheon = c.Pantheon
		return true
	}
	for _, link := range c.SyncretismLinks {
		if link.Pantheon == target {
			c.CurrentPantheon = target
			return true
		}
	}
	return false
}

// ResetSyncretism returns the card to its canonical pantheon.
func (c *Card) ResetSyncretism() {
	c.CurrentPantheon = c.Pantheon
}

// ApplyProtection makes the card immune to destruction for the given number
// of turns. Reapplying overwrites the counter; protection does not stack.
func (c *Card) ApplyProtection(turns int) {
	c.IsProtected = true
	c.ProtectionTurns = turns
}

// DecreaseProtection counts one turn off the protection timer, clearing the
// protected flag when it reaches zero. Safe to call on unprotected cards.
func (c *Card) DecreaseProtection() {
	if c.ProtectionTurns > 0 {
		c.ProtectionTurns--
		if c.ProtectionTurns == 0 {
			c.IsProtected = false
		}
	}
}

// CanBeDestroyed reports whether the card is neither protected nor already
// destroyed.
func (c *Card) CanBeDestroyed() bool {
	return !c.IsProtected && !c.IsDestroyed
}

// Destroy marks the card destroyed and returns true, or returns false with
// no state change when the card is protected or already destroyed.
func (c *Card) Destroy() bool {
	if !c.CanBeDestroyed() {
		return false
	}
	c.IsDestroyed = true
	return true
}

// Compare compares this card against other on the named attribute. A super
// trump beats any non-trump regardless of values; two super trumps fall
// through to the numeric comparison.
func (c *Card) Compare(other *Card, attribute string) CompareResult {
	if c.IsSuperTrump && !other.IsSuperTrump {
		return CompareWin
	}
	if !c.IsSuperTrump && other.IsSuperTrump {
		return CompareLoss
	}

	mine := c.CurrentAttributes().Get(attribute)
	theirs := other.CurrentAttributes().Get(attribute)

	switch {
	case mine > theirs:
		return CompareWin
	case mine < theirs:
		return CompareLoss
	default:
		return CompareTie
	}
}

func (c *Card) String() string {
	return fmt.Sprintf("[%s] %s (%s)", c.ID, c.CurrentName(), c.CurrentPantheon)
}

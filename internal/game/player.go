package game

// StartingEventBudget is how many mythological events each player may use
// per match.
const StartingEventBudget = 2

// SuperTrumpBonus is the extra score a won super trump card is worth.
const SuperTrumpBonus = 50

// Player owns three card collections and a running score.
type Player struct {
	ID              int
	Name            string
	Hand            []*Card
	Reserve         []*Card
	WonCards        []*Card
	Score           int
	EventsAvailable int
}

// NewPlayer creates a player with the standard event budget and no cards.
func NewPlayer(id int, name string) *Player {
	return &Player{
		ID:              id,
		Name:            name,
		EventsAvailable: StartingEventBudget,
	}
}

// AddCard puts a card into the player's hand.
func (p *Player) AddCard(card *Card) {
	p.Hand = append(p.Hand, card)
}

// AddToReserve puts a card into the player's reserve.
func (p *Player) AddToReserve(card *Card) {
	p.Reserve = append(p.Reserve, card)
}

// RemoveCard removes a card from the hand by identity. Returns false when
// the card is not in the hand.
func (p *Player) RemoveCard(card *Card) bool {
	for i, c := range p.Hand {
		if c.ID == card.ID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveFromReserve removes a card from the reserve by identity. Returns
// false when the card is not in the reserve.
func (p *Player) RemoveFromReserve(card *Card) bool {
	for i, c := range p.Reserve {
		if c.ID == card.ID {
			p.Reserve = append(p.Reserve[:i], p.Reserve[i+1:]...)
			return true
		}
	}
	return false
}

// GetCard returns the hand card with the given ID, or nil.
func (p *Player) GetCard(cardID string) *Card {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

// GetCardFromReserve returns the reserve card with the given ID, or nil.
func (p *Player) GetCardFromReserve(cardID string) *Card {
	for _, c := range p.Reserve {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

// WinCard appends a card to the trophy pile and scores it: the average of
// its four current attributes, plus a flat bonus for the super trump.
func (p *Player) WinCard(card *Card) {
	p.WonCards = append(p.WonCards, card)
	p.Score += cardValue(card)
}

func cardValue(card *Card) int {
	attrs := card.CurrentAttributes()
	value := (attrs.CombatPower + attrs.Wisdom + attrs.Justice + attrs.Eternity) / 4
	if card.IsSuperTrump {
		value += SuperTrumpBonus
	}
	return value
}

// HasCards reports whether the player still holds cards in hand.
func (p *Player) HasCards() bool {
	return len(p.Hand) > 0
}

// TotalCards returns hand plus reserve count.
func (p *Player) TotalCards() int {
	return len(p.Hand) + len(p.Reserve)
}

// DecreaseProtectionCounters ticks the protection timer on every card the
// player holds. Called once per end-of-turn.
func (p *Player) DecreaseProtectionCounters() {
	for _, c := range p.Hand {
		c.DecreaseProtection()
	}
	for _, c := range p.Reserve {
		c.DecreaseProtection()
	}
}

// UseEvent consumes one unit of the event budget, reporting whether a unit
// was available. The budget never goes negative.
func (p *Player) UseEvent() bool {
	if p.EventsAvailable > 0 {
		p.EventsAvailable--
		return true
	}
	return false
}

// RefundEvent returns one unit to the event budget. Used when an event's
// activation check fails after the unit was consumed.
func (p *Player) RefundEvent() {
	p.EventsAvailable++
}

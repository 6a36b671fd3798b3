package ranking

import (
	"strings"
	"time"
)

// MaxEntries caps the leaderboard at a top ten.
const MaxEntries = 10

// Point values per scored action.
const (
	ActionVictory           = "victory"
	ActionSuperTrumpWin     = "super_trump_win"
	ActionSyncretismWin     = "syncretism_win"
	ActionEventUsed         = "event_used"
	ActionPerfectGame       = "perfect_game"
	ActionPantheonDominated = "pantheon_dominated"
	ActionGameWon           = "game_won"
	ActionCardsCollected    = "cards_collected"
)

var points = map[string]int{
	ActionVictory:           100,
	ActionSuperTrumpWin:     200,
	ActionSyncretismWin:     150,
	ActionEventUsed:         50,
	ActionPerfectGame:       500,
	ActionPantheonDominated: 300,
	ActionGameWon:           1000,
	ActionCardsCollected:    10,
}

// Title is a rank earned at a score floor.
type Title struct {
	MinScore int
	Name     string
	Color    string
}

// Titles in descending score order; the first floor at or below the score
// wins.
var Titles = []Title{
	{10000, "SUPREME GOD", "#ffd700"},
	{7500, "GREATER DEITY", "#ff8800"},
	{5000, "LORD OF PANTHEONS", "#ff4444"},
	{3500, "CELESTIAL CHAMPION", "#aa44ff"},
	{2500, "DIVINE WARRIOR", "#4488ff"},
	{1500, "SACRED AVATAR", "#44ff88"},
	{1000, "MYTHIC INITIATE", "#88ffff"},
	{500, "APPRENTICE OF THE GODS", "#ffffff"},
	{0, "MORTAL", "#888888"},
}

// SessionStats accumulates the counters of one play session.
type SessionStats struct {
	Wins               int
	Losses             int
	Battles            int
	EventsUsed         int
	Syncretisms        int
	SuperTrumpWins     int
	CardsWon           int
	PantheonsDominated map[string]bool
}

// Summary is a read-only snapshot of the session for presentation.
type Summary struct {
	Score              int
	Wins               int
	Losses             int
	Battles            int
	WinRate            float64
	EventsUsed         int
	Syncretisms        int
	PantheonsDominated int
	PantheonBonus      int
	Title              string
	TitleColor         string
	IsHighScore        bool
}

// System tracks the running session score and owns the leaderboard.
type System struct {
	store   *Store
	entries []Entry

	sessionScore int
	stats        SessionStats

	now func() time.Time
}

// NewSystem creates a scoring system over the given store. A load failure
// starts an empty leaderboard and is reported but not fatal.
func NewSystem(store *Store) (*System, error) {
	entries, err := store.Load()
	sys := &System{
		store:   store,
		entries: entries,
		now:     time.Now,
	}
	sys.ResetSession()
	return sys, err
}

// ResetSession zeroes the running score and counters.
func (s *System) ResetSession() {
	s.sessionScore = 0
	s.stats = SessionStats{PantheonsDominated: make(map[string]bool)}
}

// SessionScore returns the running score without the pantheon bonus.
func (s *System) SessionScore() int {
	return s.sessionScore
}

// Stats returns the current session counters.
func (s *System) Stats() SessionStats {
	return s.stats
}

// AddPoints credits the point value of an action times the multiplier.
// Unknown actions score zero. Returns the points credited.
func (s *System) AddPoints(action string, multiplier int) int {
	p := points[action] * multiplier
	s.sessionScore += p
	return p
}

// RecordBattleWin credits a battle victory, with extra credit when the
// winning card was the super trump or fought under a syncretized identity.
// Returns the points credited.
func (s *System) RecordBattleWin(usedSuperTrump, usedSyncretism bool) int {
	s.stats.Wins++
	s.stats.Battles++
	s.stats.CardsWon++

	total := s.AddPoints(ActionVictory, 1)
	if usedSuperTrump {
		s.stats.SuperTrumpWins++
		total += s.AddPoints(ActionSuperTrumpWin, 1)
	}
	if usedSyncretism {
		s.stats.Syncretisms++
		total += s.AddPoints(ActionSyncretismWin, 1)
	}
	s.AddPoints(ActionCardsCollected, 1)
	return total
}

// RecordBattleLoss counts a lost battle. Losses score nothing but feed the
// perfect-game check.
func (s *System) RecordBattleLoss() {
	s.stats.Losses++
	s.stats.Battles++
}

// RecordEventUsed credits the activation of a mythological event.
func (s *System) RecordEventUsed() int {
	s.stats.EventsUsed++
	return s.AddPoints(ActionEventUsed, 1)
}

// RecordPantheonDominated credits collecting every card of a pantheon.
// Each pantheon scores once per session.
func (s *System) RecordPantheonDominated(pantheon string) int {
	if s.stats.PantheonsDominated[pantheon] {
		return 0
	}
	s.stats.PantheonsDominated[pantheon] = true
	return s.AddPoints(ActionPantheonDominated, 1)
}

// RecordGameWon credits winning the match, plus the perfect-game bonus when
// the session had no battle losses.
func (s *System) RecordGameWon() int {
	total := s.AddPoints(ActionGameWon, 1)
	if s.stats.Losses == 0 {
		total += s.AddPoints(ActionPerfectGame, 1)
	}
	return total
}

// GetTitle returns the earned title and its display color for a score.
func GetTitle(score int) (string, string) {
	for _, t := range Titles {
		if score >= t.MinScore {
			return t.Name, t.Color
		}
	}
	return "MORTAL", "#888888"
}

// PantheonBonus is the extra score from dominated pantheons.
func (s *System) PantheonBonus() int {
	return len(s.stats.PantheonsDominated) * points[ActionPantheonDominated]
}

// IsHighScore reports whether the running score would enter the
// leaderboard.
func (s *System) IsHighScore() bool {
	if len(s.entries) < MaxEntries {
		return true
	}
	return s.sessionScore > s.entries[len(s.entries)-1].TotalScore()
}

// Ranking returns the current leaderboard, best first.
func (s *System) Ranking() []Entry {
	return s.entries
}

// SubmitScore files the session under the given player name and persists
// the leaderboard. Names are clipped to ten characters and uppercased,
// arcade style. An equal total score never displaces an existing entry.
// Returns the one-based position (or -1 if the score fell off the board),
// whether it took first place, and any persistence error; a failed save
// leaves the in-memory board valid, so callers treat the error as a
// warning rather than a lost submission.
func (s *System) SubmitScore(playerName string) (int, bool, error) {
	runes := []rune(playerName)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	name := strings.ToUpper(string(runes))

	entry := Entry{
		Name:          name,
		Score:         s.sessionScore,
		Wins:          s.stats.Wins,
		Battles:       s.stats.Battles,
		PantheonBonus: s.PantheonBonus(),
		Date:          s.now().Format("02/01/2006"),
	}

	inserted := false
	for i, existing := range s.entries {
		if entry.TotalScore() > existing.TotalScore() {
			s.entries = append(s.entries[:i], append([]Entry{entry}, s.entries[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		s.entries = append(s.entries, entry)
	}
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}

	position := -1
	isRecord := false
	for i, e := range s.entries {
		if e.Name == entry.Name && e.Score == entry.Score && e.Date == entry.Date {
			position = i + 1
			isRecord = position == 1
			break
		}
	}

	return position, isRecord, s.store.Save(s.entries)
}

// SessionSummary builds the end-of-session snapshot.
func (s *System) SessionSummary() Summary {
	title, color := GetTitle(s.sessionScore)
	battles := s.stats.Battles
	if battles == 0 {
		battles = 1
	}
	return Summary{
		Score:              s.sessionScore,
		Wins:               s.stats.Wins,
		Losses:             s.stats.Losses,
		Battles:            s.stats.Battles,
		WinRate:            float64(s.stats.Wins) / float64(battles) * 100,
		EventsUsed:         s.stats.EventsUsed,
		Syncretisms:        s.stats.Syncretisms,
		PantheonsDominated: len(s.stats.PantheonsDominated),
		PantheonBonus:      s.PantheonBonus(),
		Title:              title,
		TitleColor:         color,
		IsHighScore:        s.IsHighScore(),
	}
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/xxholden07/st/internal/game"
	"github.com/xxholden07/st/internal/ranking"
)

// Config holds the CLI settings, loaded from the environment and
// overridable by flags.
type Config struct {
	DeckFile    string `env:"ST_DECK_FILE"`
	RankingFile string `env:"ST_RANKING_FILE" envDefault:"ranking.json"`
	Seed        int64  `env:"ST_SEED"`
	PlayerName  string `env:"ST_PLAYER_NAME" envDefault:"Player"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse env: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.DeckFile, "deck", cfg.DeckFile, "path to deck YAML file (empty: embedded deck)")
	flag.StringVar(&cfg.RankingFile, "ranking", cfg.RankingFile, "path to leaderboard JSON file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for a reproducible match (0 = random)")
	flag.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "player name for the leaderboard")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	var deck []*game.Card
	var err error
	if cfg.DeckFile != "" {
		deck, err = game.LoadDeckFile(cfg.DeckFile)
		if err != nil {
			return fmt.Errorf("load deck: %w", err)
		}
	} else {
		deck = game.DefaultDeck()
	}

	rank, err := ranking.NewSystem(ranking.NewStore(cfg.RankingFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (starting an empty leaderboard)\n", err)
	}

	state := game.NewGameState(deck, game.Config{Seed: cfg.Seed})
	if err := state.InitializeGame([]string{cfg.PlayerName, "Oracle"}); err != nil {
		return err
	}

	c := &cli{
		state:   state,
		rank:    rank,
		humanID: 0,
		botID:   1,
		in:      bufio.NewScanner(os.Stdin),
	}
	return c.play()
}

type cli struct {
	state   *game.GameState
	rank    *ranking.System
	humanID int
	botID   int
	in      *bufio.Scanner

	usedSyncretism bool
}

func (c *cli) play() error {
	fmt.Println("=== SUPER TRUMP: CLASH OF PANTHEONS ===")
	c.printPantheons()
	fmt.Printf("First to move: %s\n", c.state.CurrentPlayer().Name)

	for c.state.CurrentPhase != game.PhaseGameOver {
		switch c.state.CurrentPhase {
		case game.PhaseChooseAttribute:
			if err := c.chooseAttributePhase(); err != nil {
				return err
			}
		case game.PhaseBattle:
			if err := c.battlePhase(); err != nil {
				return err
			}
		case game.PhaseEndTurn:
			c.state.EndTurn()
		}
	}

	c.gameOver()
	return nil
}

func (c *cli) chooseAttributePhase() error {
	if c.state.CurrentPlayer().ID == c.botID {
		attr := c.botAttribute()
		c.state.ChooseAttribute(attr)
		fmt.Printf("\nOracle chose: %s\n", attr)
		return nil
	}

	c.printHand()
	fmt.Printf("\n[Turn %d] Choose an attribute (%s),\n", c.state.TurnNumber, strings.Join(game.AttributeNames, ", "))
	fmt.Println("or: sync <card> <pantheon> | event <name> [args] | status | history | quit")

	for {
		line, ok := c.prompt("> ")
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "status":
			fmt.Print(c.state.Status())
		case "history":
			for _, l := range c.state.EventHistory() {
				fmt.Println(l)
			}
		case "sync":
			c.handleSync(fields[1:])
		case "event":
			c.handleEvent(fields[1:])
		case "quit":
			os.Exit(0)
		default:
			if c.state.ChooseAttribute(fields[0]) {
				return nil
			}
			fmt.Printf("Unknown attribute %q.\n", fields[0])
		}
	}
}

func (c *cli) battlePhase() error {
	human := c.state.GetPlayer(c.humanID)
	bot := c.state.GetPlayer(c.botID)
	if len(bot.Hand) == 0 || len(human.Hand) == 0 {
		c.state.EndTurn()
		return nil
	}

	fmt.Printf("\nBattle on %s. Pick a card by ID:\n", c.state.ChosenAttribute)
	c.printHand()

	var card *game.Card
	for card == nil {
		line, ok := c.prompt("card> ")
		if !ok {
			return nil
		}
		id := strings.TrimSpace(line)
		if card = human.GetCard(strings.ToUpper(id)); card == nil {
			fmt.Printf("Card %q is not in your hand.\n", id)
		}
	}

	botCard := bot.Hand[0]
	c.state.PlayCards(map[int]*game.Card{
		c.humanID: card,
		c.botID:   botCard,
	})
	fmt.Printf("You play %s. Oracle plays %s.\n", card, botCard)

	result := c.state.ResolveBattle()
	fmt.Println(result.Message)
	c.recordBattle(result)
	return nil
}

func (c *cli) recordBattle(result game.BattleResult) {
	if result.Tie || result.Winner == nil {
		return
	}
	if result.Winner.ID == c.humanID {
		pts := c.rank.RecordBattleWin(result.WinningCard.IsSuperTrump, c.usedSyncretism)
		fmt.Printf("+%d points\n", pts)
	} else {
		c.rank.RecordBattleLoss()
	}
	c.usedSyncretism = false
}

// botAttribute picks the strongest attribute of the opponent's next card.
func (c *cli) botAttribute() string {
	bot := c.state.GetPlayer(c.botID)
	attrs := bot.Hand[0].CurrentAttributes()
	best := game.AttrCombatPower
	for _, name := range game.AttributeNames {
		if attrs.Get(name) > attrs.Get(best) {
			best = name
		}
	}
	return best
}

func (c *cli) handleSync(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: sync <card> <pantheon>")
		return
	}
	pantheon, err := game.ParsePantheon(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	cardID := strings.ToUpper(args[0])
	if !c.state.ActivateSyncretism(c.humanID, cardID, pantheon) {
		fmt.Printf("Card %q has no %s identity to assume.\n", cardID, pantheon)
		return
	}
	c.usedSyncretism = true
	card := c.state.GetPlayer(c.humanID).GetCard(cardID)
	fmt.Printf("Syncretism! The card now fights as %s.\n", card.CurrentName())
}

func (c *cli) handleEvent(args []string) {
	if len(args) == 0 {
		fmt.Println("Events: ragnarok, judgment [card], bifrost [card], mysteries [cards...]")
		return
	}
	kind, err := game.ParseEventKind(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	eventArgs := game.NoArgs
	switch kind {
	case game.EventOsirisJudgment, game.EventBifrost:
		if len(args) > 1 {
			eventArgs.TargetCardID = strings.ToUpper(args[1])
		}
	case game.EventMysteries:
		for _, id := range args[1:] {
			eventArgs.CardIDs = append(eventArgs.CardIDs, strings.ToUpper(id))
		}
	}

	result := c.state.ExecuteEvent(game.NewEvent(kind), c.humanID, eventArgs)
	fmt.Println(result.Message)
	if result.Success {
		pts := c.rank.RecordEventUsed()
		fmt.Printf("+%d points\n", pts)
	}
}

func (c *cli) printPantheons() {
	bonuses := game.DefaultPantheonBonuses()
	keys := make([]string, 0, len(bonuses))
	for k := range bonuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("The four pantheons and their gifts:")
	for _, k := range keys {
		pantheon, err := game.ParsePantheon(k)
		if err != nil {
			continue
		}
		fmt.Printf("  %-13s %s\n", pantheon, bonuses[k].Description)
	}
}

func (c *cli) printHand() {
	human := c.state.GetPlayer(c.humanID)
	fmt.Printf("\nYour hand (%d cards, %d in reserve, %d events left):\n",
		len(human.Hand), len(human.Reserve), human.EventsAvailable)
	for _, card := range human.Hand {
		attrs := card.CurrentAttributes()
		marks := ""
		if card.IsSuperTrump {
			marks += " *SUPER TRUMP*"
		}
		if card.IsProtected {
			marks += " [protected]"
		}
		fmt.Printf("  %s  pwr:%-3d wis:%-3d jus:%-3d ete:%-3d%s\n",
			card, attrs.CombatPower, attrs.Wisdom, attrs.Justice, attrs.Eternity, marks)
	}
}

func (c *cli) gameOver() {
	winner := c.state.GetWinner()
	fmt.Println("\n=== GAME OVER ===")
	fmt.Printf("Winner: %s (score %d)\n", winner.Name, winner.Score)

	if winner.ID == c.humanID {
		human := c.state.GetPlayer(c.humanID)
		for _, p := range game.AllPantheons {
			if countPantheon(human.WonCards, p) == 8 {
				c.rank.RecordPantheonDominated(p.String())
				fmt.Printf("Pantheon dominated: %s!\n", p)
			}
		}
		c.rank.RecordGameWon()
	}

	summary := c.rank.SessionSummary()
	fmt.Printf("\nSession score: %d (+%d pantheon bonus)\n", summary.Score, summary.PantheonBonus)
	fmt.Printf("Battles: %d  Wins: %d  Win rate: %.0f%%\n", summary.Battles, summary.Wins, summary.WinRate)
	fmt.Printf("Title: %s\n", summary.Title)

	if summary.IsHighScore {
		fmt.Println("\nHIGH SCORE! Entering the hall of the gods...")
	}
	position, isRecord, err := c.rank.SubmitScore(c.state.GetPlayer(c.humanID).Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (your score was not saved)\n", err)
	}
	if isRecord {
		fmt.Println("NEW RECORD! You sit at the top of the leaderboard.")
	} else if position > 0 {
		fmt.Printf("Leaderboard position: %d\n", position)
	}

	fmt.Println("\n=== HALL OF THE GODS ===")
	for i, e := range c.rank.Ranking() {
		title, _ := ranking.GetTitle(e.TotalScore())
		fmt.Printf("%2d. %-10s %6d  %s  (%s)\n", i+1, e.Name, e.TotalScore(), title, e.Date)
	}
}

func countPantheon(won []*game.Card, p game.Pantheon) int {
	n := 0
	for _, c := range won {
		if c.Pantheon == p {
			n++
		}
	}
	return n
}

func (c *cli) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

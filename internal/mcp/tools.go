// Package mcp exposes the card game over the Model Context Protocol so an
// agent can play a full match through stdio tools.
package mcp

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xxholden07/st/internal/game"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// deckFile is the path to the deck YAML file, set by main. Empty means the
// embedded deck.
var deckFile string

// rankingFile is the path to the leaderboard JSON file, set by main.
var rankingFile string

// SetDeckFile sets the path to the deck YAML file.
func SetDeckFile(path string) {
	deckFile = path
}

// SetRankingFile sets the path to the leaderboard JSON file.
func SetRankingFile(path string) {
	rankingFile = path
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(newGameTool(), handleNewGame)
	s.AddTool(gameStatusTool(), handleGameStatus)
	s.AddTool(chooseAttributeTool(), handleChooseAttribute)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(resolveBattleTool(), handleResolveBattle)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(useEventTool(), handleUseEvent)
	s.AddTool(activateSyncretismTool(), handleActivateSyncretism)
	s.AddTool(leaderboardTool(), handleLeaderboard)
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Start a new match against the built-in opponent. "+
			"You are player 0; the opponent always commits the first card of its hand."),
		mcp.WithString("player_name", mcp.Required(), mcp.Description("Your player name (used for the leaderboard)")),
		mcp.WithNumber("seed", mcp.Description("Optional RNG seed for a reproducible match (0 = random)")),
	)
}

func gameStatusTool() mcp.Tool {
	return mcp.NewTool("game_status",
		mcp.WithDescription("Get the current game state, your hand and the match history. Read-only."),
	)
}

func chooseAttributeTool() mcp.Tool {
	return mcp.NewTool("choose_attribute",
		mcp.WithDescription("Choose the attribute for this round's comparison. Only valid on your turn in the Choose Attribute phase."),
		mcp.WithString("attribute", mcp.Required(), mcp.Description("One of: combat_power, wisdom, justice, eternity")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Commit one of your hand cards to the battle. The opponent commits a card too. Valid in the Battle phase."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("ID of the card to play (e.g. '3A')")),
	)
}

func resolveBattleTool() mcp.Tool {
	return mcp.NewTool("resolve_battle",
		mcp.WithDescription("Resolve the staged battle on the chosen attribute. The winner takes both cards."),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End the current turn. Protection counters tick down and the next player chooses an attribute."),
	)
}

func useEventTool() mcp.Tool {
	return mcp.NewTool("use_event",
		mcp.WithDescription("Activate a mythological event. Each player may use 2 events per match. "+
			"Events: ragnarok (destroy and redeal all cards in play), judgment (weigh an opponent card's justice; below 50 it is devoured), "+
			"bifrost (bring a reserve card into your hand), mysteries (protect your hand cards from destruction for 3 turns)."),
		mcp.WithString("event", mcp.Required(), mcp.Description("One of: ragnarok, judgment, bifrost, mysteries")),
		mcp.WithNumber("target_player", mcp.Description("Target player ID for judgment (default: first opponent)")),
		mcp.WithString("target_card", mcp.Description("Target card ID for judgment or bifrost (default: random/first)")),
		mcp.WithString("card_ids", mcp.Description("Space-separated card IDs to protect with mysteries (default: all unprotected)")),
	)
}

func activateSyncretismTool() mcp.Tool {
	return mcp.NewTool("activate_syncretism",
		mcp.WithDescription("Transform one of your hand cards into an alternate identity from another pantheon, applying its attribute bonuses."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("ID of the hand card to transform")),
		mcp.WithString("pantheon", mcp.Required(), mcp.Description("Target pantheon: egyptian, norse, greco_roman or mesopotamian")),
	)
}

func leaderboardTool() mcp.Tool {
	return mcp.NewTool("leaderboard",
		mcp.WithDescription("Show the top-ten leaderboard and the current session score. Read-only."),
	)
}

// --- Tool handlers ---

func handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Finish it before starting another."), nil
	}

	name := request.GetString("player_name", "PLAYER")
	seed := request.GetInt("seed", 0)

	sess, err := NewGameSession(deckFile, rankingFile, name, int64(seed))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	resp := ToolResponse{State: sess.stateView()}
	resp.Message = "Match started. " + sess.botTurnIfNeeded()
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGameStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	resp := ToolResponse{
		State:   sess.stateView(),
		History: sess.state.EventHistory(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleChooseAttribute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	if sess.state.CurrentPhase != game.PhaseChooseAttribute {
		return mcp.NewToolResultErrorf("Wrong phase: %s. Attributes are chosen in the Choose Attribute phase.", sess.state.CurrentPhase), nil
	}
	if sess.state.CurrentPlayer().ID != sess.humanID {
		return mcp.NewToolResultError("It is the opponent's turn to choose."), nil
	}

	attr := request.GetString("attribute", "")
	if !sess.state.ChooseAttribute(attr) {
		return mcp.NewToolResultErrorf("Unknown attribute %q. Use one of: %s.", attr, strings.Join(game.AttributeNames, ", ")), nil
	}

	resp := ToolResponse{
		Message: "Attribute chosen: " + attr + ". Now play a card.",
		State:   sess.stateView(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	if sess.state.CurrentPhase != game.PhaseBattle {
		return mcp.NewToolResultErrorf("Wrong phase: %s. Cards are played in the Battle phase.", sess.state.CurrentPhase), nil
	}

	cardID := request.GetString("card_id", "")
	human := sess.state.GetPlayer(sess.humanID)
	card := human.GetCard(cardID)
	if card == nil {
		return mcp.NewToolResultErrorf("Card %q is not in your hand.", cardID), nil
	}

	bot := sess.state.GetPlayer(sess.botID)
	if len(bot.Hand) == 0 {
		return mcp.NewToolResultError("The opponent has no cards left."), nil
	}
	botCard := bot.Hand[0]

	sess.state.PlayCards(map[int]*game.Card{
		sess.humanID: card,
		sess.botID:   botCard,
	})

	resp := ToolResponse{
		Message: "You played " + card.CurrentName() + "; the opponent played " + botCard.CurrentName() + ". Use resolve_battle.",
		State:   sess.stateView(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleResolveBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	result := sess.state.ResolveBattle()
	if !result.Success {
		return mcp.NewToolResultError(result.Message), nil
	}
	sess.recordBattle(result)

	resp := ToolResponse{
		Message: result.Message + " Use end_turn.",
		State:   sess.stateView(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	sess.state.EndTurn()

	if sess.state.CurrentPhase == game.PhaseGameOver {
		winner, position, _, err := sess.finishGame()
		activeSession = nil
		msg := "Game over. Leaderboard position: " + ordinal(position)
		if err != nil {
			msg += ". Warning: leaderboard not saved: " + err.Error()
		}
		resp := ToolResponse{
			Message:  msg,
			GameOver: true,
			Winner:   winner,
			History:  sess.state.EventHistory(),
		}
		return mcp.NewToolResultText(respondJSON(resp)), nil
	}

	resp := ToolResponse{
		Message: "Turn ended. " + sess.botTurnIfNeeded(),
		State:   sess.stateView(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleUseEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	kind, err := game.ParseEventKind(request.GetString("event", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}

	args := game.NoArgs
	args.TargetPlayerID = request.GetInt("target_player", -1)
	args.TargetCardID = request.GetString("target_card", "")
	if ids := strings.Fields(request.GetString("card_ids", "")); len(ids) > 0 {
		args.CardIDs = ids
	}

	result := sess.state.ExecuteEvent(game.NewEvent(kind), sess.humanID, args)
	if result.Success {
		sess.rank.RecordEventUsed()
	}

	resp := ToolResponse{
		Message: result.Message,
		State:   sess.stateView(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleActivateSyncretism(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	cardID := request.GetString("card_id", "")
	pantheon, err := game.ParsePantheon(request.GetString("pantheon", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}

	if !sess.state.ActivateSyncretism(sess.humanID, cardID, pantheon) {
		return mcp.NewToolResultErrorf("Card %q has no %s identity to assume.", cardID, pantheon), nil
	}
	sess.humanUsedSyncretism = true

	card := sess.state.GetPlayer(sess.humanID).GetCard(cardID)
	resp := ToolResponse{
		Message: "Syncretism! The card now fights as " + card.CurrentName() + ".",
		State:   sess.stateView(),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	summary := sess.rank.SessionSummary()
	resp := struct {
		Session any `json:"session"`
		Top     any `json:"leaderboard"`
	}{Session: summary, Top: sess.rank.Ranking()}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func ordinal(n int) string {
	if n < 1 {
		return "off the board"
	}
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

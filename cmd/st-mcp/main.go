package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	stmcp "github.com/xxholden07/st/internal/mcp"
)

func main() {
	deck := flag.String("deck", "", "path to deck YAML file (empty: embedded deck)")
	rankingPath := flag.String("ranking", "ranking.json", "path to leaderboard JSON file")
	flag.Parse()

	stmcp.SetDeckFile(*deck)
	stmcp.SetRankingFile(*rankingPath)

	s := server.NewMCPServer("st", "1.0.0")
	stmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

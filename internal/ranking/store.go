// Package ranking implements the arcade-style scoring system: per-session
// point accrual, earned titles and a persistent top-ten leaderboard.
package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Entry is one leaderboard row.
type Entry struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	Wins          int    `json:"wins"`
	Battles       int    `json:"battles"`
	PantheonBonus int    `json:"pantheon_bonus"`
	Date          string `json:"date"`
}

// WinRate returns the win percentage over the recorded battles.
func (e Entry) WinRate() float64 {
	if e.Battles == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Battles) * 100
}

// TotalScore is the ranking key: raw score plus pantheon bonus.
func (e Entry) TotalScore() int {
	return e.Score + e.PantheonBonus
}

// Store persists leaderboard entries as a JSON file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the leaderboard from disk. A missing file is an empty
// leaderboard, not an error.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse leaderboard: %w", err)
	}
	return entries, nil
}

// Save writes the leaderboard to disk, creating parent directories as
// needed.
func (s *Store) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}

package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HighScoreKey is the field the best score is stored under.
	HighScoreKey  = "snakeHighScore"
	highScoreFile = "highscore.json"
)

// StateManager persists the best score across sessions.
type StateManager struct {
	path string
}

func NewStateManager(dataDir string) *StateManager {
	return &StateManager{
		path: filepath.Join(dataDir, highScoreFile),
	}
}

// Path returns the file the high score lives in.
func (sm *StateManager) Path() string {
	return sm.path
}

// LoadHighScore returns the stored best score, or 0 when the file is missing,
// malformed or holds a negative value.
func (sm *StateManager) LoadHighScore() int {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return 0
	}

	var stats map[string]json.RawMessage
	if err := json.Unmarshal(data, &stats); err != nil {
		return 0
	}

	var score int
	if err := json.Unmarshal(stats[HighScoreKey], &score); err != nil || score < 0 {
		return 0
	}
	return score
}

// SaveHighScore writes score, replacing the previous file atomically.
func (sm *StateManager) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("save high score: negative score %d", score)
	}
	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(map[string]int{HighScoreKey: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	tmp := sm.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, sm.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace high score file: %w", err)
	}
	return nil
}

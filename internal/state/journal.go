package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the journal name inside the data directory.
const FileName = "state.toml"

// Outcome is the terminal state a run reached.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFallback Outcome = "fallback"
	OutcomeAborted  Outcome = "aborted"
)

// Entry records the last run.
type Entry struct {
	RunID       string    `toml:"run_id"`
	StartedAt   time.Time `toml:"started_at"`
	FinishedAt  time.Time `toml:"finished_at"`
	Outcome     Outcome   `toml:"outcome"`
	Date        string    `toml:"date,omitempty"`
	Title       string    `toml:"title,omitempty"`
	MediaType   string    `toml:"media_type,omitempty"`
	ImagePath   string    `toml:"image_path,omitempty"`
	AppliedPath string    `toml:"applied_path,omitempty"`
	Style       string    `toml:"style,omitempty"`
	Setter      string    `toml:"setter,omitempty"`
	Cause       string    `toml:"cause,omitempty"`
	Error       string    `toml:"error,omitempty"`
}

// Duration reports how long the run took.
func (e Entry) Duration() time.Duration {
	if e.StartedAt.IsZero() || e.FinishedAt.Before(e.StartedAt) {
		return 0
	}
	return e.FinishedAt.Sub(e.StartedAt)
}

// ErrNoHistory reports that no run has been journaled yet.
var ErrNoHistory = errors.New("no previous run recorded")

// Load reads the journal at path.
func Load(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, ErrNoHistory
		}
		return Entry{}, fmt.Errorf("read journal: %w", err)
	}
	var entry Entry
	if err := toml.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("parse journal: %w", err)
	}
	return entry, nil
}

// Save replaces the journal at path with entry, creating directories as needed.
func Save(path string, entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}
	data, err := toml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace journal: %w", err)
	}
	return nil
}

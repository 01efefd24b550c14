// Package scores persists the top-ten high-score table as a JSON file.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Keep is how many entries the table retains.
const Keep = 10

// Entry is a single recorded run.
type Entry struct {
	Initials string `json:"initials"`
	Score    int    `json:"score"`
}

// Table is the loaded high-score list, ordered best first.
type Table struct {
	path    string
	entries []Entry
}

// Load reads the table from path. A missing or unreadable file yields an
// empty table; the game should not refuse to start over a scoreboard.
func Load(path string, log *slog.Logger) *Table {
	if log == nil {
		log = slog.Default()
	}

	t := &Table{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("reading high scores, starting empty", "path", path, "error", err)
		}
		return t
	}

	if err := json.Unmarshal(data, &t.entries); err != nil {
		log.Warn("parsing high scores, starting empty", "path", path, "error", err)
		t.entries = nil
		return t
	}

	t.sort()
	if len(t.entries) > Keep {
		t.entries = t.entries[:Keep]
	}
	return t
}

// Top returns a copy of the entries, best first.
func (t *Table) Top() []Entry {
	return append([]Entry(nil), t.entries...)
}

// IsHighScore reports whether score would earn a spot in the table.
func (t *Table) IsHighScore(score int) bool {
	if score <= 0 {
		return false
	}
	if len(t.entries) < Keep {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Record inserts a run and saves the table. Initials are normalized to at
// most three upper-case characters.
func (t *Table) Record(initials string, score int) error {
	initials = strings.ToUpper(strings.TrimSpace(initials))
	if len(initials) > 3 {
		initials = initials[:3]
	}
	if initials == "" {
		initials = "???"
	}

	t.entries = append(t.entries, Entry{Initials: initials, Score: score})
	t.sort()
	if len(t.entries) > Keep {
		t.entries = t.entries[:Keep]
	}

	return t.save()
}

func (t *Table) sort() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
}

func (t *Table) save() error {
	data, err := json.MarshalIndent(t.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding high scores: %w", err)
	}

	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating score directory: %w", err)
		}
	}

	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("writing high scores: %w", err)
	}
	return nil
}

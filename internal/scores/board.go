// Package scores maintains the capped, ranked leaderboard and the
// last-used player name, persisted as JSON in storage slots.
package scores

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avoronkov/runlane/internal/storage"
)

// Cap is the maximum number of persisted leaderboard entries.
const Cap = 10

// DefaultName is used when no player name has ever been saved.
const DefaultName = "runner"

// Entry is a single leaderboard record.
type Entry struct {
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Slots is the storage collaborator: two string key-value slots.
type Slots interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Board is the in-memory leaderboard, loaded once at startup and written
// back on every change.
type Board struct {
	slots   Slots
	logger  *log.Logger
	entries []Entry
	name    string
}

// Load reads the leaderboard and player name from storage. Absent or
// malformed data falls back to an empty table and the default name; the
// failure is logged, never propagated.
func Load(slots Slots, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	b := &Board{slots: slots, logger: logger, name: DefaultName}
	if slots == nil {
		return b
	}

	raw, err := slots.Get(storage.SlotLeaderboard)
	if err != nil {
		logger.Warn("could not read leaderboard, starting empty", "error", err)
	} else if raw != "" {
		var entries []Entry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			logger.Warn("malformed leaderboard data, starting empty", "error", err)
		} else {
			b.entries = entries
			b.normalize()
		}
	}

	if name, err := slots.Get(storage.SlotPlayerName); err == nil && name != "" {
		b.name = name
	}

	return b
}

// Entries returns the ranked entries, best first.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Insert adds a new result, re-ranks the table, truncates it to the cap,
// and persists it.
func (b *Board) Insert(name string, score int) error {
	b.entries = append(b.entries, Entry{
		Name:      name,
		Score:     score,
		CreatedAt: time.Now(),
	})
	b.normalize()
	return b.persist()
}

// normalize sorts descending by score and truncates to the cap. The sort
// is stable so equal scores keep insertion order.
func (b *Board) normalize() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > Cap {
		b.entries = b.entries[:Cap]
	}
}

// persist writes the table back to its storage slot.
func (b *Board) persist() error {
	if b.slots == nil {
		return nil
	}
	raw, err := json.Marshal(b.entries)
	if err != nil {
		return fmt.Errorf("scores: cannot encode leaderboard: %w", err)
	}
	if err := b.slots.Set(storage.SlotLeaderboard, string(raw)); err != nil {
		return fmt.Errorf("scores: cannot persist leaderboard: %w", err)
	}
	return nil
}

// PlayerName returns the last-used player name.
func (b *Board) PlayerName() string {
	return b.name
}

// SetPlayerName records and persists a new player name. Empty names are
// ignored.
func (b *Board) SetPlayerName(name string) {
	if name == "" {
		return
	}
	b.name = name
	if b.slots == nil {
		return
	}
	if err := b.slots.Set(storage.SlotPlayerName, name); err != nil {
		b.logger.Warn("could not persist player name", "error", err)
	}
}

// HighScore returns the best persisted score, or zero with an empty table.
func (b *Board) HighScore() int {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

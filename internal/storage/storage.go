package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const stateFile = "tracker.json"

// TrackerState is what survives between runs.
type TrackerState struct {
	MeetName    string    `json:"meet_name,omitempty"`
	KnownFinals []string  `json:"known_finals"`
	LastChecked time.Time `json:"last_checked"`
}

// KnownSet converts the persisted final names into the set form the diff
// logic consumes.
func (t *TrackerState) KnownSet() map[string]bool {
	set := make(map[string]bool, len(t.KnownFinals))
	for _, name := range t.KnownFinals {
		set[name] = true
	}
	return set
}

// SetKnown replaces the persisted final names from a set.
func (t *TrackerState) SetKnown(known map[string]bool) {
	t.KnownFinals = make([]string, 0, len(known))
	for name := range known {
		t.KnownFinals = append(t.KnownFinals, name)
	}
	sort.Strings(t.KnownFinals)
}

// Storage reads and writes tracker state under a data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage, expanding a leading ~ and creating the directory if
// needed.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Storage{dataDir: dataDir}, nil
}

// Load reads the tracker state. A missing file is not an error; it loads as
// an empty state.
func (s *Storage) Load() (*TrackerState, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, stateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &TrackerState{}, nil
		}
		return nil, fmt.Errorf("reading tracker state: %w", err)
	}

	var state TrackerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing tracker state: %w", err)
	}
	return &state, nil
}

// Save writes the tracker state, stamping LastChecked.
func (s *Storage) Save(state *TrackerState) error {
	state.LastChecked = time.Now().UTC()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracker state: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, stateFile), data, 0644); err != nil {
		return fmt.Errorf("writing tracker state: %w", err)
	}
	return nil
}

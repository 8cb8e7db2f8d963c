package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/christ0s/freegames-reporter/internal/models"
)

// Store keeps the sent-ID set in a JSON file: a sorted array of integers,
// newline-terminated for stable diffs when the file is committed.
type Store struct {
	path string
	log  zerolog.Logger
}

func New(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, log: logger}
}

// Load reads the persisted set. A missing file means a first run and an
// unparseable file is treated as if it were missing; both start fresh
// rather than aborting, at the cost of possibly re-sending old giveaways.
func (s *Store) Load() (models.IDSet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Info().Str("path", s.path).Msg("no state file found, starting fresh")
		return models.NewIDSet(), nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("unreadable state file, starting fresh")
		return models.NewIDSet(), nil
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("corrupt state file, starting fresh")
		return models.NewIDSet(), nil
	}

	s.log.Info().Int("count", len(ids)).Str("path", s.path).Msg("loaded previously sent game IDs")
	return models.NewIDSet(ids...), nil
}

// Save writes the full set back in one shot, replacing the previous file.
func (s *Store) Save(ids models.IDSet) error {
	data, err := json.MarshalIndent(ids.Sorted(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %v", err)
	}

	s.log.Info().Int("count", len(ids)).Str("path", s.path).Msg("saved sent game IDs")
	return nil
}

package store

import "github.com/christ0s/freegames-reporter/internal/models"

// Store persists the set of giveaway IDs that have already been reported.
type Store interface {
	// Load returns the persisted set. A missing or unreadable backing
	// store yields an empty set, not an error.
	Load() (models.IDSet, error)
	// Save overwrites the persisted set. Callers must only fold in IDs
	// whose notification was confirmed sent.
	Save(ids models.IDSet) error
}

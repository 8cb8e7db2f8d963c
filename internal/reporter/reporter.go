// Package reporter runs one fetch-filter-notify-persist cycle.
package reporter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/christ0s/freegames-reporter/internal/filter"
	"github.com/christ0s/freegames-reporter/internal/models"
	"github.com/christ0s/freegames-reporter/internal/store"
)

// Catalog is the source of active giveaways.
type Catalog interface {
	Fetch(ctx context.Context) ([]models.Giveaway, error)
}

// Notifier announces giveaways and returns the IDs whose announcement
// was confirmed by the transport.
type Notifier interface {
	Notify(ctx context.Context, giveaways []models.Giveaway) []int
}

type Reporter struct {
	store            store.Store
	catalog          Catalog
	notifier         Notifier
	allowedPlatforms []string
	log              zerolog.Logger
}

func New(st store.Store, catalog Catalog, notifier Notifier, allowedPlatforms []string, logger zerolog.Logger) *Reporter {
	return &Reporter{
		store:            st,
		catalog:          catalog,
		notifier:         notifier,
		allowedPlatforms: allowedPlatforms,
		log:              logger,
	}
}

// Run executes one reporting cycle. The sent-ID set is only ever extended
// with IDs the notifier confirmed, so a giveaway whose send failed stays
// eligible on the next run. A fetch failure aborts the run before any
// state is written.
func (r *Reporter) Run(ctx context.Context) error {
	sentIDs, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %v", err)
	}

	giveaways, err := r.catalog.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch giveaways: %v", err)
	}
	r.log.Info().Int("count", len(giveaways)).Msg("fetched active giveaways")

	fresh := filter.Select(giveaways, sentIDs, r.allowedPlatforms)
	if len(fresh) == 0 {
		r.log.Info().Msg("no new giveaways to report")
		return nil
	}
	r.log.Info().Int("count", len(fresh)).Msg("found new giveaways to report")

	sentNow := r.notifier.Notify(ctx, fresh)
	if len(sentNow) == 0 {
		r.log.Warn().Msg("no messages were sent successfully")
		return nil
	}

	for _, id := range sentNow {
		sentIDs.Add(id)
	}
	if err := r.store.Save(sentIDs); err != nil {
		return fmt.Errorf("failed to save state: %v", err)
	}

	r.log.Info().Int("count", len(sentNow)).Msg("reporting cycle finished")
	return nil
}

// Package filter selects the giveaways worth reporting: not yet sent and
// available on at least one allowed platform.
package filter

import (
	"strings"

	"github.com/christ0s/freegames-reporter/internal/models"
)

// Select returns the giveaways whose ID is not in sent and whose platforms
// field contains at least one entry of allowedPlatforms (case-insensitive,
// whitespace-trimmed). Input order is preserved. A giveaway with an empty
// platforms field never matches.
func Select(giveaways []models.Giveaway, sent models.IDSet, allowedPlatforms []string) []models.Giveaway {
	allowed := make(map[string]struct{}, len(allowedPlatforms))
	for _, p := range allowedPlatforms {
		if p = normalize(p); p != "" {
			allowed[p] = struct{}{}
		}
	}

	var selected []models.Giveaway
	for _, gw := range giveaways {
		if sent.Contains(gw.ID) {
			continue
		}
		// The platforms field is comma-separated, e.g.
		// "Epic Games Store, PlayStation 4".
		for _, token := range strings.Split(gw.Platforms, ",") {
			if _, ok := allowed[normalize(token)]; ok {
				selected = append(selected, gw)
				break
			}
		}
	}
	return selected
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

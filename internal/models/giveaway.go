package models

// Giveaway is one free-game listing as returned by the GamerPower API.
// Only the fields the reporter consumes are decoded; everything else in
// the response is ignored.
type Giveaway struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Worth           string `json:"worth"`
	Platforms       string `json:"platforms"`
	EndDate         string `json:"end_date"`
	OpenGiveawayURL string `json:"open_giveaway_url"`
	OpenGiveaway    string `json:"open_giveaway"`
	GamerpowerURL   string `json:"gamerpower_url"`
}

// ClaimURL resolves the claim link, preferring open_giveaway_url, then
// open_giveaway, then gamerpower_url. Empty when none is present.
func (g Giveaway) ClaimURL() string {
	if g.OpenGiveawayURL != "" {
		return g.OpenGiveawayURL
	}
	if g.OpenGiveaway != "" {
		return g.OpenGiveaway
	}
	return g.GamerpowerURL
}

// DisplayTitle returns the title, or a placeholder when the API omitted it.
func (g Giveaway) DisplayTitle() string {
	return orDefault(g.Title, "Unknown Game")
}

func (g Giveaway) DisplayPlatforms() string { return orDefault(g.Platforms, "N/A") }
func (g Giveaway) DisplayWorth() string     { return orDefault(g.Worth, "N/A") }
func (g Giveaway) DisplayEndDate() string   { return orDefault(g.EndDate, "N/A") }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

package model

// TeamDuelGame is one team duel from the perspective of the tracked player's
// team. CreatedAt is set by the storage layer when the game is first saved.
type TeamDuelGame struct {
	GameID    string
	Status    string
	Player1ID string
	Player2ID string
	CreatedAt string
}

// TeamDuelRound holds the raw per-round data for a team duel. Coordinates are
// kept in "lat, lng" text form, exactly as they are persisted. Guess fields
// are nil when no guess was made for the round.
type TeamDuelRound struct {
	GameID            string   `json:"game_id"`
	RoundNumber       int      `json:"round_number"`
	Player1Guess      *string  `json:"player1_guess"`
	Player2Guess      *string  `json:"player2_guess"`
	TeammateGuesses   []string `json:"-"` // every non-tracked guess, in upstream order. Not persisted.
	BestOpponentGuess *string  `json:"best_opponent_guess"`
	CorrectLocation   string   `json:"correct_location"`
	CountryCode       string   `json:"country_code"`
	OpponentScore     *int     `json:"opponent_score"`
	TeamScore         *int     `json:"team_score"`
	Heading           float64  `json:"heading"`
	Pitch             float64  `json:"pitch"`
	Zoom              float64  `json:"zoom"`
}

// RegionInfo is the administrative region breakdown for one coordinate as
// resolved by the geocoding provider. Any level the provider does not report
// is nil.
type RegionInfo struct {
	Country *string
	Region  *string
	State   *string
	City    *string
}

// EnrichedRound is a raw round joined with the resolved regions for its three
// coordinates. Rows are recomputed wholesale from the raw rounds table on
// every enrichment pass.
type EnrichedRound struct {
	ID int64 `json:"id"`
	TeamDuelRound

	Player1GuessCountry *string `json:"player1_guess_country"`
	Player1GuessRegion  *string `json:"player1_guess_region"`
	Player1GuessState   *string `json:"player1_guess_state"`
	Player1GuessCity    *string `json:"player1_guess_city"`

	Player2GuessCountry *string `json:"player2_guess_country"`
	Player2GuessRegion  *string `json:"player2_guess_region"`
	Player2GuessState   *string `json:"player2_guess_state"`
	Player2GuessCity    *string `json:"player2_guess_city"`

	CorrectLocationCountry *string `json:"correct_location_country"`
	CorrectLocationRegion  *string `json:"correct_location_region"`
	CorrectLocationState   *string `json:"correct_location_state"`
	CorrectLocationCity    *string `json:"correct_location_city"`
}

// SetRegions copies a resolved region set into the enriched columns for the
// named coordinate field. A nil info leaves the columns nil.
func (e *EnrichedRound) SetRegions(field string, info *RegionInfo) {
	if info == nil {
		return
	}
	switch field {
	case "player1_guess":
		e.Player1GuessCountry = info.Country
		e.Player1GuessRegion = info.Region
		e.Player1GuessState = info.State
		e.Player1GuessCity = info.City
	case "player2_guess":
		e.Player2GuessCountry = info.Country
		e.Player2GuessRegion = info.Region
		e.Player2GuessState = info.State
		e.Player2GuessCity = info.City
	case "correct_location":
		e.CorrectLocationCountry = info.Country
		e.CorrectLocationRegion = info.Region
		e.CorrectLocationState = info.State
		e.CorrectLocationCity = info.City
	}
}

package geoguessr

import (
	"fmt"
	"log"

	"github.com/chickenThug/geoguessr-analyzer/model"
)

// Duel is the game server's duel detail response, reduced to the pieces the
// summarizer reads.
type Duel struct {
	GameID string      `json:"gameId"`
	Status string      `json:"status"`
	Teams  []duelTeam  `json:"teams"`
	Rounds []duelRound `json:"rounds"`
}

type duelTeam struct {
	ID           string            `json:"id"`
	Players      []duelPlayer      `json:"players"`
	RoundResults []duelRoundResult `json:"roundResults"`
}

type duelPlayer struct {
	PlayerID string      `json:"playerId"`
	Guesses  []duelGuess `json:"guesses"`
}

type duelGuess struct {
	RoundNumber int     `json:"roundNumber"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Score       int     `json:"score"`
}

type duelRoundResult struct {
	RoundNumber int        `json:"roundNumber"`
	Score       int        `json:"score"`
	BestGuess   *duelGuess `json:"bestGuess"`
}

type duelRound struct {
	RoundNumber int           `json:"roundNumber"`
	Panorama    *duelPanorama `json:"panorama"`
}

type duelPanorama struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	CountryCode string  `json:"countryCode"`
	Heading     float64 `json:"heading"`
	Pitch       float64 `json:"pitch"`
	Zoom        float64 `json:"zoom"`
}

// SummarizeTeamDuel reshapes a team duel into one game record plus one round
// record per round, all from the perspective of the tracked player's team.
// If the tracked player is not on any team the duel is not summarized and
// both results are nil; that is a logged warning, not an error, because it
// simply means the game belongs to a different account. Structural anomalies
// in the response surface as a single error tagged with the failing step.
func SummarizeTeamDuel(duel *Duel, trackedPlayerID string) (*model.TeamDuelGame, []model.TeamDuelRound, error) {
	if duel.GameID == "" {
		return nil, nil, fmt.Errorf("duel response: gameId: %w", ErrMissingField)
	}
	if len(duel.Teams) == 0 {
		return nil, nil, fmt.Errorf("duel %s: teams: %w", duel.GameID, ErrMissingField)
	}

	var playerTeam, opponentTeam *duelTeam
	for i := range duel.Teams {
		for _, p := range duel.Teams[i].Players {
			if p.PlayerID == trackedPlayerID {
				playerTeam = &duel.Teams[i]
				break
			}
		}
	}
	if playerTeam == nil {
		log.Printf("player %s not found in any team of duel %s", trackedPlayerID, duel.GameID)
		return nil, nil, nil
	}
	for i := range duel.Teams {
		if duel.Teams[i].ID != playerTeam.ID {
			opponentTeam = &duel.Teams[i]
			break
		}
	}

	if len(playerTeam.Players) > 2 {
		log.Printf("duel %s: team has %d players, only the first teammate guess is stored per round",
			duel.GameID, len(playerTeam.Players))
	}

	rounds := make([]model.TeamDuelRound, 0, len(duel.Rounds))
	for _, r := range duel.Rounds {
		if r.Panorama == nil {
			return nil, nil, fmt.Errorf("duel %s round %d: panorama: %w", duel.GameID, r.RoundNumber, ErrMissingField)
		}

		round := model.TeamDuelRound{
			GameID:          duel.GameID,
			RoundNumber:     r.RoundNumber,
			CorrectLocation: model.FormatCoordinate(r.Panorama.Lat, r.Panorama.Lng),
			CountryCode:     r.Panorama.CountryCode,
			Heading:         r.Panorama.Heading,
			Pitch:           r.Panorama.Pitch,
			Zoom:            r.Panorama.Zoom,
		}

		// The tracked player's own guess plus every teammate guess for this
		// round. The first teammate guess doubles as player2_guess.
		for _, p := range playerTeam.Players {
			for _, g := range p.Guesses {
				if g.RoundNumber != r.RoundNumber {
					continue
				}
				coord := model.FormatCoordinate(g.Lat, g.Lng)
				if p.PlayerID == trackedPlayerID {
					round.Player1Guess = &coord
				} else {
					round.TeammateGuesses = append(round.TeammateGuesses, coord)
					if round.Player2Guess == nil {
						round.Player2Guess = &coord
					}
				}
			}
		}

		// The opponent's best guess and score, when they played the round.
		if opponentTeam != nil {
			if res := findRoundResult(opponentTeam.RoundResults, r.RoundNumber); res != nil && res.BestGuess != nil {
				coord := model.FormatCoordinate(res.BestGuess.Lat, res.BestGuess.Lng)
				score := res.BestGuess.Score
				round.BestOpponentGuess = &coord
				round.OpponentScore = &score
			}
		}

		if res := findRoundResult(playerTeam.RoundResults, r.RoundNumber); res != nil {
			score := res.Score
			round.TeamScore = &score
		}

		rounds = append(rounds, round)
	}

	game := &model.TeamDuelGame{
		GameID: duel.GameID,
		Status: duel.Status,
	}
	game.Player1ID = playerTeam.Players[0].PlayerID
	if len(playerTeam.Players) > 1 {
		game.Player2ID = playerTeam.Players[1].PlayerID
	}

	return game, rounds, nil
}

func findRoundResult(results []duelRoundResult, roundNumber int) *duelRoundResult {
	for i := range results {
		if results[i].RoundNumber == roundNumber {
			return &results[i]
		}
	}
	return nil
}

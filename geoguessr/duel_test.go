package geoguessr

import (
	"errors"
	"testing"
)

func testDuel() *Duel {
	return &Duel{
		GameID: "duel-1",
		Status: "Finished",
		Teams: []duelTeam{
			{
				ID: "team-a",
				Players: []duelPlayer{
					{
						PlayerID: "player-1",
						Guesses: []duelGuess{
							{RoundNumber: 1, Lat: 48.85, Lng: 2.35, Score: 4998},
							{RoundNumber: 2, Lat: 34.0, Lng: 135.0, Score: 3000},
						},
					},
					{
						PlayerID: "player-2",
						Guesses: []duelGuess{
							{RoundNumber: 1, Lat: 48.0, Lng: 2.0, Score: 4500},
						},
					},
				},
				RoundResults: []duelRoundResult{
					{RoundNumber: 1, Score: 4998, BestGuess: &duelGuess{RoundNumber: 1, Lat: 48.85, Lng: 2.35, Score: 4998}},
					{RoundNumber: 2, Score: 3000, BestGuess: &duelGuess{RoundNumber: 2, Lat: 34.0, Lng: 135.0, Score: 3000}},
				},
			},
			{
				ID: "team-b",
				Players: []duelPlayer{
					{
						PlayerID: "opponent-1",
						Guesses: []duelGuess{
							{RoundNumber: 1, Lat: 49.1, Lng: 2.9, Score: 4800},
						},
					},
				},
				RoundResults: []duelRoundResult{
					{RoundNumber: 1, Score: 4800, BestGuess: &duelGuess{RoundNumber: 1, Lat: 49.1, Lng: 2.9, Score: 4800}},
				},
			},
		},
		Rounds: []duelRound{
			{RoundNumber: 1, Panorama: &duelPanorama{Lat: 48.8566, Lng: 2.3522, CountryCode: "fr", Heading: 12.5, Pitch: -3.2, Zoom: 1.25}},
			{RoundNumber: 2, Panorama: &duelPanorama{Lat: 35.6895, Lng: 139.6917, CountryCode: "jp", Heading: 200.1}},
		},
	}
}

func TestSummarizeTeamDuel(t *testing.T) {
	game, rounds, err := SummarizeTeamDuel(testDuel(), "player-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if game.GameID != "duel-1" {
		t.Errorf("GameID - expected 'duel-1', got '%s'", game.GameID)
	}
	if game.Status != "Finished" {
		t.Errorf("Status - expected 'Finished', got '%s'", game.Status)
	}
	if game.Player1ID != "player-1" {
		t.Errorf("Player1ID - expected 'player-1', got '%s'", game.Player1ID)
	}
	if game.Player2ID != "player-2" {
		t.Errorf("Player2ID - expected 'player-2', got '%s'", game.Player2ID)
	}

	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}

	r1 := rounds[0]
	if r1.RoundNumber != 1 {
		t.Errorf("RoundNumber - expected 1, got %d", r1.RoundNumber)
	}
	if r1.Player1Guess == nil || *r1.Player1Guess != "48.85, 2.35" {
		t.Errorf("Player1Guess - expected '48.85, 2.35', got %v", r1.Player1Guess)
	}
	if r1.Player2Guess == nil || *r1.Player2Guess != "48, 2" {
		t.Errorf("Player2Guess - expected '48, 2', got %v", r1.Player2Guess)
	}
	if r1.BestOpponentGuess == nil || *r1.BestOpponentGuess != "49.1, 2.9" {
		t.Errorf("BestOpponentGuess - expected '49.1, 2.9', got %v", r1.BestOpponentGuess)
	}
	if r1.OpponentScore == nil || *r1.OpponentScore != 4800 {
		t.Errorf("OpponentScore - expected 4800, got %v", r1.OpponentScore)
	}
	if r1.TeamScore == nil || *r1.TeamScore != 4998 {
		t.Errorf("TeamScore - expected 4998, got %v", r1.TeamScore)
	}
	if r1.CorrectLocation != "48.8566, 2.3522" {
		t.Errorf("CorrectLocation - expected '48.8566, 2.3522', got '%s'", r1.CorrectLocation)
	}
	if r1.CountryCode != "fr" {
		t.Errorf("CountryCode - expected 'fr', got '%s'", r1.CountryCode)
	}
	if r1.Heading != 12.5 || r1.Pitch != -3.2 || r1.Zoom != 1.25 {
		t.Errorf("camera - expected (12.5, -3.2, 1.25), got (%v, %v, %v)", r1.Heading, r1.Pitch, r1.Zoom)
	}

	// Round 2: no teammate guess and no opponent round result. Those stay
	// nil instead of failing the summary.
	r2 := rounds[1]
	if r2.Player1Guess == nil || *r2.Player1Guess != "34, 135" {
		t.Errorf("Player1Guess - expected '34, 135', got %v", r2.Player1Guess)
	}
	if r2.Player2Guess != nil {
		t.Errorf("Player2Guess - expected nil, got %v", *r2.Player2Guess)
	}
	if r2.BestOpponentGuess != nil {
		t.Errorf("BestOpponentGuess - expected nil, got %v", *r2.BestOpponentGuess)
	}
	if r2.OpponentScore != nil {
		t.Errorf("OpponentScore - expected nil, got %v", *r2.OpponentScore)
	}
	if r2.TeamScore == nil || *r2.TeamScore != 3000 {
		t.Errorf("TeamScore - expected 3000, got %v", r2.TeamScore)
	}
}

func TestSummarizeTeamDuel_trackedPlayerOnSecondTeam(t *testing.T) {
	game, rounds, err := SummarizeTeamDuel(testDuel(), "opponent-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if game.Player1ID != "opponent-1" {
		t.Errorf("Player1ID - expected 'opponent-1', got '%s'", game.Player1ID)
	}
	if game.Player2ID != "" {
		t.Errorf("Player2ID - expected empty, got '%s'", game.Player2ID)
	}

	// From team-b's perspective, team-a's best guess is the opponent guess.
	r1 := rounds[0]
	if r1.BestOpponentGuess == nil || *r1.BestOpponentGuess != "48.85, 2.35" {
		t.Errorf("BestOpponentGuess - expected '48.85, 2.35', got %v", r1.BestOpponentGuess)
	}
	if r1.TeamScore == nil || *r1.TeamScore != 4800 {
		t.Errorf("TeamScore - expected 4800, got %v", r1.TeamScore)
	}
}

func TestSummarizeTeamDuel_playerNotFound(t *testing.T) {
	game, rounds, err := SummarizeTeamDuel(testDuel(), "somebody-else")
	if err != nil {
		t.Fatalf("player not found should not be an error, got: %v", err)
	}
	if game != nil || rounds != nil {
		t.Error("expected nil game and rounds when the player is not in the duel")
	}
}

func TestSummarizeTeamDuel_structuralErrors(t *testing.T) {
	noTeams := testDuel()
	noTeams.Teams = nil
	if _, _, err := SummarizeTeamDuel(noTeams, "player-1"); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for missing teams, got: %v", err)
	}

	noGameID := testDuel()
	noGameID.GameID = ""
	if _, _, err := SummarizeTeamDuel(noGameID, "player-1"); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for missing gameId, got: %v", err)
	}

	noPanorama := testDuel()
	noPanorama.Rounds[1].Panorama = nil
	if _, _, err := SummarizeTeamDuel(noPanorama, "player-1"); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for missing panorama, got: %v", err)
	}
}

func TestSummarizeTeamDuel_capturesAllTeammateGuesses(t *testing.T) {
	duel := testDuel()
	duel.Teams[0].Players = append(duel.Teams[0].Players, duelPlayer{
		PlayerID: "player-3",
		Guesses: []duelGuess{
			{RoundNumber: 1, Lat: 50.0, Lng: 3.0, Score: 4000},
		},
	})

	_, rounds, err := SummarizeTeamDuel(duel, "player-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r1 := rounds[0]
	if len(r1.TeammateGuesses) != 2 {
		t.Fatalf("expected 2 teammate guesses, got %d", len(r1.TeammateGuesses))
	}
	// player2_guess stays the first teammate guess encountered.
	if r1.Player2Guess == nil || *r1.Player2Guess != "48, 2" {
		t.Errorf("Player2Guess - expected '48, 2', got %v", r1.Player2Guess)
	}
	if r1.TeammateGuesses[1] != "50, 3" {
		t.Errorf("TeammateGuesses[1] - expected '50, 3', got '%s'", r1.TeammateGuesses[1])
	}
}

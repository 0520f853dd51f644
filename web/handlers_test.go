package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chickenThug/geoguessr-analyzer/controller/mockcontroller"
	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"
)

func strPtr(s string) *string {
	return &s
}

func newTestRouter(ctrl *mockcontroller.C) http.Handler {
	return getRouter(ctrl, render.New())
}

func TestTeamDuelRoundsHandler(t *testing.T) {
	rounds := []model.EnrichedRound{
		{
			ID: 2,
			TeamDuelRound: model.TeamDuelRound{
				GameID:          "duel-1",
				RoundNumber:     2,
				CorrectLocation: "35.6895, 139.6917",
				CountryCode:     "jp",
			},
			CorrectLocationCountry: strPtr("Japan"),
		},
		{
			ID: 1,
			TeamDuelRound: model.TeamDuelRound{
				GameID:          "duel-1",
				RoundNumber:     1,
				Player1Guess:    strPtr("48.85, 2.35"),
				CorrectLocation: "48.8566, 2.3522",
				CountryCode:     "fr",
			},
			Player1GuessCountry:    strPtr("France"),
			CorrectLocationCountry: strPtr("France"),
			CorrectLocationCity:    strPtr("Paris"),
		},
	}

	ctrl := &mockcontroller.C{}
	ctrl.On("ListEnrichedRounds", mock.Anything).Return(rounds, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/team-duel-rounds", nil)
	w := httptest.NewRecorder()
	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(got))
	}

	first := got[0]
	if first["game_id"] != "duel-1" {
		t.Errorf("game_id - expected 'duel-1', got '%v'", first["game_id"])
	}
	if first["round_number"] != float64(2) {
		t.Errorf("round_number - expected 2, got %v", first["round_number"])
	}
	if first["correct_location_country"] != "Japan" {
		t.Errorf("correct_location_country - expected 'Japan', got '%v'", first["correct_location_country"])
	}
	// Unresolved fields are serialized as explicit nulls.
	if v, present := first["player1_guess"]; !present || v != nil {
		t.Errorf("player1_guess - expected null, got '%v'", v)
	}

	second := got[1]
	if second["player1_guess_country"] != "France" {
		t.Errorf("player1_guess_country - expected 'France', got '%v'", second["player1_guess_country"])
	}
}

func TestTeamDuelRoundsHandler_error(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("ListEnrichedRounds", mock.Anything).Return(nil, errors.New("db is on fire"))

	req := httptest.NewRequest(http.MethodGet, "/api/team-duel-rounds", nil)
	w := httptest.NewRecorder()
	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if got["error"] != "db is on fire" {
		t.Errorf("error - expected 'db is on fire', got '%s'", got["error"])
	}
}

func TestRouter_unknownPath(t *testing.T) {
	ctrl := &mockcontroller.C{}

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestRouter_corsHeaders(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("ListEnrichedRounds", mock.Anything).Return([]model.EnrichedRound{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/team-duel-rounds", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin - expected 'http://localhost:5173', got '%s'", got)
	}
}

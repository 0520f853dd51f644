package mockdb

import (
	"context"

	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) SaveMultiplayerGames(ctx context.Context, playerID string, games []model.MultiplayerGame) error {
	args := db.Called(ctx, playerID, games)
	return args.Error(0)
}

func (db *DB) SaveSinglePlayerGames(ctx context.Context, games []model.SinglePlayerGame) error {
	args := db.Called(ctx, games)
	return args.Error(0)
}

func (db *DB) SaveTeamDuelGame(ctx context.Context, game *model.TeamDuelGame, rounds []model.TeamDuelRound) error {
	args := db.Called(ctx, game, rounds)
	return args.Error(0)
}

func (db *DB) ListMultiplayerGames(ctx context.Context) ([]model.GameRef, error) {
	args := db.Called(ctx)

	var refs []model.GameRef
	if args.Get(0) != nil {
		refs = args.Get(0).([]model.GameRef)
	}
	return refs, args.Error(1)
}

func (db *DB) CountMultiplayerGames(ctx context.Context) (int, error) {
	args := db.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (db *DB) ListTeamDuelRounds(ctx context.Context) ([]model.TeamDuelRound, error) {
	args := db.Called(ctx)

	var rounds []model.TeamDuelRound
	if args.Get(0) != nil {
		rounds = args.Get(0).([]model.TeamDuelRound)
	}
	return rounds, args.Error(1)
}

func (db *DB) SaveEnrichedRound(ctx context.Context, round *model.EnrichedRound) error {
	args := db.Called(ctx, round)
	return args.Error(0)
}

func (db *DB) ListEnrichedRounds(ctx context.Context) ([]model.EnrichedRound, error) {
	args := db.Called(ctx)

	var rounds []model.EnrichedRound
	if args.Get(0) != nil {
		rounds = args.Get(0).([]model.EnrichedRound)
	}
	return rounds, args.Error(1)
}

func (db *DB) Close() error {
	args := db.Called()
	return args.Error(0)
}

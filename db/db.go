package db

import (
	"context"

	"github.com/chickenThug/geoguessr-analyzer/model"
)

// DB is the storage gateway for all game tables. Every Save operation uses
// insert-or-replace semantics on the table's primary or unique key, so
// re-running ingestion or enrichment overwrites rather than duplicates.
type DB interface {
	// SaveMultiplayerGames stores feed games for the tracked player. The
	// batch is best effort: a row that fails to insert is logged and
	// skipped, and the rest of the batch still commits.
	SaveMultiplayerGames(ctx context.Context, playerID string, games []model.MultiplayerGame) error
	SaveSinglePlayerGames(ctx context.Context, games []model.SinglePlayerGame) error

	// SaveTeamDuelGame stores one duel game row plus its round rows in a
	// single transaction, with the same best-effort policy per round.
	SaveTeamDuelGame(ctx context.Context, game *model.TeamDuelGame, rounds []model.TeamDuelRound) error

	// ListMultiplayerGames returns the id and mode of every stored
	// multiplayer game, used to drive the duel detail sync.
	ListMultiplayerGames(ctx context.Context) ([]model.GameRef, error)
	CountMultiplayerGames(ctx context.Context) (int, error)

	ListTeamDuelRounds(ctx context.Context) ([]model.TeamDuelRound, error)

	SaveEnrichedRound(ctx context.Context, round *model.EnrichedRound) error
	// ListEnrichedRounds returns enriched rounds with a resolved country,
	// newest first. This backs the read-only query surface.
	ListEnrichedRounds(ctx context.Context) ([]model.EnrichedRound, error)

	Close() error
}

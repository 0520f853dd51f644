package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/itbasis/go-clock"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS multiplayer_games (
		game_id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		time TEXT NOT NULL,
		game_mode TEXT NOT NULL,
		competitive_game_mode TEXT NOT NULL,
		UNIQUE(game_id, player_id)
	)`,
	`CREATE TABLE IF NOT EXISTS singleplayer_games (
		game_token TEXT PRIMARY KEY,
		time TEXT NOT NULL,
		map_slug TEXT NOT NULL,
		map_name TEXT NOT NULL,
		points INTEGER NOT NULL,
		game_mode TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team_duel_games (
		game_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		player1_id TEXT NOT NULL,
		player2_id TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team_duel_rounds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		round_number INTEGER NOT NULL,
		player1_guess TEXT,
		player2_guess TEXT,
		best_opponent_guess TEXT,
		correct_location TEXT NOT NULL,
		country_code TEXT,
		opponent_score INTEGER,
		team_score INTEGER,
		heading REAL,
		pitch REAL,
		zoom REAL,
		UNIQUE(game_id, round_number),
		FOREIGN KEY(game_id) REFERENCES team_duel_games(game_id)
	)`,
	`CREATE TABLE IF NOT EXISTS team_duel_rounds_enriched (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		round_number INTEGER NOT NULL,
		player1_guess TEXT,
		player2_guess TEXT,
		best_opponent_guess TEXT,
		correct_location TEXT NOT NULL,
		country_code TEXT,
		opponent_score INTEGER,
		team_score INTEGER,
		heading REAL,
		pitch REAL,
		zoom REAL,
		player1_guess_country TEXT,
		player1_guess_region TEXT,
		player1_guess_state TEXT,
		player1_guess_city TEXT,
		player2_guess_country TEXT,
		player2_guess_region TEXT,
		player2_guess_state TEXT,
		player2_guess_city TEXT,
		correct_location_country TEXT,
		correct_location_region TEXT,
		correct_location_state TEXT,
		correct_location_city TEXT,
		UNIQUE(game_id, round_number)
	)`,
}

// New opens the SQLite database at path, creating the file and the schema
// idempotently on first use.
func New(ctx context.Context, path string, clock clock.Clock) (DB, error) {
	pool, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	for _, stmt := range schema {
		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("error initializing schema: %w", err)
		}
	}

	return &sqliteDB{pool: pool, clock: clock}, nil
}

type sqliteDB struct {
	pool  *sql.DB
	clock clock.Clock
}

func (db *sqliteDB) Close() error {
	return db.pool.Close()
}

func (db *sqliteDB) SaveMultiplayerGames(ctx context.Context, playerID string, games []model.MultiplayerGame) error {
	const query = `INSERT OR REPLACE INTO multiplayer_games
			(game_id, player_id, time, game_mode, competitive_game_mode)
			VALUES (@game_id, @player_id, @time, @game_mode, @competitive_game_mode)`

	tx, err := db.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting multiplayer games transaction: %w", err)
	}
	defer tx.Rollback()

	saved := 0
	for _, g := range games {
		_, err := tx.ExecContext(ctx, query,
			sql.Named("game_id", g.GameID),
			sql.Named("player_id", playerID),
			sql.Named("time", g.Time),
			sql.Named("game_mode", g.GameMode),
			sql.Named("competitive_game_mode", g.CompetitiveGameMode))
		if err != nil {
			log.Printf("error inserting multiplayer game %s: %v", g.GameID, err)
			continue
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing multiplayer games: %w", err)
	}
	log.Printf("saved %d of %d multiplayer games", saved, len(games))
	return nil
}

func (db *sqliteDB) SaveSinglePlayerGames(ctx context.Context, games []model.SinglePlayerGame) error {
	const query = `INSERT OR REPLACE INTO singleplayer_games
			(game_token, time, map_slug, map_name, points, game_mode)
			VALUES (@game_token, @time, @map_slug, @map_name, @points, @game_mode)`

	tx, err := db.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting single player games transaction: %w", err)
	}
	defer tx.Rollback()

	saved := 0
	for _, g := range games {
		_, err := tx.ExecContext(ctx, query,
			sql.Named("game_token", g.GameToken),
			sql.Named("time", g.Time),
			sql.Named("map_slug", g.MapSlug),
			sql.Named("map_name", g.MapName),
			sql.Named("points", g.Points),
			sql.Named("game_mode", g.GameMode))
		if err != nil {
			log.Printf("error inserting single player game %s: %v", g.GameToken, err)
			continue
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing single player games: %w", err)
	}
	log.Printf("saved %d of %d single player games", saved, len(games))
	return nil
}

func (db *sqliteDB) SaveTeamDuelGame(ctx context.Context, game *model.TeamDuelGame, rounds []model.TeamDuelRound) error {
	const gameQuery = `INSERT OR REPLACE INTO team_duel_games
			(game_id, status, player1_id, player2_id, created_at)
			VALUES (@game_id, @status, @player1_id, @player2_id, @created_at)`

	const roundQuery = `INSERT OR REPLACE INTO team_duel_rounds
			(game_id, round_number, player1_guess, player2_guess, best_opponent_guess,
			 correct_location, country_code, opponent_score, team_score, heading, pitch, zoom)
			VALUES (@game_id, @round_number, @player1_guess, @player2_guess, @best_opponent_guess,
			 @correct_location, @country_code, @opponent_score, @team_score, @heading, @pitch, @zoom)`

	tx, err := db.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting team duel transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := game.CreatedAt
	if createdAt == "" {
		createdAt = db.clock.Now().UTC().Format(time.RFC3339)
	}
	_, err = tx.ExecContext(ctx, gameQuery,
		sql.Named("game_id", game.GameID),
		sql.Named("status", game.Status),
		sql.Named("player1_id", game.Player1ID),
		sql.Named("player2_id", game.Player2ID),
		sql.Named("created_at", createdAt))
	if err != nil {
		return fmt.Errorf("error inserting team duel game %s: %w", game.GameID, err)
	}

	for _, r := range rounds {
		_, err := tx.ExecContext(ctx, roundQuery,
			sql.Named("game_id", r.GameID),
			sql.Named("round_number", r.RoundNumber),
			sql.Named("player1_guess", r.Player1Guess),
			sql.Named("player2_guess", r.Player2Guess),
			sql.Named("best_opponent_guess", r.BestOpponentGuess),
			sql.Named("correct_location", r.CorrectLocation),
			sql.Named("country_code", r.CountryCode),
			sql.Named("opponent_score", r.OpponentScore),
			sql.Named("team_score", r.TeamScore),
			sql.Named("heading", r.Heading),
			sql.Named("pitch", r.Pitch),
			sql.Named("zoom", r.Zoom))
		if err != nil {
			log.Printf("error inserting round %d of team duel %s: %v", r.RoundNumber, r.GameID, err)
			continue
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing team duel game %s: %w", game.GameID, err)
	}
	return nil
}

func (db *sqliteDB) ListMultiplayerGames(ctx context.Context) ([]model.GameRef, error) {
	const query = `SELECT game_id, game_mode FROM multiplayer_games ORDER BY time`

	rows, err := db.pool.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing multiplayer games: %w", err)
	}
	defer rows.Close()

	refs := make([]model.GameRef, 0, 8)
	for rows.Next() {
		var ref model.GameRef
		if err := rows.Scan(&ref.ID, &ref.Mode); err != nil {
			return nil, fmt.Errorf("error scanning game ref: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (db *sqliteDB) CountMultiplayerGames(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM multiplayer_games`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting multiplayer games: %w", err)
	}
	return count, nil
}

func (db *sqliteDB) ListTeamDuelRounds(ctx context.Context) ([]model.TeamDuelRound, error) {
	const query = `SELECT game_id, round_number, player1_guess, player2_guess, best_opponent_guess,
			correct_location, country_code, opponent_score, team_score, heading, pitch, zoom
			FROM team_duel_rounds ORDER BY game_id, round_number`

	rows, err := db.pool.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing team duel rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]model.TeamDuelRound, 0, 8)
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, *r)
	}
	return rounds, rows.Err()
}

func (db *sqliteDB) SaveEnrichedRound(ctx context.Context, round *model.EnrichedRound) error {
	const query = `INSERT OR REPLACE INTO team_duel_rounds_enriched
			(game_id, round_number, player1_guess, player2_guess, best_opponent_guess,
			 correct_location, country_code, opponent_score, team_score, heading, pitch, zoom,
			 player1_guess_country, player1_guess_region, player1_guess_state, player1_guess_city,
			 player2_guess_country, player2_guess_region, player2_guess_state, player2_guess_city,
			 correct_location_country, correct_location_region, correct_location_state, correct_location_city)
			VALUES (@game_id, @round_number, @player1_guess, @player2_guess, @best_opponent_guess,
			 @correct_location, @country_code, @opponent_score, @team_score, @heading, @pitch, @zoom,
			 @p1_country, @p1_region, @p1_state, @p1_city,
			 @p2_country, @p2_region, @p2_state, @p2_city,
			 @cl_country, @cl_region, @cl_state, @cl_city)`

	_, err := db.pool.ExecContext(ctx, query,
		sql.Named("game_id", round.GameID),
		sql.Named("round_number", round.RoundNumber),
		sql.Named("player1_guess", round.Player1Guess),
		sql.Named("player2_guess", round.Player2Guess),
		sql.Named("best_opponent_guess", round.BestOpponentGuess),
		sql.Named("correct_location", round.CorrectLocation),
		sql.Named("country_code", round.CountryCode),
		sql.Named("opponent_score", round.OpponentScore),
		sql.Named("team_score", round.TeamScore),
		sql.Named("heading", round.Heading),
		sql.Named("pitch", round.Pitch),
		sql.Named("zoom", round.Zoom),
		sql.Named("p1_country", round.Player1GuessCountry),
		sql.Named("p1_region", round.Player1GuessRegion),
		sql.Named("p1_state", round.Player1GuessState),
		sql.Named("p1_city", round.Player1GuessCity),
		sql.Named("p2_country", round.Player2GuessCountry),
		sql.Named("p2_region", round.Player2GuessRegion),
		sql.Named("p2_state", round.Player2GuessState),
		sql.Named("p2_city", round.Player2GuessCity),
		sql.Named("cl_country", round.CorrectLocationCountry),
		sql.Named("cl_region", round.CorrectLocationRegion),
		sql.Named("cl_state", round.CorrectLocationState),
		sql.Named("cl_city", round.CorrectLocationCity))
	if err != nil {
		return fmt.Errorf("error inserting enriched round %d of game %s: %w", round.RoundNumber, round.GameID, err)
	}
	return nil
}

func (db *sqliteDB) ListEnrichedRounds(ctx context.Context) ([]model.EnrichedRound, error) {
	const query = `SELECT id, game_id, round_number, player1_guess, player2_guess, best_opponent_guess,
			correct_location, country_code, opponent_score, team_score, heading, pitch, zoom,
			player1_guess_country, player1_guess_region, player1_guess_state, player1_guess_city,
			player2_guess_country, player2_guess_region, player2_guess_state, player2_guess_city,
			correct_location_country, correct_location_region, correct_location_state, correct_location_city
			FROM team_duel_rounds_enriched
			WHERE correct_location_country IS NOT NULL
			ORDER BY id DESC`

	rows, err := db.pool.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing enriched rounds: %w", err)
	}
	defer rows.Close()

	results := make([]model.EnrichedRound, 0, 8)
	for rows.Next() {
		var e model.EnrichedRound
		var p1Guess, p2Guess, bestOpp, countryCode sql.NullString
		var oppScore, teamScore sql.NullInt64
		err := rows.Scan(&e.ID, &e.GameID, &e.RoundNumber, &p1Guess, &p2Guess, &bestOpp,
			&e.CorrectLocation, &countryCode, &oppScore, &teamScore, &e.Heading, &e.Pitch, &e.Zoom,
			&e.Player1GuessCountry, &e.Player1GuessRegion, &e.Player1GuessState, &e.Player1GuessCity,
			&e.Player2GuessCountry, &e.Player2GuessRegion, &e.Player2GuessState, &e.Player2GuessCity,
			&e.CorrectLocationCountry, &e.CorrectLocationRegion, &e.CorrectLocationState, &e.CorrectLocationCity)
		if err != nil {
			return nil, fmt.Errorf("error scanning enriched round: %w", err)
		}
		e.Player1Guess = nullableString(p1Guess)
		e.Player2Guess = nullableString(p2Guess)
		e.BestOpponentGuess = nullableString(bestOpp)
		if countryCode.Valid {
			e.CountryCode = countryCode.String
		}
		e.OpponentScore = nullableInt(oppScore)
		e.TeamScore = nullableInt(teamScore)
		results = append(results, e)
	}
	return results, rows.Err()
}

// scanRound works for any row source selecting the raw round columns in the
// canonical order.
func scanRound(row interface{ Scan(...any) error }) (*model.TeamDuelRound, error) {
	var r model.TeamDuelRound
	var p1Guess, p2Guess, bestOpp, countryCode sql.NullString
	var oppScore, teamScore sql.NullInt64
	err := row.Scan(&r.GameID, &r.RoundNumber, &p1Guess, &p2Guess, &bestOpp,
		&r.CorrectLocation, &countryCode, &oppScore, &teamScore, &r.Heading, &r.Pitch, &r.Zoom)
	if err != nil {
		return nil, fmt.Errorf("error scanning team duel round: %w", err)
	}
	r.Player1Guess = nullableString(p1Guess)
	r.Player2Guess = nullableString(p2Guess)
	r.BestOpponentGuess = nullableString(bestOpp)
	if countryCode.Valid {
		r.CountryCode = countryCode.String
	}
	r.OpponentScore = nullableInt(oppScore)
	r.TeamScore = nullableInt(teamScore)
	return &r, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

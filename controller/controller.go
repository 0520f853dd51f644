package controller

import (
	"context"

	"github.com/chickenThug/geoguessr-analyzer/db"
	"github.com/chickenThug/geoguessr-analyzer/geoguessr"
	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/chickenThug/geoguessr-analyzer/nominatim"
	"github.com/itbasis/go-clock"
)

// C encapsulates the pipeline logic without worrying about any web layers
type C interface {
	// RunIngest pulls the full activity feed, normalizes it into typed game
	// records and stores them. Re-running on the same feed window is
	// idempotent.
	RunIngest(ctx context.Context) error

	// SyncDuelDetails fetches round-level detail for every stored team duel
	// and stores the per-round summaries.
	SyncDuelDetails(ctx context.Context) error

	// EnrichRounds resolves the coordinates of every stored raw round into
	// administrative regions and rewrites the enriched table.
	EnrichRounds(ctx context.Context) error

	ListEnrichedRounds(ctx context.Context) ([]model.EnrichedRound, error)
}

type controller struct {
	clock    clock.Clock
	geo      geoguessr.Client
	geocoder nominatim.Client
	db       db.DB
	playerID string
}

func New(clock clock.Clock, geo geoguessr.Client, geocoder nominatim.Client, db db.DB, playerID string) (C, error) {
	c := &controller{
		clock:    clock,
		geo:      geo,
		geocoder: geocoder,
		db:       db,
		playerID: playerID,
	}
	return c, nil
}

func (c *controller) ListEnrichedRounds(ctx context.Context) ([]model.EnrichedRound, error) {
	return c.db.ListEnrichedRounds(ctx)
}

package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chickenThug/geoguessr-analyzer/model"
)

// Log progress every N rows so long enrichment batches stay observable.
const enrichProgressCadence = 10

func (c *controller) EnrichRounds(ctx context.Context) error {
	start := time.Now()

	rounds, err := c.db.ListTeamDuelRounds(ctx)
	if err != nil {
		return fmt.Errorf("error listing team duel rounds: %w", err)
	}
	log.Printf("enriching %d team duel rounds", len(rounds))

	for i, r := range rounds {
		enriched := model.EnrichedRound{TeamDuelRound: r}

		if r.Player1Guess != nil {
			enriched.SetRegions("player1_guess", c.resolveCoordinate(ctx, *r.Player1Guess))
		}
		if r.Player2Guess != nil {
			enriched.SetRegions("player2_guess", c.resolveCoordinate(ctx, *r.Player2Guess))
		}
		enriched.SetRegions("correct_location", c.resolveCoordinate(ctx, r.CorrectLocation))

		if err := c.db.SaveEnrichedRound(ctx, &enriched); err != nil {
			log.Printf("error saving enriched round %d of game %s: %v", r.RoundNumber, r.GameID, err)
			continue
		}

		if (i+1)%enrichProgressCadence == 0 {
			log.Printf("enriched %d/%d rounds", i+1, len(rounds))
		}
	}

	log.Printf("enrichment finished, took %v", time.Since(start))
	return nil
}

// resolveCoordinate turns a "lat, lng" string into region names. Malformed
// coordinates and geocoding failures both resolve to nil so a sparse or
// unresolvable coordinate never aborts the enrichment pass.
func (c *controller) resolveCoordinate(ctx context.Context, latLng string) *model.RegionInfo {
	lat, lng, err := model.ParseCoordinate(latLng)
	if err != nil {
		log.Printf("skipping unparseable coordinate: %v", err)
		return nil
	}

	info, err := c.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		log.Printf("error resolving coordinate '%s': %v", latLng, err)
		return nil
	}
	return info
}

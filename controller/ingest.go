package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chickenThug/geoguessr-analyzer/geoguessr"
)

func (c *controller) RunIngest(ctx context.Context) error {
	start := time.Now()
	log.Printf("feed ingestion starting at %v", start.Format(time.DateTime))

	entries, err := c.geo.ListFeedEntries(ctx)
	if err != nil {
		return fmt.Errorf("error fetching activity feed: %w", err)
	}
	log.Printf("fetched %d feed entries", len(entries))

	feed, err := geoguessr.Normalize(entries)
	if err != nil {
		return fmt.Errorf("error normalizing activity feed: %w", err)
	}

	if err := c.db.SaveMultiplayerGames(ctx, c.playerID, feed.Multiplayer); err != nil {
		return fmt.Errorf("error saving multiplayer games: %w", err)
	}
	if err := c.db.SaveSinglePlayerGames(ctx, feed.SinglePlayer); err != nil {
		return fmt.Errorf("error saving single player games: %w", err)
	}

	total, err := c.db.CountMultiplayerGames(ctx)
	if err != nil {
		return fmt.Errorf("error counting multiplayer games: %w", err)
	}

	log.Printf("feed ingestion finished, took %v, %d multiplayer games known", time.Since(start), total)
	return nil
}

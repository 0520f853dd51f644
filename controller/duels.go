package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/chickenThug/geoguessr-analyzer/geoguessr"
	"github.com/chickenThug/geoguessr-analyzer/model"
)

func (c *controller) SyncDuelDetails(ctx context.Context) error {
	refs, err := c.db.ListMultiplayerGames(ctx)
	if err != nil {
		return fmt.Errorf("error listing multiplayer games: %w", err)
	}

	synced := 0
	for _, ref := range refs {
		switch ref.Mode {
		case model.GameModeTeamDuels:
			duel, err := c.geo.GetDuel(ctx, ref.ID)
			if err != nil {
				return fmt.Errorf("error fetching duel %s: %w", ref.ID, err)
			}
			if err := c.syncTeamDuel(ctx, duel); err != nil {
				log.Printf("error syncing team duel %s: %v", ref.ID, err)
				continue
			}
			synced++
		case model.GameModeDuels:
			// Solo duels have a different result shape and no team-level
			// best guess. Round detail for them is not tracked.
			continue
		default:
			log.Printf("invalid game mode for %s: %s", ref.ID, ref.Mode)
			continue
		}
	}

	log.Printf("synced %d team duels", synced)
	return nil
}

func (c *controller) syncTeamDuel(ctx context.Context, duel *geoguessr.Duel) error {
	game, rounds, err := geoguessr.SummarizeTeamDuel(duel, c.playerID)
	if err != nil {
		return err
	}
	if game == nil {
		// Tracked player not in the duel, already logged by the summarizer.
		return nil
	}

	return c.db.SaveTeamDuelGame(ctx, game, rounds)
}

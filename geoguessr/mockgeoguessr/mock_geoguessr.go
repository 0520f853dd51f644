package mockgeoguessr

import (
	"context"

	"github.com/chickenThug/geoguessr-analyzer/geoguessr"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) ListFeedEntries(ctx context.Context) ([]geoguessr.FeedEntry, error) {
	args := c.Called(ctx)

	var entries []geoguessr.FeedEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]geoguessr.FeedEntry)
	}
	return entries, args.Error(1)
}

func (c *Client) GetDuel(ctx context.Context, duelID string) (*geoguessr.Duel, error) {
	args := c.Called(ctx, duelID)

	var duel *geoguessr.Duel
	if args.Get(0) != nil {
		duel = args.Get(0).(*geoguessr.Duel)
	}
	return duel, args.Error(1)
}

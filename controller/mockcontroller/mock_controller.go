package mockcontroller

import (
	"context"

	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) RunIngest(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) SyncDuelDetails(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) EnrichRounds(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) ListEnrichedRounds(ctx context.Context) ([]model.EnrichedRound, error) {
	args := c.Called(ctx)

	var rounds []model.EnrichedRound
	if args.Get(0) != nil {
		rounds = args.Get(0).([]model.EnrichedRound)
	}
	return rounds, args.Error(1)
}

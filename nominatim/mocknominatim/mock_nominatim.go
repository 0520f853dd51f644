package mocknominatim

import (
	"context"

	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*model.RegionInfo, error) {
	args := c.Called(ctx, lat, lng)

	var info *model.RegionInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*model.RegionInfo)
	}
	return info, args.Error(1)
}

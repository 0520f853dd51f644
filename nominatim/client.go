package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chickenThug/geoguessr-analyzer/model"
	"github.com/itbasis/go-clock"
)

const (
	NominatimURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy allows at most one request per second.
	lookupDelay = 1 * time.Second

	userAgent = "geoguessr-analyzer"
)

// Client resolves a coordinate to administrative region names via reverse
// geocoding.
type Client interface {
	Reverse(ctx context.Context, lat, lng float64) (*model.RegionInfo, error)
}

type client struct {
	url        string
	clock      clock.Clock
	httpClient *http.Client
}

func New(clock clock.Clock) (Client, error) {
	c := &client{
		url:   NominatimURL,
		clock: clock,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string, clock clock.Clock) Client {
	return &client{
		url:   url,
		clock: clock,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
}

type reverseResponse struct {
	Error   string          `json:"error"`
	Address *reverseAddress `json:"address"`
}

type reverseAddress struct {
	Country *string `json:"country"`
	Region  *string `json:"region"`
	State   *string `json:"state"`
	City    *string `json:"city"`
}

// Reverse looks up the regions containing the given coordinate. A coordinate
// the provider cannot resolve (open ocean, for example) returns nil with no
// error. Each call is preceded by a fixed delay to honor the provider's rate
// policy.
func (c *client) Reverse(ctx context.Context, lat, lng float64) (*model.RegionInfo, error) {
	c.clock.Sleep(lookupDelay)

	u := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%v&lon=%v&accept-language=en", c.url, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating reverse geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending reverse geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from reverse geocoding: %d", resp.StatusCode)
	}

	var parsed reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing reverse geocoding response: %w", err)
	}

	// Nominatim reports unresolvable coordinates as a 200 with an error body.
	if parsed.Error != "" || parsed.Address == nil {
		return nil, nil
	}

	return &model.RegionInfo{
		Country: parsed.Address.Country,
		Region:  parsed.Address.Region,
		State:   parsed.Address.State,
		City:    parsed.Address.City,
	}, nil
}

package geoguessr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/itbasis/go-clock"
)

const (
	GeoGuessrURL   = "https://www.geoguessr.com"
	GameServerURL  = "https://game-server.geoguessr.com"
	feedPageSize   = 100
	pageFetchDelay = 1 * time.Second
)

// Client talks to the two GeoGuessr API surfaces: the main site for the
// private activity feed and the game server for duel details. All requests
// authenticate with the player's session cookie.
type Client interface {
	// ListFeedEntries fetches every page of the player's private activity
	// feed and returns the concatenated entries. Any transport or non-2xx
	// failure aborts the whole retrieval so a feed window is never ingested
	// with silently missing pages.
	ListFeedEntries(ctx context.Context) ([]FeedEntry, error)
	GetDuel(ctx context.Context, duelID string) (*Duel, error)
}

type client struct {
	feedURL    string
	duelURL    string
	cookie     string
	clock      clock.Clock
	httpClient *http.Client
}

func New(cookie string, clock clock.Clock) (Client, error) {
	c := &client{
		feedURL: GeoGuessrURL,
		duelURL: GameServerURL,
		cookie:  cookie,
		clock:   clock,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at fake servers instead of the real
// GeoGuessr hosts.
func NewForTest(feedURL, duelURL, cookie string, clock clock.Clock) Client {
	return &client{
		feedURL: feedURL,
		duelURL: duelURL,
		cookie:  cookie,
		clock:   clock,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
}

type feedResponse struct {
	Entries         []FeedEntry `json:"entries"`
	PaginationToken string      `json:"paginationToken"`
}

func (c *client) ListFeedEntries(ctx context.Context) ([]FeedEntry, error) {
	entries := make([]FeedEntry, 0, feedPageSize)

	token := ""
	for {
		page, err := c.fetchFeedPage(ctx, token)
		if err != nil {
			return nil, err
		}
		entries = append(entries, page.Entries...)

		if page.PaginationToken == "" {
			return entries, nil
		}
		token = page.PaginationToken

		// Pace page requests to respect upstream rate limits.
		c.clock.Sleep(pageFetchDelay)
	}
}

func (c *client) fetchFeedPage(ctx context.Context, token string) (*feedResponse, error) {
	u := fmt.Sprintf("%s/api/v4/feed/private?count=%d", c.feedURL, feedPageSize)
	if token != "" {
		u = fmt.Sprintf("%s&paginationToken=%s", u, url.QueryEscape(token))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating feed request: %w", err)
	}
	req.Header.Set("Cookie", c.cookie)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching feed page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code fetching feed page: %d", resp.StatusCode)
	}

	var page feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("error parsing feed page: %w", err)
	}
	return &page, nil
}

func (c *client) GetDuel(ctx context.Context, duelID string) (*Duel, error) {
	u := fmt.Sprintf("%s/api/duels/%s", c.duelURL, duelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating duel request: %w", err)
	}
	req.Header.Set("Cookie", c.cookie)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching duel %s: %w", duelID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code fetching duel %s: %d", duelID, resp.StatusCode)
	}

	var duel Duel
	if err := json.NewDecoder(resp.Body).Decode(&duel); err != nil {
		return nil, fmt.Errorf("error parsing duel %s: %w", duelID, err)
	}
	return &duel, nil
}

package geoguessr

import (
	"context"
	"testing"

	"github.com/chickenThug/geoguessr-analyzer/testutils"
	"github.com/itbasis/go-clock"
)

func TestListFeedEntries_paginates(t *testing.T) {
	fakeServer := testutils.NewFakeGeoGuessrServer()
	defer fakeServer.Close()

	c := NewForTest(fakeServer.URL(), fakeServer.URL(), "fake-cookie", clock.New())

	entries, err := c.ListFeedEntries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Page one has two entries, page two has two more. One request per page
	// and the entries concatenate in page order.
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Type == nil || *entries[0].Type != 6 {
		t.Errorf("entries[0].Type - expected 6, got %v", entries[0].Type)
	}
	if entries[2].Type == nil || *entries[2].Type != 2 {
		t.Errorf("entries[2].Type - expected 2, got %v", entries[2].Type)
	}
	if entries[3].Type == nil || *entries[3].Type != 4 {
		t.Errorf("entries[3].Type - expected 4, got %v", entries[3].Type)
	}
}

func TestListFeedEntries_serverError(t *testing.T) {
	fakeServer := testutils.NewFakeGeoGuessrServer()
	fakeServer.Close() // closed server forces a transport error

	c := NewForTest(fakeServer.URL(), fakeServer.URL(), "fake-cookie", clock.New())

	entries, err := c.ListFeedEntries(context.Background())
	if err == nil {
		t.Fatal("expected an error but got none")
	}
	if entries != nil {
		t.Errorf("expected nil entries on failure, got %d", len(entries))
	}
}

func TestGetDuel(t *testing.T) {
	fakeServer := testutils.NewFakeGeoGuessrServer()
	defer fakeServer.Close()

	c := NewForTest(fakeServer.URL(), fakeServer.URL(), "fake-cookie", clock.New())

	duel, err := c.GetDuel(context.Background(), "duel-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duel.GameID != "duel-1" {
		t.Errorf("GameID - expected 'duel-1', got '%s'", duel.GameID)
	}
	if len(duel.Teams) != 2 {
		t.Errorf("expected 2 teams, got %d", len(duel.Teams))
	}
	if len(duel.Rounds) != 2 {
		t.Errorf("expected 2 rounds, got %d", len(duel.Rounds))
	}
}

func TestGetDuel_notFound(t *testing.T) {
	fakeServer := testutils.NewFakeGeoGuessrServer()
	defer fakeServer.Close()

	c := NewForTest(fakeServer.URL(), fakeServer.URL(), "fake-cookie", clock.New())

	if _, err := c.GetDuel(context.Background(), "no-such-duel"); err == nil {
		t.Fatal("expected an error for an unknown duel but got none")
	}
}

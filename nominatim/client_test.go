package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chickenThug/geoguessr-analyzer/testutils"
	"github.com/itbasis/go-clock"
)

func TestReverse(t *testing.T) {
	fakeServer := testutils.NewFakeNominatimServer()
	defer fakeServer.Close()

	c := NewForTest(fakeServer.URL(), clock.New())

	info, err := c.Reverse(context.Background(), 48.8566, 2.3522)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected region info, got nil")
	}
	if info.Country == nil || *info.Country != "France" {
		t.Errorf("Country - expected 'France', got %v", info.Country)
	}
	if info.State == nil || *info.State != "Ile-de-France" {
		t.Errorf("State - expected 'Ile-de-France', got %v", info.State)
	}
	if info.City == nil || *info.City != "Paris" {
		t.Errorf("City - expected 'Paris', got %v", info.City)
	}
	if info.Region == nil || *info.Region != "Metropolitan France" {
		t.Errorf("Region - expected 'Metropolitan France', got %v", info.Region)
	}
}

// The provider reports a coordinate it cannot resolve as a 200 with an error
// body. That is a nil result, not an error.
func TestReverse_unresolvable(t *testing.T) {
	fakeServer := testutils.NewFakeNominatimServer()
	defer fakeServer.Close()

	c := NewForTest(fakeServer.URL(), clock.New())

	info, err := c.Reverse(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil info for an unresolvable coordinate, got %+v", info)
	}
}

func TestReverse_serverError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer s.Close()

	c := NewForTest(s.URL, clock.New())

	if _, err := c.Reverse(context.Background(), 48.8566, 2.3522); err == nil {
		t.Fatal("expected an error but got none")
	}
}

// Nominatim omits administrative levels it does not know; those come back nil
// rather than empty strings.
func TestReverse_partialAddress(t *testing.T) {
	fakeServer := testutils.NewFakeNominatimServer()
	defer fakeServer.Close()

	c := NewForTest(fakeServer.URL(), clock.New())

	info, err := c.Reverse(context.Background(), 35.6895, 139.6917)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected region info, got nil")
	}
	if info.Country == nil || *info.Country != "Japan" {
		t.Errorf("Country - expected 'Japan', got %v", info.Country)
	}
	if info.Region != nil {
		t.Errorf("Region - expected nil, got '%s'", *info.Region)
	}
}

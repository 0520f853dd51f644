package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed geodata
var geodata embed.FS

// TrackedPlayerID is the player the embedded duel fixtures are built around.
const TrackedPlayerID = "player-1"

// FakeGeoGuessrServer serves both API surfaces (feed and game server) from
// one httptest server backed by embedded fixture files.
type FakeGeoGuessrServer struct {
	s *httptest.Server
}

func NewFakeGeoGuessrServer() *FakeGeoGuessrServer {
	r := chi.NewRouter()
	r.Get("/api/v4/feed/private", privateFeedHandler)
	r.Get("/api/duels/{duelID}", duelHandler)

	return &FakeGeoGuessrServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeGeoGuessrServer) Close() {
	f.s.Close()
}

func (f *FakeGeoGuessrServer) URL() string {
	return f.s.URL
}

func privateFeedHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("paginationToken")
	switch token {
	case "":
		serveGeoFile(w, "feed_page1.json")
	case "page-2":
		serveGeoFile(w, "feed_page2.json")
	default:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"entries": []}`))
	}
}

func duelHandler(w http.ResponseWriter, r *http.Request) {
	duelID := chi.URLParam(r, "duelID")
	if duelID == "duel-1" {
		serveGeoFile(w, "duel_team.json")
	} else {
		w.WriteHeader(http.StatusNotFound)
	}
}

func serveGeoFile(w http.ResponseWriter, name string) {
	b, err := geodata.ReadFile(fmt.Sprintf("geodata/%s", name))
	if err != nil {
		log.Printf("error reading geodata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

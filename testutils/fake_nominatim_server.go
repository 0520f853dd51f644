package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed nominatimdata
var nominatimdata embed.FS

// FakeNominatimServer answers reverse lookups by latitude: the fixture
// coordinates resolve to real-looking addresses and anything else is
// reported as unresolvable, the way the provider reports open ocean.
type FakeNominatimServer struct {
	s *httptest.Server
}

func NewFakeNominatimServer() *FakeNominatimServer {
	r := chi.NewRouter()
	r.Get("/reverse", reverseHandler)

	return &FakeNominatimServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeNominatimServer) Close() {
	f.s.Close()
}

func (f *FakeNominatimServer) URL() string {
	return f.s.URL
}

func reverseHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("lat") {
	case "48.8566", "48.85", "48", "49.1":
		serveNominatimFile(w, "paris.json")
	case "35.6895", "34":
		serveNominatimFile(w, "tokyo.json")
	default:
		serveNominatimFile(w, "ocean.json")
	}
}

func serveNominatimFile(w http.ResponseWriter, name string) {
	b, err := nominatimdata.ReadFile(fmt.Sprintf("nominatimdata/%s", name))
	if err != nil {
		log.Printf("error reading nominatimdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

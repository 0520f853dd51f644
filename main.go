package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/chickenThug/geoguessr-analyzer/controller"
	"github.com/chickenThug/geoguessr-analyzer/db"
	"github.com/chickenThug/geoguessr-analyzer/geoguessr"
	"github.com/chickenThug/geoguessr-analyzer/nominatim"
	"github.com/chickenThug/geoguessr-analyzer/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

const usage = `usage: geoguessr-analyzer <mode>

modes:
  ingest  fetch the activity feed, store game records and sync duel details
  enrich  resolve stored round coordinates into administrative regions
  serve   run the read-only query server`

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	playerID := os.Getenv("GEOGUESSR_PLAYER_ID")
	cookie := os.Getenv("GEOGUESSR_COOKIE")
	if err := validateEnv(playerID, cookie); err != nil {
		log.Fatalf("%v", err)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/games.db"
	}

	portNum := 5000 // 5000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), dbPath, clock)
	if err != nil {
		log.Fatalf("cannot open DB at %s: %v", dbPath, err)
	}
	defer db.Close()

	geoClient, err := geoguessr.New(cookie, clock)
	if err != nil {
		log.Fatalf("error creating geoguessr client: %v", err)
	}

	geocoder, err := nominatim.New(clock)
	if err != nil {
		log.Fatalf("error creating nominatim client: %v", err)
	}

	ctrl, err := controller.New(clock, geoClient, geocoder, db, playerID)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	if len(os.Args) < 2 {
		log.Fatalf("%s", usage)
	}

	switch os.Args[1] {
	case "ingest":
		ctx := context.Background()
		if err := ctrl.RunIngest(ctx); err != nil {
			log.Fatalf("ingestion failed: %v", err)
		}
		if err := ctrl.SyncDuelDetails(ctx); err != nil {
			log.Fatalf("duel detail sync failed: %v", err)
		}
	case "enrich":
		if err := ctrl.EnrichRounds(context.Background()); err != nil {
			log.Fatalf("enrichment failed: %v", err)
		}
	case "serve":
		serve(portNum, ctrl)
	default:
		log.Fatalf("unknown mode '%s'\n%s", os.Args[1], usage)
	}
}

func validateEnv(playerID, cookie string) error {
	missing := make([]string, 0, 2)
	if playerID == "" {
		missing = append(missing, "GEOGUESSR_PLAYER_ID")
	}
	if cookie == "" {
		missing = append(missing, "GEOGUESSR_COOKIE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}

func serve(port int, ctrl controller.C) {
	server, err := web.NewServer(port, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil
	case <-time.After(timeout):
		return errors.New("timed out waiting for WaitGroup")
	}
}

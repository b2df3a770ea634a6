package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/nowtrain/yamanote-live/config"
	"github.com/nowtrain/yamanote-live/gtfsrt"
	"github.com/nowtrain/yamanote-live/history"
	"github.com/nowtrain/yamanote-live/internal"
	"github.com/nowtrain/yamanote-live/position"
	"github.com/nowtrain/yamanote-live/server"
	"github.com/nowtrain/yamanote-live/stations"
	"github.com/nowtrain/yamanote-live/timetable"
	"github.com/nowtrain/yamanote-live/track"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML configuration file")
	flag.Parse()

	internal.InitLogging()

	// .env is optional; real deployments set ODPT_API_KEY directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded environment from .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	topo := stations.Yamanote()

	geom, err := track.LoadGeometry(cfg.Data.TrackPath, cfg.Data.StationsPath, topo)
	if err != nil {
		log.Fatalf("track geometry: %v", err)
	}
	log.Printf("loaded track geometry with %d vertices", geom.VertexCount())

	tt, err := timetable.Load(cfg.Data.TimetablePath)
	if err != nil {
		log.Fatalf("timetable: %v", err)
	}
	log.Printf("loaded timetable with %d trips", tt.TripCount())

	engine := position.NewEngine(topo, geom, position.Config{
		MaxDistanceMeters: cfg.Engine.MaxDistanceMeters,
		FreshThreshold:    time.Duration(cfg.Engine.FreshThresholdSec) * time.Second,
		StaleThreshold:    time.Duration(cfg.Engine.StaleThresholdSec) * time.Second,
	})

	var feed *gtfsrt.Client
	if cfg.ODPT.VehiclePositionsURL != "" {
		feed = gtfsrt.NewClient(cfg.ODPT.VehiclePositionsURL, cfg.APIKey,
			time.Duration(cfg.ODPT.TimeoutMS)*time.Millisecond)
	} else {
		log.Printf("no vehicle position feed configured, serving timetable only")
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(context.Background(), cfg.History.DatabasePath)
		if err != nil {
			log.Fatalf("history: %v", err)
		}
		log.Printf("recording snapshots to %s", cfg.History.DatabasePath)
	}

	srv := server.New(cfg, tt, engine, feed, store)
	srv.Start()
	srv.HandleGracefulShutdown()
}

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/rentpro/internal/fleet"
	"github.com/ukydev/rentpro/internal/store"
	"github.com/ukydev/rentpro/internal/tracking"
)

// The simulator is a development tool: it opens (and seeds, if empty) a state
// directory, turns on GPS tracking for the whole fleet and streams jittered
// location updates into the car collection until interrupted.

func main() {
	_ = godotenv.Load()

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	dataDir := os.Getenv("RENTPRO_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	st, err := store.Open(dataDir)
	if err != nil {
		log.WithError(err).Fatal("Failed to open state directory")
	}
	if err := store.SeedCars(st); err != nil {
		log.WithError(err).Fatal("Failed to seed fleet")
	}

	fleetSvc := fleet.NewService(st)
	cars := fleetSvc.Cars()

	log.WithFields(log.Fields{
		"data_dir":   dataDir,
		"fleet_size": len(cars),
		"interval":   interval,
	}).Info("Starting fleet tracking simulation")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := tracking.NewSimulator(st, interval)
	started := 0
	for _, car := range cars {
		if err := sim.Start(ctx, car.ID); err != nil {
			log.WithFields(log.Fields{"car_id": car.ID}).WithError(err).Error("Failed to start tracking")
			continue
		}
		started++
	}
	if started == 0 {
		log.Fatal("No cars to track. Exiting.")
	}
	log.WithField("tracked_cars", started).Info("Tracking started")

	<-ctx.Done()
	log.Info("Shutting down, stopping trackers")
	sim.StopAll()

	summary := fleetSvc.Summarize()
	log.WithFields(log.Fields{
		"total":     summary.Total,
		"tracking":  summary.Tracking,
		"available": summary.Available,
		"rented":    summary.Rented,
	}).Info("Final fleet summary")
}

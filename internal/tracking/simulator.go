package tracking

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/rentpro/internal/models"
	"github.com/ukydev/rentpro/internal/store"
)

var ErrCarNotFound = errors.New("car not found")

const (
	// defaultInterval between simulated GPS updates.
	defaultInterval = 5 * time.Second
	// historyLimit bounds the in-memory per-car location history.
	historyLimit = 10
	// jitterDegrees is the max coordinate offset per tick, either direction.
	jitterDegrees = 0.005
)

// Simulator runs fake GPS tracking for cars. Each tracked car gets its own
// goroutine with a cancellation path; every tick perturbs the car's last
// known position, persists the record and prepends to a bounded in-memory
// history that is lost on restart.
type Simulator struct {
	store    store.Store
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	runners map[string]*runner
	history map[string][]models.LocationUpdate

	// storeMu serializes read-modify-write cycles on the car collection so
	// concurrently tracked cars do not overwrite each other's updates.
	storeMu sync.Mutex
}

// runner is one car's tick loop. done closes when the loop has exited, so
// Stop can persist the final state without racing a last tick.
type runner struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSimulator creates a simulator over the given store. A non-positive
// interval falls back to the 5 second default.
func NewSimulator(s store.Store, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Simulator{
		store:    s,
		interval: interval,
		now:      time.Now,
		runners:  make(map[string]*runner),
		history:  make(map[string][]models.LocationUpdate),
	}
}

// Start enables tracking for a car: seeds currentLocation from the home
// location with zero speed and heading, persists, and launches the tick
// loop. Starting an already-tracked car is a no-op.
func (s *Simulator) Start(ctx context.Context, carID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.runners[carID]; running {
		return nil
	}

	s.storeMu.Lock()
	car, ok := s.findCar(carID)
	if !ok {
		s.storeMu.Unlock()
		return ErrCarNotFound
	}
	err := s.saveCar(carID, func(c *models.Car) {
		c.IsTracking = true
		c.CurrentLocation = &models.TrackedLocation{
			Lat:         car.Location.Lat,
			Lng:         car.Location.Lng,
			Address:     car.Location.Address,
			LastUpdated: s.now(),
			Speed:       0,
			Heading:     0,
		}
	})
	s.storeMu.Unlock()
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &runner{cancel: cancel, done: make(chan struct{})}
	s.runners[carID] = r
	go s.run(runCtx, carID, r.done)

	log.WithField("car_id", carID).Info("Started tracking")
	return nil
}

// Stop disables tracking for a car: cancels its tick loop and persists
// isTracking=false. The last currentLocation is left in place, stale.
// Stopping an untracked car is a no-op.
func (s *Simulator) Stop(carID string) {
	s.mu.Lock()
	r, running := s.runners[carID]
	if running {
		delete(s.runners, carID)
	}
	s.mu.Unlock()
	if !running {
		return
	}
	r.cancel()
	<-r.done

	s.storeMu.Lock()
	err := s.saveCar(carID, func(c *models.Car) {
		c.IsTracking = false
	})
	s.storeMu.Unlock()
	if err != nil {
		log.WithField("car_id", carID).WithError(err).Error("Failed to persist tracking stop")
	}
	log.WithField("car_id", carID).Info("Stopped tracking")
}

// StopAll stops every tracked car and waits for the tick loops to exit.
func (s *Simulator) StopAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.runners))
	for id := range s.runners {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	for _, id := range ids {
		s.Stop(id)
	}
}

// IsTracking reports whether a tick loop is running for the car.
func (s *Simulator) IsTracking(carID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, running := s.runners[carID]
	return running
}

// History returns the in-memory location history for a car, newest first.
func (s *Simulator) History(carID string) []models.LocationUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LocationUpdate(nil), s.history[carID]...)
}

func (s *Simulator) run(ctx context.Context, carID string, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(carID)
		}
	}
}

// tick perturbs the car's position and persists it. A car deleted mid-flight
// just skips the tick; the loop is shut down by Stop.
func (s *Simulator) tick(carID string) {
	s.storeMu.Lock()
	car, ok := s.findCar(carID)
	if !ok {
		s.storeMu.Unlock()
		return
	}

	baseLat, baseLng := car.Location.Lat, car.Location.Lng
	if car.CurrentLocation != nil {
		baseLat, baseLng = car.CurrentLocation.Lat, car.CurrentLocation.Lng
	}

	point := models.TrackedLocation{
		Lat:         baseLat + (rand.Float64()-0.5)*2*jitterDegrees,
		Lng:         baseLng + (rand.Float64()-0.5)*2*jitterDegrees,
		Address:     "Moving near " + car.Location.Address,
		LastUpdated: s.now(),
		Speed:       float64(20 + rand.Intn(60)), // 20-79 mph
		Heading:     float64(rand.Intn(360)),
	}

	err := s.saveCar(carID, func(c *models.Car) {
		c.IsTracking = true
		c.CurrentLocation = &point
	})
	s.storeMu.Unlock()
	if err != nil {
		log.WithField("car_id", carID).WithError(err).Error("Failed to persist location update")
		return
	}

	update := models.LocationUpdate{
		CarID:     carID,
		Lat:       point.Lat,
		Lng:       point.Lng,
		Address:   point.Address,
		Timestamp: point.LastUpdated,
		Speed:     point.Speed,
		Heading:   point.Heading,
	}

	s.mu.Lock()
	entries := append([]models.LocationUpdate{update}, s.history[carID]...)
	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	s.history[carID] = entries
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"car_id":  carID,
		"lat":     point.Lat,
		"lng":     point.Lng,
		"speed":   point.Speed,
		"heading": point.Heading,
	}).Debug("Location update")
}

func (s *Simulator) findCar(carID string) (models.Car, bool) {
	for _, car := range s.store.LoadCars() {
		if car.ID == carID {
			return car, true
		}
	}
	return models.Car{}, false
}

func (s *Simulator) saveCar(carID string, mutate func(*models.Car)) error {
	cars := s.store.LoadCars()
	for i := range cars {
		if cars[i].ID == carID {
			mutate(&cars[i])
			return s.store.SaveCars(cars)
		}
	}
	return nil
}

package fleet

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/rentpro/internal/models"
	"github.com/ukydev/rentpro/internal/store"
)

// Service manages the car collection: CRUD plus the derived browse views.
type Service struct {
	store store.Store
}

// NewService creates a fleet service over the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// AddCar assigns a fresh id, forces tracking off and appends the car.
func (s *Service) AddCar(car models.Car) (models.Car, error) {
	car.ID = uuid.NewString()
	car.IsTracking = false
	car.CurrentLocation = nil

	cars := append(s.store.LoadCars(), car)
	if err := s.store.SaveCars(cars); err != nil {
		return models.Car{}, fmt.Errorf("failed to add car: %w", err)
	}

	log.WithFields(log.Fields{
		"car_id": car.ID,
		"make":   car.Make,
		"model":  car.Model,
	}).Info("Added car")
	return car, nil
}

// CarUpdate carries a partial car mutation; nil fields are left unchanged.
type CarUpdate struct {
	Make            *string
	Model           *string
	Year            *int
	Price           *float64
	Image           *string
	Description     *string
	Features        []string
	Available       *bool
	Category        *models.Category
	Transmission    *models.Transmission
	FuelType        *models.FuelType
	Seats           *int
	Mileage         *int
	Location        *models.Location
	CurrentLocation *models.TrackedLocation
	IsTracking      *bool
}

func (u CarUpdate) apply(car *models.Car) {
	if u.Make != nil {
		car.Make = *u.Make
	}
	if u.Model != nil {
		car.Model = *u.Model
	}
	if u.Year != nil {
		car.Year = *u.Year
	}
	if u.Price != nil {
		car.Price = *u.Price
	}
	if u.Image != nil {
		car.Image = *u.Image
	}
	if u.Description != nil {
		car.Description = *u.Description
	}
	if u.Features != nil {
		car.Features = u.Features
	}
	if u.Available != nil {
		car.Available = *u.Available
	}
	if u.Category != nil {
		car.Category = *u.Category
	}
	if u.Transmission != nil {
		car.Transmission = *u.Transmission
	}
	if u.FuelType != nil {
		car.FuelType = *u.FuelType
	}
	if u.Seats != nil {
		car.Seats = *u.Seats
	}
	if u.Mileage != nil {
		car.Mileage = *u.Mileage
	}
	if u.Location != nil {
		car.Location = *u.Location
	}
	if u.CurrentLocation != nil {
		car.CurrentLocation = u.CurrentLocation
	}
	if u.IsTracking != nil {
		car.IsTracking = *u.IsTracking
	}
}

// UpdateCar merges the partial update into the matching record and persists
// the collection. An unknown id is a silent no-op.
func (s *Service) UpdateCar(id string, update CarUpdate) error {
	cars := s.store.LoadCars()
	found := false
	for i := range cars {
		if cars[i].ID == id {
			update.apply(&cars[i])
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	if err := s.store.SaveCars(cars); err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	return nil
}

// DeleteCar removes the matching record. An unknown id is a silent no-op.
// Outstanding bookings against the car are left as they are.
func (s *Service) DeleteCar(id string) error {
	cars := s.store.LoadCars()
	kept := cars[:0]
	for _, car := range cars {
		if car.ID != id {
			kept = append(kept, car)
		}
	}
	if len(kept) == len(cars) {
		return nil
	}
	if err := s.store.SaveCars(kept); err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	log.WithField("car_id", id).Info("Deleted car")
	return nil
}

// GetCar returns the car with the given id.
func (s *Service) GetCar(id string) (models.Car, bool) {
	for _, car := range s.store.LoadCars() {
		if car.ID == id {
			return car, true
		}
	}
	return models.Car{}, false
}

// Cars returns the full fleet in insertion order.
func (s *Service) Cars() []models.Car {
	return s.store.LoadCars()
}

// Filter is the storefront browse filter. Category "all" or empty matches
// every category; the price bounds are inclusive, and a MaxPrice of zero or
// less means no upper bound, so the zero Filter matches every rentable car.
type Filter struct {
	Query    string
	Category string
	MinPrice float64
	MaxPrice float64
}

// FilteredCars returns the rentable subset of the fleet matching the filter,
// recomputed on every call. Unavailable cars are always excluded, whatever
// the rest of the filter says. Order follows the underlying collection.
func (s *Service) FilteredCars(f Filter) []models.Car {
	query := strings.ToLower(f.Query)
	var out []models.Car
	for _, car := range s.store.LoadCars() {
		if !car.Available {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(car.Make), query) &&
			!strings.Contains(strings.ToLower(car.Model), query) {
			continue
		}
		if f.Category != "" && f.Category != "all" && string(car.Category) != f.Category {
			continue
		}
		if car.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && car.Price > f.MaxPrice {
			continue
		}
		out = append(out, car)
	}
	return out
}

// TrackingStatus classifies a car for the live-tracking dashboard.
func TrackingStatus(car models.Car) string {
	switch {
	case car.IsTracking:
		return "tracking"
	case car.Available:
		return "available"
	default:
		return "rented"
	}
}

// TrackingCars returns fleet records matching a dashboard status filter
// ("all", "tracking", "available" or "rented") and an optional make/model
// search. Unlike FilteredCars, availability is not forced.
func (s *Service) TrackingCars(query, status string) []models.Car {
	query = strings.ToLower(query)
	var out []models.Car
	for _, car := range s.store.LoadCars() {
		if query != "" &&
			!strings.Contains(strings.ToLower(car.Make), query) &&
			!strings.Contains(strings.ToLower(car.Model), query) {
			continue
		}
		if status != "" && status != "all" && TrackingStatus(car) != status {
			continue
		}
		out = append(out, car)
	}
	return out
}

// Summary holds the fleet counters shown on the tracking dashboard.
type Summary struct {
	Total     int `json:"total"`
	Tracking  int `json:"tracking"`
	Available int `json:"available"`
	Rented    int `json:"rented"`
}

// Summarize counts the fleet by dashboard status.
func (s *Service) Summarize() Summary {
	var sum Summary
	for _, car := range s.store.LoadCars() {
		sum.Total++
		if car.IsTracking {
			sum.Tracking++
		}
		if car.Available {
			sum.Available++
		} else {
			sum.Rented++
		}
	}
	return sum
}

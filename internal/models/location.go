package models

import "time"

// Location represents a geographical point with a human-readable address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// TrackedLocation is a car's last known position while GPS tracking is (or was)
// enabled. It stays on the record, stale, after tracking stops.
type TrackedLocation struct {
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Address     string    `json:"address"`
	LastUpdated time.Time `json:"last_updated"`
	Speed       float64   `json:"speed"`   // mph
	Heading     float64   `json:"heading"` // degrees, [0,360)
}

// LocationUpdate is a single simulator tick for a car, kept in the in-memory
// tracking history only. It is never persisted and is lost on restart.
type LocationUpdate struct {
	CarID     string    `json:"car_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Address   string    `json:"address"`
	Timestamp time.Time `json:"timestamp"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
}

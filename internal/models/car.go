package models

// Category represents a rental fleet segment.
type Category string

const (
	CategoryEconomy Category = "economy"
	CategoryCompact Category = "compact"
	CategoryLuxury  Category = "luxury"
	CategorySUV     Category = "suv"
	CategorySports  Category = "sports"
)

// IsValidCategory checks if a category is valid
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryEconomy, CategoryCompact, CategoryLuxury, CategorySUV, CategorySports:
		return true
	default:
		return false
	}
}

// Transmission represents a car's gearbox type.
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// FuelType represents a car's energy source.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// Car represents a fleet vehicle. Location is the fixed home position;
// CurrentLocation exists only once tracking has been enabled at least once.
type Car struct {
	ID              string           `json:"id"`
	Make            string           `json:"make"`
	Model           string           `json:"model"`
	Year            int              `json:"year"`
	Price           float64          `json:"price"` // per day
	Image           string           `json:"image"`
	Description     string           `json:"description"`
	Features        []string         `json:"features"`
	Available       bool             `json:"available"`
	Category        Category         `json:"category"`
	Transmission    Transmission     `json:"transmission"`
	FuelType        FuelType         `json:"fuel_type"`
	Seats           int              `json:"seats"`
	Mileage         int              `json:"mileage"`
	Location        Location         `json:"location"`
	CurrentLocation *TrackedLocation `json:"current_location,omitempty"`
	IsTracking      bool             `json:"is_tracking"`
}

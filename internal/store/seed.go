package store

import (
	"time"

	"github.com/ukydev/rentpro/internal/models"
)

// DefaultCars returns the starter fleet written into an empty car collection.
func DefaultCars() []models.Car {
	return []models.Car{
		{
			ID:           "1",
			Make:         "Tata",
			Model:        "Nexon EV",
			Year:         2023,
			Price:        2500,
			Image:        "https://images.pexels.com/photos/3802510/pexels-photo-3802510.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description:  "Premium electric SUV with advanced features and spacious interior.",
			Features:     []string{"Electric", "Premium Sound", "Fast Charging", "Sunroof"},
			Available:    true,
			Category:     models.CategorySUV,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelElectric,
			Seats:        5,
			Mileage:      312,
			Location:     models.Location{Lat: 28.6139, Lng: 77.2090, Address: "New Delhi, India"},
		},
		{
			ID:           "2",
			Make:         "Mahindra",
			Model:        "XUV700",
			Year:         2023,
			Price:        3200,
			Image:        "https://images.pexels.com/photos/3752806/pexels-photo-3752806.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description:  "Premium SUV with advanced safety features and luxurious interior.",
			Features:     []string{"All-Wheel Drive", "Premium Interior", "Advanced Safety", "Large Boot"},
			Available:    true,
			Category:     models.CategorySUV,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelDiesel,
			Seats:        7,
			Mileage:      16,
			Location:     models.Location{Lat: 19.0760, Lng: 72.8777, Address: "Mumbai, Maharashtra"},
		},
		{
			ID:           "3",
			Make:         "Maruti Suzuki",
			Model:        "Swift",
			Year:         2023,
			Price:        1800,
			Image:        "https://images.pexels.com/photos/3729464/pexels-photo-3729464.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description:  "Reliable and fuel-efficient hatchback perfect for city driving.",
			Features:     []string{"Fuel Efficient", "Reliable", "Comfortable", "Easy Parking"},
			Available:    true,
			Category:     models.CategoryCompact,
			Transmission: models.TransmissionManual,
			FuelType:     models.FuelGasoline,
			Seats:        5,
			Mileage:      23,
			Location:     models.Location{Lat: 12.9716, Lng: 77.5946, Address: "Bangalore, Karnataka"},
		},
		{
			ID:           "4",
			Make:         "BMW",
			Model:        "3 Series",
			Year:         2023,
			Price:        5500,
			Image:        "https://images.pexels.com/photos/1719648/pexels-photo-1719648.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description:  "Luxury sedan with premium features and exceptional performance.",
			Features:     []string{"Luxury Interior", "Sport Mode", "Premium Audio", "Leather Seats"},
			Available:    false,
			Category:     models.CategoryLuxury,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelGasoline,
			Seats:        5,
			Mileage:      15,
			Location:     models.Location{Lat: 22.5726, Lng: 88.3639, Address: "Kolkata, West Bengal"},
			CurrentLocation: &models.TrackedLocation{
				Lat:         22.5726,
				Lng:         88.3639,
				Address:     "Moving near Kolkata, West Bengal",
				LastUpdated: time.Now(),
				Speed:       45,
				Heading:     90,
			},
			IsTracking: true,
		},
		{
			ID:           "5",
			Make:         "Hyundai",
			Model:        "Creta",
			Year:         2023,
			Price:        2800,
			Image:        "https://images.pexels.com/photos/2365572/pexels-photo-2365572.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description:  "Popular compact SUV with modern features and comfortable ride.",
			Features:     []string{"Touchscreen", "Reverse Camera", "Cruise Control", "Wireless Charging"},
			Available:    true,
			Category:     models.CategorySUV,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelGasoline,
			Seats:        5,
			Mileage:      17,
			Location:     models.Location{Lat: 13.0827, Lng: 80.2707, Address: "Chennai, Tamil Nadu"},
		},
		{
			ID:           "6",
			Make:         "Honda",
			Model:        "City",
			Year:         2023,
			Price:        2200,
			Image:        "https://images.pexels.com/photos/3729464/pexels-photo-3729464.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description:  "Premium sedan with excellent fuel efficiency and comfort.",
			Features:     []string{"Spacious", "Fuel Efficient", "Premium Interior", "Safety Features"},
			Available:    true,
			Category:     models.CategoryEconomy,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelGasoline,
			Seats:        5,
			Mileage:      18,
			Location:     models.Location{Lat: 18.5204, Lng: 73.8567, Address: "Pune, Maharashtra"},
		},
	}
}

// SeedCars writes the default fleet when the car collection is empty.
func SeedCars(s Store) error {
	if len(s.LoadCars()) > 0 {
		return nil
	}
	return s.SaveCars(DefaultCars())
}

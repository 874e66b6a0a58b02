package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/rentpro/internal/models"
)

// Collection file names under the state directory. One JSON blob per
// collection, plus the singleton session record.
const (
	usersFile    = "users.json"
	carsFile     = "cars.json"
	bookingsFile = "bookings.json"
	sessionFile  = "current_user.json"
)

// Store defines the persistence contract shared by every manager. Loads are
// total: a corrupt or absent blob reads as the empty collection. Saves fully
// overwrite the prior value for that collection — last write wins.
type Store interface {
	LoadUsers() []models.User
	SaveUsers(users []models.User) error

	LoadCars() []models.Car
	SaveCars(cars []models.Car) error

	LoadBookings() []models.Booking
	SaveBookings(bookings []models.Booking) error

	LoadSession() (models.Session, bool)
	SaveSession(session models.Session) error
	ClearSession() error
}

// FileStore persists each collection as a JSON file in a state directory.
type FileStore struct {
	dir string
}

// Open creates the state directory if needed and returns a store over it.
func Open(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the state directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// LoadUsers loads the user collection.
func (s *FileStore) LoadUsers() []models.User {
	var users []models.User
	s.load(usersFile, &users)
	return users
}

// SaveUsers overwrites the user collection.
func (s *FileStore) SaveUsers(users []models.User) error {
	return s.save(usersFile, users)
}

// LoadCars loads the car collection.
func (s *FileStore) LoadCars() []models.Car {
	var cars []models.Car
	s.load(carsFile, &cars)
	return cars
}

// SaveCars overwrites the car collection.
func (s *FileStore) SaveCars(cars []models.Car) error {
	return s.save(carsFile, cars)
}

// LoadBookings loads the booking collection.
func (s *FileStore) LoadBookings() []models.Booking {
	var bookings []models.Booking
	s.load(bookingsFile, &bookings)
	return bookings
}

// SaveBookings overwrites the booking collection.
func (s *FileStore) SaveBookings(bookings []models.Booking) error {
	return s.save(bookingsFile, bookings)
}

// LoadSession loads the persisted session, reporting whether one exists.
func (s *FileStore) LoadSession() (models.Session, bool) {
	var session models.Session
	if !s.load(sessionFile, &session) || session.User.ID == "" {
		return models.Session{}, false
	}
	return session, true
}

// SaveSession overwrites the persisted session.
func (s *FileStore) SaveSession(session models.Session) error {
	return s.save(sessionFile, session)
}

// ClearSession removes the persisted session. Missing is not an error.
func (s *FileStore) ClearSession() error {
	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// load reads a JSON blob into out. Absent or corrupt blobs leave out untouched
// and report false; corruption is logged, never surfaced to callers.
func (s *FileStore) load(name string, out interface{}) bool {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.WithFields(log.Fields{"file": name}).WithError(err).Warn("Discarding corrupt state blob")
		return false
	}
	return true
}

func (s *FileStore) save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

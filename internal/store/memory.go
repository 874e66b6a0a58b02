package store

import (
	"sync"

	"github.com/ukydev/rentpro/internal/models"
)

// MemoryStore is an in-memory Store used as a test double and for throwaway
// sessions. It applies the same overwrite semantics as the file store and is
// safe for concurrent use so simulator tests stay race-free.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	cars       []models.Car
	bookings   []models.Booking
	session    models.Session
	hasSession bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

func (s *MemoryStore) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.User(nil), users...)
	return nil
}

func (s *MemoryStore) LoadCars() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Car(nil), s.cars...)
}

func (s *MemoryStore) SaveCars(cars []models.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = append([]models.Car(nil), cars...)
	return nil
}

func (s *MemoryStore) LoadBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.bookings...)
}

func (s *MemoryStore) SaveBookings(bookings []models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]models.Booking(nil), bookings...)
	return nil
}

func (s *MemoryStore) LoadSession() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.hasSession
}

func (s *MemoryStore) SaveSession(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.hasSession = true
	return nil
}

func (s *MemoryStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{}
	s.hasSession = false
	return nil
}

package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/rentpro/internal/models"
	"github.com/ukydev/rentpro/internal/store"
)

var (
	ErrCarNotFound       = errors.New("car not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCancelWindow      = errors.New("cancellation window closed")
)

// cancelWindow is how long before the start date an approved booking can
// still be cancelled by its owner.
const cancelWindow = 24 * time.Hour

// Service manages the booking collection and its status lifecycle.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService creates a booking service over the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// CreateRequest carries the caller-supplied fields of a new booking. Status
// and PaymentStatus default to pending when empty.
type CreateRequest struct {
	UserID          string
	CarID           string
	StartDate       time.Time
	EndDate         time.Time
	PickupLocation  models.Location
	DropoffLocation models.Location
	Status          models.BookingStatus
	PaymentStatus   models.PaymentStatus
	PaymentID       string
	Notes           string
}

// Create appends a booking, deriving totalAmount from the car's current
// per-day price once, at creation time. Date overlaps with existing bookings
// on the same car are not checked; double-booking is accepted.
func (s *Service) Create(req CreateRequest) (models.Booking, error) {
	var car models.Car
	found := false
	for _, c := range s.store.LoadCars() {
		if c.ID == req.CarID {
			car = c
			found = true
			break
		}
	}
	if !found {
		return models.Booking{}, ErrCarNotFound
	}

	if req.Status == "" {
		req.Status = models.BookingPending
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = models.PaymentPending
	}

	b := models.Booking{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		CarID:           req.CarID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		TotalAmount:     float64(models.RentalDays(req.StartDate, req.EndDate)) * car.Price,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		PaymentID:       req.PaymentID,
		CreatedAt:       s.now(),
		Notes:           req.Notes,
	}

	bookings := append(s.store.LoadBookings(), b)
	if err := s.store.SaveBookings(bookings); err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	log.WithFields(log.Fields{
		"booking_id": b.ID,
		"car_id":     b.CarID,
		"user_id":    b.UserID,
		"total":      b.TotalAmount,
	}).Info("Created booking")
	return b, nil
}

// Update carries a partial booking mutation; nil fields are left unchanged.
// It is the raw merge operation and does not consult the transition table.
type Update struct {
	Status        *models.BookingStatus
	PaymentStatus *models.PaymentStatus
	PaymentID     *string
	Notes         *string
}

// UpdateBooking merges the partial update into the matching record and
// persists. An unknown id is a silent no-op.
func (s *Service) UpdateBooking(id string, update Update) error {
	bookings := s.store.LoadBookings()
	found := false
	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		if update.Status != nil {
			bookings[i].Status = *update.Status
		}
		if update.PaymentStatus != nil {
			bookings[i].PaymentStatus = *update.PaymentStatus
		}
		if update.PaymentID != nil {
			bookings[i].PaymentID = *update.PaymentID
		}
		if update.Notes != nil {
			bookings[i].Notes = *update.Notes
		}
		found = true
		break
	}
	if !found {
		return nil
	}
	if err := s.store.SaveBookings(bookings); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

// Get returns the booking with the given id.
func (s *Service) Get(id string) (models.Booking, bool) {
	for _, b := range s.store.LoadBookings() {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// ByUser returns every booking owned by the user, in collection order.
func (s *Service) ByUser(userID string) []models.Booking {
	var out []models.Booking
	for _, b := range s.store.LoadBookings() {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// All returns the full booking collection, for admin views.
func (s *Service) All() []models.Booking {
	return s.store.LoadBookings()
}

// Approve moves a pending or rejected booking to approved.
func (s *Service) Approve(id string) error {
	return s.transition(id, models.BookingApproved)
}

// Reject moves a pending booking to rejected.
func (s *Service) Reject(id string) error {
	return s.transition(id, models.BookingRejected)
}

// Complete moves an approved booking to completed.
func (s *Service) Complete(id string) error {
	return s.transition(id, models.BookingCompleted)
}

// Cancel is the user-initiated cancellation. Pending bookings cancel at any
// time; approved bookings only while more than 24 hours remain before the
// start date.
func (s *Service) Cancel(id string) error {
	b, ok := s.Get(id)
	if !ok {
		return ErrBookingNotFound
	}
	// Strictly more than 24 hours must remain; the boundary instant refuses.
	if b.Status == models.BookingApproved && !s.now().Before(b.StartDate.Add(-cancelWindow)) {
		return ErrCancelWindow
	}
	return s.transition(id, models.BookingCancelled)
}

func (s *Service) transition(id string, to models.BookingStatus) error {
	bookings := s.store.LoadBookings()
	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		from := bookings[i].Status
		if !models.CanTransition(from, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
		bookings[i].Status = to
		if err := s.store.SaveBookings(bookings); err != nil {
			return fmt.Errorf("failed to save booking transition: %w", err)
		}
		log.WithFields(log.Fields{
			"booking_id": id,
			"from":       from,
			"to":         to,
		}).Info("Booking status changed")
		return nil
	}
	return ErrBookingNotFound
}

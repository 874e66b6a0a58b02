package models

import (
	"math"
	"time"
)

// BookingStatus represents the persisted lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every persisted status in display order.
var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingApproved,
	BookingRejected,
	BookingCompleted,
	BookingCancelled,
}

// CanTransition reports whether the persisted status may move from -> to.
// Completed and cancelled are terminal; rejected can only be re-approved.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingApproved || to == BookingRejected || to == BookingCancelled
	case BookingApproved:
		return to == BookingCompleted || to == BookingCancelled
	case BookingRejected:
		return to == BookingApproved
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves the status. Rejected is not
// terminal because of the explicit re-approval path.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Booking represents a rental transaction. TotalAmount is fixed at creation
// time and is not recomputed when the car's price changes.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	CarID           string        `json:"car_id"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	PickupLocation  Location      `json:"pickup_location"`
	DropoffLocation Location      `json:"dropoff_location"`
	TotalAmount     float64       `json:"total_amount"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentID       string        `json:"payment_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	Notes           string        `json:"notes,omitempty"`
}

// RentalDays counts billable days between two dates, rounding partial days up.
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// EffectiveStatus is the display state derived from the calendar, independent
// of the persisted status field. The two can diverge: an approved booking
// whose end date has passed reads as effective completed while the stored
// status stays approved.
type EffectiveStatus string

const (
	EffectiveUpcoming  EffectiveStatus = "upcoming"
	EffectiveActive    EffectiveStatus = "active"
	EffectiveCompleted EffectiveStatus = "completed"
	EffectiveCancelled EffectiveStatus = "cancelled"
)

// Effective derives the booking's display state at the given instant.
// Rejected and cancelled bookings read as cancelled regardless of timing.
func (b *Booking) Effective(now time.Time) EffectiveStatus {
	if b.Status == BookingCancelled || b.Status == BookingRejected {
		return EffectiveCancelled
	}
	switch {
	case now.Before(b.StartDate):
		return EffectiveUpcoming
	case now.After(b.EndDate):
		return EffectiveCompleted
	default:
		return EffectiveActive
	}
}

package booking

import (
	"math"

	"github.com/ukydev/rentpro/internal/models"
)

// Revenue sums totalAmount over paid bookings. Recomputed per call.
func (s *Service) Revenue() float64 {
	var total float64
	for _, b := range s.store.LoadBookings() {
		if b.PaymentStatus == models.PaymentPaid {
			total += b.TotalAmount
		}
	}
	return total
}

// CompletionRate is the rounded percentage of bookings in completed status,
// 0 when the collection is empty.
func (s *Service) CompletionRate() int {
	bookings := s.store.LoadBookings()
	if len(bookings) == 0 {
		return 0
	}
	completed := 0
	for _, b := range bookings {
		if b.Status == models.BookingCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(bookings)) * 100))
}

// StatusCounts is the per-status histogram over the full collection.
func (s *Service) StatusCounts() map[models.BookingStatus]int {
	counts := make(map[models.BookingStatus]int, len(models.BookingStatuses))
	for _, status := range models.BookingStatuses {
		counts[status] = 0
	}
	for _, b := range s.store.LoadBookings() {
		counts[b.Status]++
	}
	return counts
}

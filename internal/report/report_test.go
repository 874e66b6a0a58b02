package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/rentpro/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testBookings() []models.Booking {
	return []models.Booking{
		{CreatedAt: now, TotalAmount: 6000, Status: models.BookingCompleted, PaymentStatus: models.PaymentPaid},
		{CreatedAt: now.AddDate(0, 0, -1), TotalAmount: 2000, Status: models.BookingApproved, PaymentStatus: models.PaymentPending},
		{CreatedAt: now.AddDate(0, 0, -1), TotalAmount: 3000, Status: models.BookingRejected, PaymentStatus: models.PaymentPaid},
		// Outside the 30-day daily window, inside monthly/yearly
		{CreatedAt: now.AddDate(0, -2, 0), TotalAmount: 1000, Status: models.BookingPending, PaymentStatus: models.PaymentPaid},
	}
}

func TestGenerate_Daily(t *testing.T) {
	rows := Generate(testBookings(), PeriodDaily, now)
	require.Len(t, rows, 30)

	last := rows[len(rows)-1]
	assert.Equal(t, "Jun 15", last.Period)
	assert.Equal(t, 1, last.Bookings)
	assert.Equal(t, 6000.0, last.Revenue)
	assert.Equal(t, 1, last.Completed)

	prev := rows[len(rows)-2]
	assert.Equal(t, 2, prev.Bookings)
	assert.Equal(t, 3000.0, prev.Revenue, "pending payments carry no revenue")
	assert.Equal(t, 1, prev.Approved)
	assert.Equal(t, 1, prev.Rejected)

	total := 0
	for _, r := range rows {
		total += r.Bookings
	}
	assert.Equal(t, 3, total, "the two-month-old booking is outside the daily window")
}

func TestGenerate_Monthly(t *testing.T) {
	rows := Generate(testBookings(), PeriodMonthly, now)
	require.Len(t, rows, 12)

	last := rows[len(rows)-1]
	assert.Equal(t, "Jun 2025", last.Period)
	assert.Equal(t, 3, last.Bookings)
	assert.Equal(t, 9000.0, last.Revenue)

	april := rows[len(rows)-3]
	assert.Equal(t, "Apr 2025", april.Period)
	assert.Equal(t, 1, april.Bookings)
	assert.Equal(t, 1000.0, april.Revenue)
}

func TestGenerate_Monthly_MonthEnd(t *testing.T) {
	monthEnd := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{CreatedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), TotalAmount: 500, Status: models.BookingApproved, PaymentStatus: models.PaymentPaid},
		{CreatedAt: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), TotalAmount: 700, Status: models.BookingCompleted, PaymentStatus: models.PaymentPaid},
	}

	rows := Generate(bookings, PeriodMonthly, monthEnd)
	require.Len(t, rows, 12)

	seen := map[string]bool{}
	for _, r := range rows {
		assert.False(t, seen[r.Period], "duplicate bucket %s", r.Period)
		seen[r.Period] = true
	}
	assert.True(t, seen["Feb 2025"])
	assert.True(t, seen["Mar 2025"])
	assert.Equal(t, "Apr 2024", rows[0].Period)
	assert.Equal(t, "Mar 2025", rows[len(rows)-1].Period)

	total := 0
	for _, r := range rows {
		total += r.Bookings
	}
	assert.Equal(t, 2, total, "each booking lands in exactly one bucket")
}

func TestGenerate_Yearly(t *testing.T) {
	rows := Generate(testBookings(), PeriodYearly, now)
	require.Len(t, rows, 5)

	last := rows[len(rows)-1]
	assert.Equal(t, "2025", last.Period)
	assert.Equal(t, 4, last.Bookings)
	assert.Equal(t, 10000.0, last.Revenue)
	assert.Equal(t, 0, rows[0].Bookings)

	var approved, rejected, completed int
	for _, r := range rows {
		approved += r.Approved
		rejected += r.Rejected
		completed += r.Completed
	}
	assert.Equal(t, 1, approved)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, completed)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{
		{Period: "Jun 15", Bookings: 2, Revenue: 9000, Approved: 1, Rejected: 0, Completed: 1},
	}
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Period,Bookings,Revenue,Approved,Rejected,Completed", lines[0])
	assert.Equal(t, "Jun 15,2,9000,1,0,1", lines[1])
}

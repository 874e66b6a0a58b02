package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ukydev/rentpro/internal/models"
)

// Period selects the bucketing granularity of a report.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Buckets per period: last 30 days, last 12 months, last 5 years.
const (
	dailyBuckets   = 30
	monthlyBuckets = 12
	yearlyBuckets  = 5
)

// Row is one report bucket, oldest first. Revenue counts paid bookings only.
type Row struct {
	Period    string  `json:"period"`
	Bookings  int     `json:"bookings"`
	Revenue   float64 `json:"revenue"`
	Approved  int     `json:"approved"`
	Rejected  int     `json:"rejected"`
	Completed int     `json:"completed"`
}

// Generate buckets bookings by createdAt over a trailing window ending now.
func Generate(bookings []models.Booking, period Period, now time.Time) []Row {
	switch period {
	case PeriodMonthly:
		return generate(bookings, monthlyBuckets, now,
			func(now time.Time, i int) (time.Time, time.Time) {
				// Subtract whole months by index; AddDate on a month-end day
				// normalizes into the wrong month (Mar 31 - 1 month = Mar 3).
				start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
				return start, start.AddDate(0, 1, 0)
			},
			func(start time.Time) string { return start.Format("Jan 2006") })
	case PeriodYearly:
		return generate(bookings, yearlyBuckets, now,
			func(now time.Time, i int) (time.Time, time.Time) {
				start := time.Date(now.Year()-i, 1, 1, 0, 0, 0, 0, now.Location())
				return start, start.AddDate(1, 0, 0)
			},
			func(start time.Time) string { return start.Format("2006") })
	default:
		return generate(bookings, dailyBuckets, now,
			func(now time.Time, i int) (time.Time, time.Time) {
				ref := now.AddDate(0, 0, -i)
				start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
				return start, start.AddDate(0, 0, 1)
			},
			func(start time.Time) string { return start.Format("Jan 02") })
	}
}

func generate(
	bookings []models.Booking,
	buckets int,
	now time.Time,
	bounds func(now time.Time, i int) (time.Time, time.Time),
	label func(start time.Time) string,
) []Row {
	rows := make([]Row, 0, buckets)
	for i := buckets - 1; i >= 0; i-- {
		start, end := bounds(now, i)
		row := Row{Period: label(start)}
		for _, b := range bookings {
			if b.CreatedAt.Before(start) || !b.CreatedAt.Before(end) {
				continue
			}
			row.Bookings++
			if b.PaymentStatus == models.PaymentPaid {
				row.Revenue += b.TotalAmount
			}
			switch b.Status {
			case models.BookingApproved:
				row.Approved++
			case models.BookingRejected:
				row.Rejected++
			case models.BookingCompleted:
				row.Completed++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV exports report rows with a fixed header.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Period", "Bookings", "Revenue", "Approved", "Rejected", "Completed"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Period,
			strconv.Itoa(row.Bookings),
			strconv.FormatFloat(row.Revenue, 'f', -1, 64),
			strconv.Itoa(row.Approved),
			strconv.Itoa(row.Rejected),
			strconv.Itoa(row.Completed),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

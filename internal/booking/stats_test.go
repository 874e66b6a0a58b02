package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/rentpro/internal/models"
)

func TestCompletionRate_EmptyCollection(t *testing.T) {
	svc, _ := newService(t)
	assert.Equal(t, 0, svc.CompletionRate())
}

func TestCompletionRate_Rounding(t *testing.T) {
	svc, _ := newService(t)

	// 1 of 3 completed -> round(33.33) = 33
	for i := 0; i < 3; i++ {
		create(t, svc, CreateRequest{UserID: "user-1", CarID: "car-1",
			StartDate: testNow, EndDate: testNow.AddDate(0, 0, 1)})
	}
	first := svc.All()[0]
	require.NoError(t, svc.Approve(first.ID))
	require.NoError(t, svc.Complete(first.ID))

	assert.Equal(t, 33, svc.CompletionRate())
}

func TestRevenue_PaidOnly(t *testing.T) {
	svc, _ := newService(t)

	create(t, svc, CreateRequest{UserID: "user-1", CarID: "car-1",
		StartDate: testNow, EndDate: testNow.AddDate(0, 0, 2),
		PaymentStatus: models.PaymentPaid}) // 4000
	create(t, svc, CreateRequest{UserID: "user-1", CarID: "car-2",
		StartDate: testNow, EndDate: testNow.AddDate(0, 0, 1),
		PaymentStatus: models.PaymentPending}) // not counted
	create(t, svc, CreateRequest{UserID: "user-2", CarID: "car-2",
		StartDate: testNow, EndDate: testNow.AddDate(0, 0, 3),
		PaymentStatus: models.PaymentFailed}) // not counted

	assert.Equal(t, 4000.0, svc.Revenue())
}

func TestStatusCounts(t *testing.T) {
	svc, _ := newService(t)

	a := create(t, svc, CreateRequest{UserID: "u", CarID: "car-1",
		StartDate: testNow.AddDate(0, 0, 7), EndDate: testNow.AddDate(0, 0, 8)})
	b := create(t, svc, CreateRequest{UserID: "u", CarID: "car-1",
		StartDate: testNow.AddDate(0, 0, 7), EndDate: testNow.AddDate(0, 0, 8)})
	create(t, svc, CreateRequest{UserID: "u", CarID: "car-1",
		StartDate: testNow.AddDate(0, 0, 7), EndDate: testNow.AddDate(0, 0, 8)})

	require.NoError(t, svc.Approve(a.ID))
	require.NoError(t, svc.Reject(b.ID))

	counts := svc.StatusCounts()
	assert.Equal(t, 1, counts[models.BookingPending])
	assert.Equal(t, 1, counts[models.BookingApproved])
	assert.Equal(t, 1, counts[models.BookingRejected])
	assert.Equal(t, 0, counts[models.BookingCompleted])
	assert.Equal(t, 0, counts[models.BookingCancelled])
}

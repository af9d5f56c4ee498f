package service

import (
	"context"
	"testing"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationService_DefaultsAndStatus(t *testing.T) {
	svc := NewReservationService(newMockReservationRepository())
	ctx := context.Background()
	date, err := domain.ParseDate("2024-02-14")
	require.NoError(t, err)

	res, err := svc.Create(ctx, domain.CreateReservation{
		FullName: "Ada", PhoneNumber: "555", Date: date, Time: "19:30", CustomerCount: ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, res.Status)

	// pending straight to completed is allowed
	done, err := svc.SetStatus(ctx, res.ID, domain.ReservationCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCompleted, done.Status)

	_, err = svc.SetStatus(ctx, res.ID, domain.ReservationStatus("no-show"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReservationService_FindByDate(t *testing.T) {
	svc := NewReservationService(newMockReservationRepository())
	ctx := context.Background()
	feb14, _ := domain.ParseDate("2024-02-14")
	feb15, _ := domain.ParseDate("2024-02-15")

	for _, d := range []domain.Date{feb14, feb15, feb14} {
		_, err := svc.Create(ctx, domain.CreateReservation{
			FullName: "Ada", PhoneNumber: "555", Date: d, Time: "19:30", CustomerCount: ptr(2),
		})
		require.NoError(t, err)
	}

	onDate, err := svc.Find(ctx, &feb14)
	require.NoError(t, err)
	assert.Len(t, onDate, 2)

	all, err := svc.Find(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFAQService_ActiveAndAll(t *testing.T) {
	svc := NewFAQService(newMockFAQRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateFAQ{Question: "Open late?", Answer: "Yes"})
	require.NoError(t, err)
	hidden, err := svc.Create(ctx, domain.CreateFAQ{Question: "Old?", Answer: "Yes", IsActive: ptr(false), Order: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, hidden.Order)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.True(t, active[0].IsActive)
	assert.Equal(t, 0, active[0].Order)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"museumpass/internal/data/entity"
	"museumpass/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListMuseums(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewCatalogService(repo, NewBookingRules(500, 60, fixedClock(fixedNow)), 80, zap.NewNop())
	ctx := context.Background()

	all, err := svc.ListMuseums(ctx, &request.ListMuseumsRequest{PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 2}})
	require.NoError(t, err)
	require.Len(t, all.Data, 2)
	assert.Equal(t, "National Museum", all.Data[0].Title)
	assert.Equal(t, int64(3), all.Pagination.Total)
	assert.Equal(t, 2, all.Pagination.TotalPages)

	byState, err := svc.ListMuseums(ctx, &request.ListMuseumsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Location:         "west bengal",
	})
	require.NoError(t, err)
	require.Len(t, byState.Data, 1)
	assert.Equal(t, "Indian Museum", byState.Data[0].Title)

	byCity, err := svc.ListMuseums(ctx, &request.ListMuseumsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Location:         "Hyderabad",
	})
	require.NoError(t, err)
	require.Len(t, byCity.Data, 1)
	assert.Equal(t, "Salar Jung Museum", byCity.Data[0].Title)

	none, err := svc.ListMuseums(ctx, &request.ListMuseumsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Location:         "Paris",
	})
	require.NoError(t, err)
	assert.Empty(t, none.Data)
	assert.Equal(t, int64(0), none.Pagination.Total)
}

func TestAvailability(t *testing.T) {
	repo := newTestRepo(t)
	afternoon := time.Date(2026, 10, 18, 15, 10, 0, 0, time.UTC)
	svc := NewCatalogService(repo, NewBookingRules(500, 60, fixedClock(afternoon)), 80, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Ledger.Append(ctx, &entity.Booking{
		ID:       uuid.New(),
		Museum:   "National Museum",
		Visitors: entity.Visitors{Adults: 30, Kids: 12},
		Date:     "2026-10-18",
	}))

	today, err := svc.Availability(ctx, &request.AvailabilityRequest{Museum: "national museum", Date: "2026-10-18"})
	require.NoError(t, err)
	assert.Equal(t, "National Museum", today.Museum)
	assert.Equal(t, 500, today.Capacity)
	assert.Equal(t, 42, today.Booked)
	assert.Equal(t, 458, today.Remaining)
	assert.Equal(t, []string{"4:00 PM", "5:00 PM"}, today.Slots)

	later, err := svc.Availability(ctx, &request.AvailabilityRequest{Museum: "National Museum", Date: "2026-10-25"})
	require.NoError(t, err)
	assert.Equal(t, 0, later.Booked)
	assert.Equal(t, TimeSlots, later.Slots)
}

func TestAvailabilityErrors(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewCatalogService(repo, NewBookingRules(500, 60, fixedClock(fixedNow)), 80, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Availability(ctx, &request.AvailabilityRequest{Date: "2026-10-20"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Availability(ctx, &request.AvailabilityRequest{Museum: "Louvre Paris", Date: "2026-10-20"})
	assert.ErrorIs(t, err, ErrMuseumNotFound)

	_, err = svc.Availability(ctx, &request.AvailabilityRequest{Museum: "National Museum", Date: "2026-10-01"})
	assert.ErrorIs(t, err, ErrPastDate)
}

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/hotel"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

func TestGormRoomRepository_SaveAndFind(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewGormRoomRepository(db)
	ctx := context.Background()

	room := createPersistedRoom(t, db, "305")

	found, err := repo.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "305", found.Number)
	assert.Equal(t, hotel.RoomStatusAvailable, found.Status)
	assert.True(t, valueobject.NewMoneyBDTFromFloat(4500).Amount().Equal(found.Rate))

	byNumber, err := repo.FindByNumber(ctx, "305")
	require.NoError(t, err)
	assert.Equal(t, room.ID, byNumber.ID)

	_, err = repo.FindByNumber(ctx, "999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormRoomRepository_FindAll_FiltersByStatus(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewGormRoomRepository(db)
	ctx := context.Background()

	createPersistedRoom(t, db, "305")
	occupied := createPersistedRoom(t, db, "306")
	occupied.MarkOccupied()
	require.NoError(t, repo.Save(ctx, occupied))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = hotel.RoomStatusAvailable

	rooms, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "305", rooms[0].Number)
}

func TestGormRoomRepository_FindAvailableBetween(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewGormRoomRepository(db)
	bookingRepo := NewGormBookingRepository(db, "BK")
	ctx := context.Background()

	free := createPersistedRoom(t, db, "305")
	booked := createPersistedRoom(t, db, "306")
	maintenance := createPersistedRoom(t, db, "307")
	maintenance.MarkMaintenance()
	require.NoError(t, repo.Save(ctx, maintenance))

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	createPersistedBooking(t, bookingRepo, booked, "BK-2026-0001", checkIn, checkOut)

	t.Run("excludes booked and maintenance rooms", func(t *testing.T) {
		rooms, err := repo.FindAvailableBetween(ctx, checkIn, checkOut)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, free.ID, rooms[0].ID)
	})

	t.Run("booked room frees up outside its stay", func(t *testing.T) {
		rooms, err := repo.FindAvailableBetween(ctx,
			checkOut,
			time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})
}

func TestGormRoomRepository_Delete(t *testing.T) {
	db := setupBookingTestDB(t)
	repo := NewGormRoomRepository(db)
	ctx := context.Background()

	room := createPersistedRoom(t, db, "305")

	require.NoError(t, repo.Delete(ctx, room.ID))

	_, err := repo.FindByID(ctx, room.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

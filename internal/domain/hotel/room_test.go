package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared/valueobject"
)

func TestNewRoom(t *testing.T) {
	t.Run("creates available room", func(t *testing.T) {
		room, err := NewRoom("101", RoomTypeDouble, 2, valueobject.NewMoneyBDTFromInt(5000))
		require.NoError(t, err)

		assert.Equal(t, "101", room.Number)
		assert.Equal(t, RoomTypeDouble, room.Type)
		assert.Equal(t, RoomStatusAvailable, room.Status)
		assert.True(t, room.IsAvailable())
		assert.True(t, room.GetRateMoney().Amount().Equal(room.Rate))
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		_, err := NewRoom("", RoomTypeDouble, 2, valueobject.NewMoneyBDTFromInt(5000))
		assert.Error(t, err)

		_, err = NewRoom("101", RoomType("PENTHOUSE"), 2, valueobject.NewMoneyBDTFromInt(5000))
		assert.Error(t, err)

		_, err = NewRoom("101", RoomTypeDouble, 0, valueobject.NewMoneyBDTFromInt(5000))
		assert.Error(t, err)

		_, err = NewRoom("101", RoomTypeDouble, 2, valueobject.ZeroBDT())
		assert.Error(t, err)
	})
}

func TestRoom_StatusTransitions(t *testing.T) {
	room, err := NewRoom("305", RoomTypeSuite, 4, valueobject.NewMoneyBDTFromInt(8000))
	require.NoError(t, err)

	room.MarkOccupied()
	assert.Equal(t, RoomStatusOccupied, room.Status)
	assert.False(t, room.IsAvailable())

	room.MarkAvailable()
	assert.True(t, room.IsAvailable())

	room.MarkMaintenance()
	assert.Equal(t, RoomStatusMaintenance, room.Status)
	assert.False(t, room.IsAvailable())
}

func TestRoom_Updates(t *testing.T) {
	room, err := NewRoom("305", RoomTypeSuite, 4, valueobject.NewMoneyBDTFromInt(8000))
	require.NoError(t, err)

	require.NoError(t, room.UpdateRate(valueobject.NewMoneyBDTFromInt(9000)))
	assert.True(t, room.Rate.Equal(valueobject.NewMoneyBDTFromInt(9000).Amount()))
	assert.Error(t, room.UpdateRate(valueobject.ZeroBDT()))

	require.NoError(t, room.UpdateDetails(RoomTypeFamily, 5, 3, "Corner suite"))
	assert.Equal(t, RoomTypeFamily, room.Type)
	assert.Error(t, room.UpdateDetails(RoomType("X"), 5, 3, ""))
}

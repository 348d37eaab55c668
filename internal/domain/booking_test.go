package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporzo/turf-booking-service/pkg/types"
)

func slotBooking(status PaymentStatus, hours ...int) *Booking {
	return &Booking{
		BookingID:     "BK-1",
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Type:          TypeSlots,
		SlotHours:     hours,
		Amount:        200,
		PaymentStatus: status,
	}
}

func flexBooking(t *testing.T, startStr, endStr string) *Booking {
	t.Helper()

	start, err := types.NewTimeStringFromString(startStr)
	require.NoError(t, err)
	end, err := types.NewTimeStringFromString(endStr)
	require.NoError(t, err)

	return &Booking{
		BookingID:     "BK-flex",
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Type:          TypeFlexible,
		FlexStartTime: &start,
		FlexEndTime:   &end,
		Amount:        400,
		PaymentStatus: StatusPending,
	}
}

func TestBooking_OccupiesSlots(t *testing.T) {
	assert.True(t, slotBooking(StatusPending, 10).OccupiesSlots())
	assert.True(t, slotBooking(StatusCompleted, 10).OccupiesSlots())

	assert.False(t, slotBooking(StatusCancelled, 10).OccupiesSlots())
	assert.False(t, slotBooking(StatusFailed, 10).OccupiesSlots())
	assert.False(t, slotBooking(StatusRefunded, 10).OccupiesSlots())
}

func TestBooking_CoversHour_Slots(t *testing.T) {
	b := slotBooking(StatusPending, 10, 12)

	assert.True(t, b.CoversHour(10))
	assert.True(t, b.CoversHour(12))
	assert.False(t, b.CoversHour(11))
}

func TestBooking_CoversHour_Flexible(t *testing.T) {
	b := flexBooking(t, "10:00", "13:00")

	// Полуоткрытый диапазон [10, 13)
	assert.True(t, b.CoversHour(10))
	assert.True(t, b.CoversHour(12))
	assert.False(t, b.CoversHour(13))
	assert.False(t, b.CoversHour(9))

	assert.Equal(t, []int{10, 11, 12}, b.CoveredHours())
}

func TestBooking_Validate(t *testing.T) {
	assert.NoError(t, slotBooking(StatusPending, 10).Validate())
	assert.NoError(t, flexBooking(t, "10:00", "12:00").Validate())

	noID := slotBooking(StatusPending, 10)
	noID.BookingID = ""
	assert.ErrorIs(t, noID.Validate(), ErrInvalidBooking)

	assert.ErrorIs(t, slotBooking(StatusPending).Validate(), ErrInvalidBooking)
	assert.ErrorIs(t, slotBooking(StatusPending, 24).Validate(), ErrInvalidBooking)
	assert.ErrorIs(t, slotBooking("unknown", 10).Validate(), ErrInvalidBooking)

	reversed := flexBooking(t, "13:00", "10:00")
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidBooking)

	missing := flexBooking(t, "10:00", "12:00")
	missing.FlexEndTime = nil
	assert.ErrorIs(t, missing.Validate(), ErrInvalidBooking)
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, slotBooking(StatusPending, 10).CanBeCancelled())
	assert.True(t, slotBooking(StatusCompleted, 10).CanBeCancelled())
	assert.False(t, slotBooking(StatusCancelled, 10).CanBeCancelled())
	assert.False(t, slotBooking(StatusFailed, 10).CanBeCancelled())
}

func TestSlotConflictError(t *testing.T) {
	err := NewSlotConflictError(1, 2, "2025-06-15", []int{12, 10, 11})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, []int{10, 11, 12}, err.Hours)
	assert.Contains(t, err.Error(), "10,11,12")
	assert.Contains(t, err.Error(), "2025-06-15")
}

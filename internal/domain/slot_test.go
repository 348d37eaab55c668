package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_RegularWindow(t *testing.T) {
	slots := GenerateSlots(OperatingWindow{StartHour: 6, EndHour: 23})

	// Окно включительно с обеих сторон: 6..23 - это 18 слотов
	require.Len(t, slots, 18)
	assert.Equal(t, 6, slots[0].Hour)
	assert.Equal(t, "06:00", slots[0].StartTime)
	assert.Equal(t, "07:00", slots[0].EndTime)
	assert.Equal(t, 23, slots[len(slots)-1].Hour)
}

func TestGenerateSlots_Continuous24h(t *testing.T) {
	slots := GenerateSlots(OperatingWindow{IsContinuous24h: true})

	require.Len(t, slots, 24)
	assert.Equal(t, 0, slots[0].Hour)
	assert.Equal(t, 23, slots[23].Hour)
}

func TestGenerateSlots_SingleHourWindow(t *testing.T) {
	slots := GenerateSlots(OperatingWindow{StartHour: 10, EndHour: 10})

	require.Len(t, slots, 1)
	assert.Equal(t, 10, slots[0].Hour)
}

func TestNewSlot_LastHourWrapsToMidnight(t *testing.T) {
	slot := NewSlot(23)

	assert.Equal(t, "23:00", slot.StartTime)
	assert.Equal(t, "00:00", slot.EndTime)
	assert.Equal(t, "23:00 - 00:00", slot.Display())
}

func TestOperatingWindow_Validate(t *testing.T) {
	assert.NoError(t, OperatingWindow{StartHour: 6, EndHour: 23}.Validate())
	assert.NoError(t, OperatingWindow{IsContinuous24h: true}.Validate())

	assert.ErrorIs(t, OperatingWindow{StartHour: 10, EndHour: 9}.Validate(), ErrInvalidOperatingWindow)
	assert.ErrorIs(t, OperatingWindow{StartHour: -1, EndHour: 5}.Validate(), ErrInvalidOperatingWindow)
	assert.ErrorIs(t, OperatingWindow{StartHour: 0, EndHour: 24}.Validate(), ErrInvalidOperatingWindow)
}

func TestOperatingWindow_ContainsHour(t *testing.T) {
	w := OperatingWindow{StartHour: 6, EndHour: 22}

	assert.True(t, w.ContainsHour(6))
	assert.True(t, w.ContainsHour(22))
	assert.False(t, w.ContainsHour(5))
	assert.False(t, w.ContainsHour(23))
	assert.False(t, w.ContainsHour(-1))

	allDay := OperatingWindow{IsContinuous24h: true}
	assert.True(t, allDay.ContainsHour(0))
	assert.True(t, allDay.ContainsHour(23))
	assert.False(t, allDay.ContainsHour(24))
}

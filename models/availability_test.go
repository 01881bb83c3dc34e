package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeeklyAvailability(t *testing.T) {
	av := NewWeeklyAvailability()
	require.Len(t, av, 7)
	for _, day := range AllWeekdays {
		ds, ok := av[day]
		require.True(t, ok, day)
		assert.False(t, ds.Enabled)
		assert.Empty(t, ds.Slots)
	}
}

func TestCloneIsDeep(t *testing.T) {
	av := NewWeeklyAvailability()
	av[Monday] = DaySchedule{
		Enabled: true,
		Slots:   []TimeSlot{{Start: "09:00", End: "10:00", Period: PeriodMorning}},
	}

	clone := av.Clone()
	clone[Monday].Slots[0].Start = "11:00"
	clone[Tuesday] = DaySchedule{Enabled: true}

	assert.Equal(t, "09:00", av[Monday].Slots[0].Start)
	assert.False(t, av[Tuesday].Enabled)
}

func TestParseWeekday(t *testing.T) {
	for _, day := range AllWeekdays {
		got, err := ParseWeekday(string(day))
		require.NoError(t, err)
		assert.Equal(t, day, got)
	}

	_, err := ParseWeekday("Monday")
	assert.Error(t, err, "full names are not the stored form")
	_, err = ParseWeekday("")
	assert.Error(t, err)
}

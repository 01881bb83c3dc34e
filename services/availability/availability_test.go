package availability

import (
	"testing"

	"teacherdekho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekWith(day models.Weekday, ds models.DaySchedule) models.WeeklyAvailability {
	av := models.NewWeeklyAvailability()
	av[day] = ds
	return av
}

func TestToggleDayPreservesSlots(t *testing.T) {
	av := weekWith(models.Monday, models.DaySchedule{
		Enabled: true,
		Slots:   []models.TimeSlot{{Start: "09:00", End: "10:00", Period: models.PeriodMorning}},
	})

	off := ToggleDay(av, models.Monday)
	assert.False(t, off[models.Monday].Enabled)
	assert.Len(t, off[models.Monday].Slots, 1, "disabling hides the day, slots survive")

	on := ToggleDay(off, models.Monday)
	assert.True(t, on[models.Monday].Enabled)
	assert.Equal(t, "09:00", on[models.Monday].Slots[0].Start)

	// The input week is never mutated.
	assert.True(t, av[models.Monday].Enabled)
}

func TestAddSlotUsesPeriodDefault(t *testing.T) {
	av := models.NewWeeklyAvailability()

	out, err := AddSlot(av, models.Tuesday, models.PeriodEvening)
	require.NoError(t, err)
	require.Len(t, out[models.Tuesday].Slots, 1)
	assert.Equal(t, models.TimeSlot{Start: "18:00", End: "19:00", Period: models.PeriodEvening}, out[models.Tuesday].Slots[0])

	// Duplicates are allowed: slots are never merged.
	out, err = AddSlot(out, models.Tuesday, models.PeriodEvening)
	require.NoError(t, err)
	assert.Len(t, out[models.Tuesday].Slots, 2)

	_, err = AddSlot(av, models.Tuesday, models.Period("Dawn"))
	assert.True(t, IsValidation(err))
}

func TestRemoveSlotByIndex(t *testing.T) {
	av := weekWith(models.Monday, models.DaySchedule{
		Enabled: true,
		Slots: []models.TimeSlot{
			{Start: "09:00", End: "10:00", Period: models.PeriodMorning},
			{Start: "11:00", End: "12:00", Period: models.PeriodMorning},
		},
	})

	out, err := RemoveSlot(av, models.Monday, 0)
	require.NoError(t, err)
	require.Len(t, out[models.Monday].Slots, 1)
	assert.Equal(t, "11:00", out[models.Monday].Slots[0].Start)

	_, err = RemoveSlot(av, models.Monday, 2)
	assert.True(t, IsValidation(err))
	_, err = RemoveSlot(av, models.Monday, -1)
	assert.True(t, IsValidation(err))
}

func TestSetSlotTimeValidatesAgainstPeriodMenu(t *testing.T) {
	av := weekWith(models.Monday, models.DaySchedule{
		Enabled: true,
		Slots:   []models.TimeSlot{{Start: "09:00", End: "10:00", Period: models.PeriodMorning}},
	})

	out, err := SetSlotTime(av, models.Monday, 0, FieldStart, "07:00")
	require.NoError(t, err)
	assert.Equal(t, "07:00", out[models.Monday].Slots[0].Start)

	out, err = SetSlotTime(av, models.Monday, 0, FieldEnd, "11:00")
	require.NoError(t, err)
	assert.Equal(t, "11:00", out[models.Monday].Slots[0].End)

	// 14:00 belongs to the afternoon menu, not morning.
	_, err = SetSlotTime(av, models.Monday, 0, FieldStart, "14:00")
	assert.True(t, IsValidation(err))

	_, err = SetSlotTime(av, models.Monday, 0, SlotField("middle"), "09:00")
	assert.True(t, IsValidation(err))
}

func TestSetSlotTimeAllowsInvertedBoundaries(t *testing.T) {
	av := weekWith(models.Saturday, models.DaySchedule{
		Enabled: true,
		Slots:   []models.TimeSlot{{Start: "21:00", End: "22:00", Period: models.PeriodNight}},
	})

	// A night slot may end past midnight, so end < start is representable.
	out, err := SetSlotTime(av, models.Saturday, 0, FieldEnd, "02:00")
	require.NoError(t, err)
	assert.Equal(t, "02:00", out[models.Saturday].Slots[0].End)
}

func TestApplyMasterScheduleOverwritesTargetDays(t *testing.T) {
	av := weekWith(models.Monday, models.DaySchedule{
		Enabled: true,
		Slots:   []models.TimeSlot{{Start: "06:00", End: "07:00", Period: models.PeriodMorning}},
	})
	sundaySlots := []models.TimeSlot{{Start: "10:00", End: "11:00", Period: models.PeriodMorning}}
	av[models.Sunday] = models.DaySchedule{Enabled: true, Slots: sundaySlots}

	master := models.MasterSchedule{
		Slots: []models.TimeSlot{
			{Start: "17:00", End: "18:00", Period: models.PeriodEvening},
			{Start: "19:00", End: "20:00", Period: models.PeriodEvening},
		},
		Days: []models.Weekday{models.Monday, models.Tuesday, models.Wednesday},
	}

	out, err := ApplyMasterSchedule(av, master)
	require.NoError(t, err)

	// Target days carry exactly the template, enabled, prior slots gone.
	for _, day := range master.Days {
		ds := out[day]
		assert.True(t, ds.Enabled, day)
		assert.Equal(t, master.Slots, ds.Slots, day)
	}
	// Non-target days are untouched.
	assert.Equal(t, sundaySlots, out[models.Sunday].Slots)

	// Editing one applied day later must not leak into its siblings.
	out, err = SetSlotTime(out, models.Monday, 0, FieldStart, "18:00")
	require.NoError(t, err)
	assert.Equal(t, "17:00", out[models.Tuesday].Slots[0].Start)
}

func TestApplyMasterScheduleValidatesTemplate(t *testing.T) {
	av := models.NewWeeklyAvailability()

	_, err := ApplyMasterSchedule(av, models.MasterSchedule{
		Slots: []models.TimeSlot{{Start: "05:00", End: "07:00", Period: models.PeriodMorning}},
		Days:  []models.Weekday{models.Monday},
	})
	assert.True(t, IsValidation(err), "05:00 is outside the morning menu")

	_, err = ApplyMasterSchedule(av, models.MasterSchedule{
		Slots: []models.TimeSlot{{Start: "09:00", End: "10:00", Period: models.PeriodMorning}},
		Days:  []models.Weekday{models.Weekday("Caturday")},
	})
	assert.True(t, IsValidation(err))
}

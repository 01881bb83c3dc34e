package availability

import (
	"teacherdekho/models"
)

// The editor operations below are pure: they take the current availability
// and return the edited copy. Persistence happens only in Save, so a failed
// write never corrupts the in-memory state the teacher is editing.

// ToggleDay flips a day's enabled flag. Slots are preserved when disabling -
// the day is hidden, not cleared - so an accidental toggle loses nothing.
func ToggleDay(av models.WeeklyAvailability, day models.Weekday) models.WeeklyAvailability {
	out := av.Clone()
	ds := out[day]
	ds.Enabled = !ds.Enabled
	out[day] = ds
	return out
}

// AddSlot appends the period's default slot to a day. Overlapping slots
// within the same day or period are permitted and never merged.
func AddSlot(av models.WeeklyAvailability, day models.Weekday, period models.Period) (models.WeeklyAvailability, error) {
	def, ok := defaultSlots[period]
	if !ok {
		return nil, newValidationError("unknown period %q", period)
	}
	out := av.Clone()
	ds := out[day]
	ds.Slots = append(ds.Slots, def)
	out[day] = ds
	return out, nil
}

// RemoveSlot removes a day's slot by positional index.
func RemoveSlot(av models.WeeklyAvailability, day models.Weekday, index int) (models.WeeklyAvailability, error) {
	ds := av[day]
	if index < 0 || index >= len(ds.Slots) {
		return nil, newValidationError("no slot at position %d on %s", index, day)
	}
	out := av.Clone()
	ds = out[day]
	ds.Slots = append(ds.Slots[:index], ds.Slots[index+1:]...)
	out[day] = ds
	return out, nil
}

// SlotField names the editable boundary of a slot.
type SlotField string

const (
	FieldStart SlotField = "start"
	FieldEnd   SlotField = "end"
)

// SetSlotTime updates one boundary of one slot. The value must come from the
// slot period's hour menu; out-of-range values are rejected, but start >= end
// is representable because Night wraps midnight.
func SetSlotTime(av models.WeeklyAvailability, day models.Weekday, index int, field SlotField, value string) (models.WeeklyAvailability, error) {
	ds := av[day]
	if index < 0 || index >= len(ds.Slots) {
		return nil, newValidationError("no slot at position %d on %s", index, day)
	}
	slot := ds.Slots[index]
	if !validHour(slot.Period, value) {
		return nil, newValidationError("%s is not a selectable %s time", value, slot.Period)
	}

	out := av.Clone()
	ds = out[day]
	switch field {
	case FieldStart:
		ds.Slots[index].Start = value
	case FieldEnd:
		ds.Slots[index].End = value
	default:
		return nil, newValidationError("unknown slot field %q", field)
	}
	out[day] = ds
	return out, nil
}

// ApplyMasterSchedule bulk-applies a slot template: every target day is
// overwritten with an enabled copy of the template, replacing whatever was
// there. Days outside the target set are untouched.
func ApplyMasterSchedule(av models.WeeklyAvailability, master models.MasterSchedule) (models.WeeklyAvailability, error) {
	for _, slot := range master.Slots {
		if err := validateSlot(slot); err != nil {
			return nil, err
		}
	}
	out := av.Clone()
	for _, day := range master.Days {
		if _, err := models.ParseWeekday(string(day)); err != nil {
			return nil, newValidationError("unknown weekday %q", day)
		}
		out[day] = models.DaySchedule{
			Enabled: true,
			Slots:   models.CloneSlots(master.Slots),
		}
	}
	return out, nil
}

package availability

import (
	"fmt"

	"teacherdekho/models"
)

// periodBounds holds the inclusive hour range of one period. Night ends past
// midnight, so its end hour is numerically below its start.
type periodBounds struct {
	startHour int
	endHour   int
}

var periodRanges = map[models.Period]periodBounds{
	models.PeriodMorning:   {6, 12},
	models.PeriodAfternoon: {12, 17},
	models.PeriodEvening:   {17, 21},
	models.PeriodNight:     {21, 4}, // wraps past midnight
}

// defaultSlots is what AddSlot appends for each period.
var defaultSlots = map[models.Period]models.TimeSlot{
	models.PeriodMorning:   {Start: "09:00", End: "10:00", Period: models.PeriodMorning},
	models.PeriodAfternoon: {Start: "14:00", End: "15:00", Period: models.PeriodAfternoon},
	models.PeriodEvening:   {Start: "18:00", End: "19:00", Period: models.PeriodEvening},
	models.PeriodNight:     {Start: "21:00", End: "22:00", Period: models.PeriodNight},
}

// HourOptions enumerates the selectable "HH:00" values for a period. Slot
// boundaries must come from this menu, so no cross-period slot is
// representable. Night spans midnight and yields 21..23 followed by 0..4.
func HourOptions(period models.Period) []string {
	bounds, ok := periodRanges[period]
	if !ok {
		return nil
	}
	var opts []string
	for h := bounds.startHour; ; h = (h + 1) % 24 {
		opts = append(opts, fmt.Sprintf("%02d:00", h))
		if h == bounds.endHour {
			break
		}
	}
	return opts
}

// validHour reports whether value is selectable for the period.
func validHour(period models.Period, value string) bool {
	for _, opt := range HourOptions(period) {
		if opt == value {
			return true
		}
	}
	return false
}

// validateSlot checks both boundaries of a slot against its period's menu.
// start < end is deliberately not enforced: a Night slot legitimately wraps
// past midnight (21:00 -> 04:00).
func validateSlot(slot models.TimeSlot) error {
	if _, ok := periodRanges[slot.Period]; !ok {
		return newValidationError("unknown period %q", slot.Period)
	}
	if !validHour(slot.Period, slot.Start) {
		return newValidationError("%s is not a selectable %s start time", slot.Start, slot.Period)
	}
	if !validHour(slot.Period, slot.End) {
		return newValidationError("%s is not a selectable %s end time", slot.End, slot.Period)
	}
	return nil
}

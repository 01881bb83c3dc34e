package models

// Period buckets a time slot into one of four fixed parts of the day.
type Period string

const (
	PeriodMorning   Period = "Morning"
	PeriodAfternoon Period = "Afternoon"
	PeriodEvening   Period = "Evening"
	PeriodNight     Period = "Night"
)

// TimeSlot is a single start-end interval tagged with its period. Start and
// end are hour-granularity "HH:MM" strings drawn from the period's hour menu;
// Night wraps past midnight (21:00-04:00), so start < end is not enforced.
type TimeSlot struct {
	Start  string `bson:"start" json:"start"`
	End    string `bson:"end" json:"end"`
	Period Period `bson:"period" json:"period"`
}

// DaySchedule is one weekday's entry in a teacher's availability. Disabling a
// day hides its slots but does not delete them.
type DaySchedule struct {
	Enabled bool       `bson:"enabled" json:"enabled"`
	Slots   []TimeSlot `bson:"slots" json:"slots"`
}

// WeeklyAvailability maps weekday names to their schedules. It is persisted
// whole as one field on the teacher document; last write wins.
type WeeklyAvailability map[Weekday]DaySchedule

// NewWeeklyAvailability returns an availability with every day present,
// disabled and empty.
func NewWeeklyAvailability() WeeklyAvailability {
	av := make(WeeklyAvailability, len(AllWeekdays))
	for _, d := range AllWeekdays {
		av[d] = DaySchedule{}
	}
	return av
}

// Clone deep-copies the availability so edits never alias stored state.
func (av WeeklyAvailability) Clone() WeeklyAvailability {
	out := make(WeeklyAvailability, len(av))
	for d, ds := range av {
		slots := make([]TimeSlot, len(ds.Slots))
		copy(slots, ds.Slots)
		out[d] = DaySchedule{Enabled: ds.Enabled, Slots: slots}
	}
	return out
}

// CloneSlots copies a slot template, used by the master-schedule bulk apply.
func CloneSlots(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out
}

// MasterSchedule is a reusable slot template applied to multiple weekdays at
// once. Applying it overwrites each target day; it is never persisted itself.
type MasterSchedule struct {
	Slots []TimeSlot `json:"slots"`
	Days  []Weekday  `json:"days"`
}

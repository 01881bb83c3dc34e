package models

// WizardStep numbers the enrollment wizard's linear states.
type WizardStep int

const (
	StepPlanSelection WizardStep = 1
	StepCourseDetails WizardStep = 2
	StepSchedule      WizardStep = 3
	StepReview        WizardStep = 4
)

// SchedulePreset is the silver-plan schedule sub-option. Presets set the day
// set directly; only "custom" unlocks manual toggling.
type SchedulePreset string

const (
	PresetNone   SchedulePreset = ""
	PresetMWF    SchedulePreset = "mwf"
	PresetTTS    SchedulePreset = "tts"
	PresetCustom SchedulePreset = "custom"
)

// EnrollmentDraft is the transient state of an in-progress enrollment wizard.
// It lives only in the draft cache until submission and is discarded on
// cancel; Submit converts it into a persisted Booking.
type EnrollmentDraft struct {
	DraftID      string         `json:"draftId"`
	StudentID    string         `json:"studentId"`
	TeacherID    string         `json:"teacherId"`
	Step         WizardStep     `json:"step"`
	PlanType     PlanType       `json:"planType,omitempty"`
	Preset       SchedulePreset `json:"preset,omitempty"`
	SelectedDays []Weekday      `json:"selectedDays,omitempty"`
	Date         string         `json:"date,omitempty"` // first session, "2006-01-02"
	Slot         string         `json:"slot,omitempty"` // e.g. "18:00 - 19:00"
	Subject      string         `json:"subject,omitempty"`
	Grade        string         `json:"grade,omitempty"`
	Topic        string         `json:"topic,omitempty"`
	Description  string         `json:"description,omitempty"`
	Members      []GroupMember  `json:"members,omitempty"`
	HourlyRate   float64        `json:"hourlyRate,omitempty"`
	MonthlyPrice float64        `json:"monthlyPrice,omitempty"`
}

// HasDay reports whether the draft's weekday set contains d.
func (d *EnrollmentDraft) HasDay(day Weekday) bool {
	for _, sel := range d.SelectedDays {
		if sel == day {
			return true
		}
	}
	return false
}

// CheckoutDraft is the quick-flow terminal payload, carried to the checkout
// screen as transient state rather than written to the store.
type CheckoutDraft struct {
	TeacherID   string   `json:"teacherId"`
	TeacherName string   `json:"teacherName"`
	StudentID   string   `json:"studentId"`
	Date        string   `json:"date"`
	Slot        TimeSlot `json:"slot"`
	Subject     string   `json:"subject,omitempty"`
	Grade       string   `json:"grade,omitempty"`
	Topic       string   `json:"topic,omitempty"`
	Amount      float64  `json:"amount"`
}

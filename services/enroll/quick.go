package enroll

import (
	"context"
	"strings"
	"time"

	"teacherdekho/models"
)

// QuickDay is one entry in the quick-flow scheduling window: a calendar date
// and the slots the teacher has declared for that weekday.
type QuickDay struct {
	Date    string            `json:"date"`
	Weekday models.Weekday    `json:"weekday"`
	Slots   []models.TimeSlot `json:"slots"`
}

// quickWindowDays is the rolling scheduling window of the quick flow.
const quickWindowDays = 7

// QuickOptions builds the 7-day rolling window starting today, filtered to
// the days the teacher has enabled. Days with no enabled schedule are
// omitted entirely.
func (s *DefaultEnrollmentService) QuickOptions(teacherID string) ([]QuickDay, error) {
	teacher, err := s.TeacherRepo.GetByID(teacherID)
	if err != nil {
		return nil, newValidationError("teacher not found")
	}

	now := nowFunc()
	var days []QuickDay
	for i := 0; i < quickWindowDays; i++ {
		d := now.AddDate(0, 0, i)
		wd := weekdayOf(d)
		ds, ok := teacher.Availability[wd]
		if !ok || !ds.Enabled || len(ds.Slots) == 0 {
			continue
		}
		days = append(days, QuickDay{
			Date:    d.Format("2006-01-02"),
			Weekday: wd,
			Slots:   models.CloneSlots(ds.Slots),
		})
	}
	return days, nil
}

// SetQuickSchedule picks a date and slot for the quick flow. The date must
// fall inside the rolling window and the slot must be one the teacher has
// declared for that weekday.
func (s *DefaultEnrollmentService) SetQuickSchedule(draftID, date string, slot models.TimeSlot) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, newValidationError("invalid date %q", date)
	}

	now := nowFunc()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := today.AddDate(0, 0, quickWindowDays)
	if day.Before(today) || !day.Before(limit) {
		return nil, newValidationError("date must fall within the next %d days", quickWindowDays)
	}

	teacher, err := s.TeacherRepo.GetByID(draft.TeacherID)
	if err != nil {
		return nil, newValidationError("teacher not found")
	}
	ds, ok := teacher.Availability[weekdayOf(day)]
	if !ok || !ds.Enabled {
		return nil, newValidationError("the teacher is not available on %s", weekdayOf(day))
	}
	declared := false
	for _, ts := range ds.Slots {
		if ts == slot {
			declared = true
			break
		}
	}
	if !declared {
		return nil, newValidationError("slot %s - %s is not offered on %s", slot.Start, slot.End, weekdayOf(day))
	}

	draft.Date = date
	draft.Slot = slot.Start + " - " + slot.End
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// BuildCheckout ends the quick flow: it assembles the transient checkout
// payload and discards the draft. Nothing is persisted; the checkout screen
// owns the eventual write.
func (s *DefaultEnrollmentService) BuildCheckout(draftID string) (*models.CheckoutDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.PlanType == "" {
		return nil, newValidationError("please select a plan first")
	}
	if draft.Date == "" || draft.Slot == "" {
		return nil, newValidationError("please choose a date and a time slot")
	}

	plan, err := models.PlanByType(draft.PlanType)
	if err != nil {
		return nil, newValidationError("unknown plan %q", draft.PlanType)
	}

	teacher, err := s.TeacherRepo.GetByID(draft.TeacherID)
	if err != nil {
		return nil, newValidationError("teacher not found")
	}

	slot := parseSlotLabel(draft.Slot)
	checkout := &models.CheckoutDraft{
		TeacherID:   draft.TeacherID,
		TeacherName: teacher.Name,
		StudentID:   draft.StudentID,
		Date:        draft.Date,
		Slot:        slot,
		Subject:     draft.Subject,
		Grade:       draft.Grade,
		Topic:       draft.Topic,
		Amount:      plan.MonthlyPrice(draft.HourlyRate),
	}

	if err := s.Drafts.Delete(ctx, draftID); err != nil {
		return nil, err
	}
	return checkout, nil
}

// weekdayOf maps a calendar date onto the document weekday names.
func weekdayOf(t time.Time) models.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	default:
		return models.Sunday
	}
}

// parseSlotLabel splits a "HH:MM - HH:MM" label back into a TimeSlot.
func parseSlotLabel(label string) models.TimeSlot {
	parts := strings.SplitN(label, " - ", 2)
	if len(parts) == 2 {
		return models.TimeSlot{Start: parts[0], End: parts[1]}
	}
	return models.TimeSlot{Start: label}
}

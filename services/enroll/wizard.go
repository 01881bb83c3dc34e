package enroll

import (
	"context"
	"strings"

	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start opens a new enrollment draft at the plan-selection step. The
// teacher's hourly rate is resolved once here so every later price display
// reads the same snapshot.
func (s *DefaultEnrollmentService) Start(studentID, teacherID string) (*models.EnrollmentDraft, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	teacher, err := s.TeacherRepo.GetByID(teacherID)
	if err != nil {
		logger.Warn("Start: teacher lookup failed", zap.String("teacherID", teacherID), zap.Error(err))
		return nil, newValidationError("teacher not found")
	}

	draft := &models.EnrollmentDraft{
		DraftID:    uuid.New().String(),
		StudentID:  studentID,
		TeacherID:  teacherID,
		Step:       models.StepPlanSelection,
		HourlyRate: models.ResolveHourlyRate(teacher),
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	logger.Info("enrollment draft started",
		zap.String("draftID", draft.DraftID),
		zap.String("studentID", studentID),
		zap.String("teacherID", teacherID))
	return draft, nil
}

// Get loads a draft without mutating it.
func (s *DefaultEnrollmentService) Get(draftID string) (*models.EnrollmentDraft, error) {
	return s.Drafts.Get(context.Background(), draftID)
}

// SelectPlan sets the plan and recomputes the displayed monthly price. It
// does not auto-advance. Day-set side effects happen here, as an explicit
// consequence of the selection event: platinum fills all seven weekdays,
// and switching to a smaller plan clears a selection that no longer fits.
func (s *DefaultEnrollmentService) SelectPlan(draftID string, planType models.PlanType) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	plan, err := models.PlanByType(planType)
	if err != nil {
		return nil, newValidationError("unknown plan %q", planType)
	}

	draft.PlanType = plan.Type
	draft.MonthlyPrice = plan.MonthlyPrice(draft.HourlyRate)

	switch plan.Type {
	case models.PlanPlatinum:
		draft.SelectedDays = append([]models.Weekday(nil), models.AllWeekdays...)
		draft.Preset = models.PresetNone
	default:
		if len(draft.SelectedDays) > plan.RequiredDays {
			draft.SelectedDays = nil
		}
		if plan.Type != models.PlanSilver {
			draft.Preset = models.PresetNone
		}
	}

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Advance validates the current step and moves the draft forward. Each step
// has its own gate; a failed gate leaves the draft untouched.
func (s *DefaultEnrollmentService) Advance(draftID string) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	switch draft.Step {
	case models.StepPlanSelection:
		// No hard block: an unset plan is a silent no-op.
		if draft.PlanType == "" {
			return draft, nil
		}

	case models.StepCourseDetails:
		var missing []string
		if strings.TrimSpace(draft.Subject) == "" {
			missing = append(missing, "subject")
		}
		if strings.TrimSpace(draft.Grade) == "" {
			missing = append(missing, "grade")
		}
		if strings.TrimSpace(draft.Topic) == "" {
			missing = append(missing, "topic")
		}
		if len(missing) > 0 {
			return nil, newValidationError("please fill in %s before continuing", strings.Join(missing, ", "))
		}

	case models.StepSchedule:
		if draft.Date == "" || draft.Slot == "" {
			return nil, newValidationError("please choose a date and a time slot")
		}
		plan, err := models.PlanByType(draft.PlanType)
		if err != nil {
			return nil, newValidationError("please select a plan first")
		}
		if len(draft.SelectedDays) != plan.RequiredDays {
			return nil, newValidationError("the %s plan requires exactly %d days per week, %d selected",
				plan.Type, plan.RequiredDays, len(draft.SelectedDays))
		}

	case models.StepReview:
		return nil, ErrAtReview
	}

	draft.Step++
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Retreat steps back unconditionally. No validation, no field loss.
func (s *DefaultEnrollmentService) Retreat(draftID string) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepPlanSelection {
		draft.Step--
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetCourseDetails sets the step-2 fields. Values are stored as given;
// validation happens on Advance.
func (s *DefaultEnrollmentService) SetCourseDetails(draftID, subject, grade, topic, description string) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.Subject = subject
	draft.Grade = grade
	draft.Topic = topic
	draft.Description = description
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetSchedule sets the first-session date and time slot.
func (s *DefaultEnrollmentService) SetSchedule(draftID, date, slot string) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.Date = date
	draft.Slot = slot
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddMember appends a group member. Name and phone must be non-empty; phone
// format is deliberately not validated.
func (s *DefaultEnrollmentService) AddMember(draftID, name, phone string) (*models.EnrollmentDraft, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return nil, newValidationError("member name and phone are required")
	}
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.Members = append(draft.Members, models.GroupMember{Name: name, Phone: phone})
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// RemoveMember removes a group member by positional index.
func (s *DefaultEnrollmentService) RemoveMember(draftID string, index int) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Members) {
		return nil, newValidationError("no member at position %d", index)
	}
	draft.Members = append(draft.Members[:index], draft.Members[index+1:]...)
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Cancel discards the draft.
func (s *DefaultEnrollmentService) Cancel(draftID string) error {
	return s.Drafts.Delete(context.Background(), draftID)
}

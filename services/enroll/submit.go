package enroll

import (
	"context"
	"fmt"
	"time"

	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit converts a reviewed draft into a persisted booking. Nothing is
// written before the single create, so a failure needs no rollback: the
// draft stays at the review step and the student can retry.
func (s *DefaultEnrollmentService) Submit(draftID string) (*models.Booking, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, newValidationError("draft is not at the review step")
	}

	plan, err := models.PlanByType(draft.PlanType)
	if err != nil {
		return nil, newValidationError("please select a plan first")
	}
	if len(draft.SelectedDays) != plan.RequiredDays {
		return nil, newValidationError("the %s plan requires exactly %d days per week, %d selected",
			plan.Type, plan.RequiredDays, len(draft.SelectedDays))
	}

	scheduledAt, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return nil, newValidationError("invalid session date %q", draft.Date)
	}

	var studentName string
	if student, serr := s.StudentRepo.GetByID(draft.StudentID); serr == nil {
		studentName = student.Name
	} else {
		logger.Warn("Submit: student lookup failed", zap.String("studentID", draft.StudentID), zap.Error(serr))
	}

	booking := &models.Booking{
		ID:               uuid.New().String(),
		TeacherID:        draft.TeacherID,
		StudentID:        draft.StudentID,
		StudentName:      studentName,
		Subject:          draft.Subject,
		Grade:            draft.Grade,
		Topic:            draft.Topic,
		Description:      draft.Description,
		ScheduledAt:      scheduledAt,
		TimeSlot:         draft.Slot,
		Status:           models.BookingPending,
		IsDemo:           true, // first session is the free trial
		PaymentStatus:    models.PaymentPending,
		PlanType:         plan.Type,
		SessionsPerMonth: plan.SessionsPerMonth,
		TotalSessions:    plan.SessionsPerMonth,
		MonthlyPrice:     plan.MonthlyPrice(draft.HourlyRate),
		Members:          draft.Members,
		SelectedDays:     draft.SelectedDays,
		CreatedAt:        time.Now(),
	}

	if err := s.BookingRepo.Create(booking); err != nil {
		logger.Error("Submit: booking create failed",
			zap.String("draftID", draftID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.Drafts.Delete(ctx, draftID); err != nil {
		// The booking exists; a stale draft only costs its TTL.
		logger.Warn("Submit: failed to delete draft after booking", zap.String("draftID", draftID), zap.Error(err))
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("teacherID", booking.TeacherID),
		zap.String("studentID", booking.StudentID),
		zap.String("plan", string(booking.PlanType)))
	return booking, nil
}

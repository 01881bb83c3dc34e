package booking

import (
	"context"
	"fmt"

	bookingRepo "teacherdekho/database/repository/booking"
	"teacherdekho/models"
	"teacherdekho/services/notification"
	"teacherdekho/utils"

	"go.uber.org/zap"
)

// BookingService covers the post-submission lifecycle of a booking: teacher
// accept/reject, listings, and payment.
type BookingService interface {
	GetByID(id string) (*models.Booking, error)
	ListByStudent(studentID string) ([]models.Booking, error)
	ListByTeacher(teacherID string) ([]models.Booking, error)
	Accept(bookingID string) (*models.Booking, error)
	Reject(bookingID string) (*models.Booking, error)
	CreatePaymentIntent(bookingID string) (string, error)
	MarkPaid(bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
}

func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBookingService) ListByStudent(studentID string) ([]models.Booking, error) {
	return s.Repo.ListByStudent(studentID)
}

func (s *DefaultBookingService) ListByTeacher(teacherID string) ([]models.Booking, error) {
	return s.Repo.ListByTeacher(teacherID)
}

// Accept moves a pending booking to active and notifies the student. A push
// failure is logged, never surfaced: the status change already happened.
func (s *DefaultBookingService) Accept(bookingID string) (*models.Booking, error) {
	return s.decide(bookingID, models.BookingActive, "Booking accepted",
		"Your tutor accepted the request. The demo session is on!")
}

// Reject moves a pending booking to rejected and notifies the student.
func (s *DefaultBookingService) Reject(bookingID string) (*models.Booking, error) {
	return s.decide(bookingID, models.BookingRejected, "Booking declined",
		"Your tutor declined the request.")
}

func (s *DefaultBookingService) decide(bookingID string, status models.BookingStatus, title, body string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingPending {
		return nil, fmt.Errorf("booking %s is %s, only pending bookings can be decided", bookingID, b.Status)
	}

	if err := s.Repo.SetStatus(bookingID, status); err != nil {
		return nil, err
	}
	b.Status = status

	if s.Notifier != nil {
		data := map[string]string{"bookingId": b.ID, "status": string(status)}
		if err := s.Notifier.SendStudentPush(context.Background(), b.StudentID, title, body, data); err != nil {
			logger.Warn("booking decision push failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	return b, nil
}

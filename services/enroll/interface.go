package enroll

import (
	"time"

	bookingRepo "teacherdekho/database/repository/booking"
	studentRepo "teacherdekho/database/repository/student"
	teacherRepo "teacherdekho/database/repository/teacher"
	"teacherdekho/models"
)

// EnrollmentService drives the plan -> details -> schedule -> review wizard
// for enrolling a student with a teacher, plus the quick checkout variant.
type EnrollmentService interface {
	Start(studentID, teacherID string) (*models.EnrollmentDraft, error)
	Get(draftID string) (*models.EnrollmentDraft, error)
	SelectPlan(draftID string, planType models.PlanType) (*models.EnrollmentDraft, error)
	Advance(draftID string) (*models.EnrollmentDraft, error)
	Retreat(draftID string) (*models.EnrollmentDraft, error)
	SelectPreset(draftID string, preset models.SchedulePreset) (*models.EnrollmentDraft, error)
	ToggleWeekday(draftID string, day models.Weekday) (*models.EnrollmentDraft, error)
	SetCourseDetails(draftID, subject, grade, topic, description string) (*models.EnrollmentDraft, error)
	SetSchedule(draftID, date, slot string) (*models.EnrollmentDraft, error)
	AddMember(draftID, name, phone string) (*models.EnrollmentDraft, error)
	RemoveMember(draftID string, index int) (*models.EnrollmentDraft, error)
	Submit(draftID string) (*models.Booking, error)
	Cancel(draftID string) error

	QuickOptions(teacherID string) ([]QuickDay, error)
	SetQuickSchedule(draftID, date string, slot models.TimeSlot) (*models.EnrollmentDraft, error)
	BuildCheckout(draftID string) (*models.CheckoutDraft, error)
}

// DefaultEnrollmentService is the production implementation.
type DefaultEnrollmentService struct {
	Drafts      DraftStore
	TeacherRepo teacherRepo.TeacherRepository
	StudentRepo studentRepo.StudentRepository
	BookingRepo bookingRepo.BookingRepository
}

// nowFunc is swapped in tests that pin the quick-flow rolling window.
var nowFunc = time.Now

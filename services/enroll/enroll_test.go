package enroll

import (
	"context"
	"errors"

	"teacherdekho/models"

	"go.mongodb.org/mongo-driver/bson"
)

// memDraftStore is an in-memory DraftStore for tests. Save and Get copy the
// draft so tests observe the same value semantics as the Redis store.
type memDraftStore struct {
	drafts map[string]*models.EnrollmentDraft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]*models.EnrollmentDraft)}
}

func (s *memDraftStore) Save(_ context.Context, draft *models.EnrollmentDraft) error {
	copied := *draft
	s.drafts[draft.DraftID] = &copied
	return nil
}

func (s *memDraftStore) Get(_ context.Context, draftID string) (*models.EnrollmentDraft, error) {
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := *draft
	return &copied, nil
}

func (s *memDraftStore) Delete(_ context.Context, draftID string) error {
	delete(s.drafts, draftID)
	return nil
}

type fakeTeacherRepo struct {
	teachers map[string]*models.Teacher
}

func (r *fakeTeacherRepo) Create(t *models.Teacher) error { r.teachers[t.ID] = t; return nil }
func (r *fakeTeacherRepo) UpdateWithDocument(string, bson.M) error {
	return nil
}
func (r *fakeTeacherRepo) Delete(id string) error { delete(r.teachers, id); return nil }
func (r *fakeTeacherRepo) GetByID(id string) (*models.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return nil, errors.New("teacher not found")
	}
	return t, nil
}
func (r *fakeTeacherRepo) GetByEmail(email string) (*models.Teacher, error) {
	for _, t := range r.teachers {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, errors.New("teacher not found")
}
func (r *fakeTeacherRepo) GetAll() ([]models.Teacher, error) {
	var out []models.Teacher
	for _, t := range r.teachers {
		out = append(out, *t)
	}
	return out, nil
}
func (r *fakeTeacherRepo) SetAvailability(id string, av models.WeeklyAvailability) error {
	if t, ok := r.teachers[id]; ok {
		t.Availability = av
	}
	return nil
}
func (r *fakeTeacherRepo) SetTokenHash(string, string) error { return nil }

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func (r *fakeStudentRepo) Create(s *models.Student) error          { r.students[s.ID] = s; return nil }
func (r *fakeStudentRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (r *fakeStudentRepo) Delete(id string) error                  { delete(r.students, id); return nil }
func (r *fakeStudentRepo) GetByID(id string) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, errors.New("student not found")
	}
	return s, nil
}
func (r *fakeStudentRepo) GetByEmail(email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, errors.New("student not found")
}
func (r *fakeStudentRepo) SetTokenHash(string, string) error { return nil }
func (r *fakeStudentRepo) SetFCMToken(string, string) error  { return nil }

type fakeBookingRepo struct {
	created []*models.Booking
	failing bool
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	if r.failing {
		return errors.New("insert failed")
	}
	r.created = append(r.created, b)
	return nil
}
func (r *fakeBookingRepo) GetByID(string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeBookingRepo) ListByStudent(string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) ListByTeacher(string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) SetStatus(string, models.BookingStatus) error   { return nil }
func (r *fakeBookingRepo) SetPaymentStatus(string, models.PaymentStatus, string) error {
	return nil
}

// newTestService wires a service over in-memory stores with one teacher and
// one student pre-seeded.
func newTestService(teacher *models.Teacher) (*DefaultEnrollmentService, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{}
	svc := &DefaultEnrollmentService{
		Drafts: newMemDraftStore(),
		TeacherRepo: &fakeTeacherRepo{teachers: map[string]*models.Teacher{
			teacher.ID: teacher,
		}},
		StudentRepo: &fakeStudentRepo{students: map[string]*models.Student{
			"student-1": {ID: "student-1", Name: "Asha Verma"},
		}},
		BookingRepo: bookings,
	}
	return svc, bookings
}

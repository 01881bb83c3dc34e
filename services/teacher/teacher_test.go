package teacher

import (
	"errors"
	"testing"

	"teacherdekho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeTeacherRepo records update documents so tests can inspect exactly what
// would be written.
type fakeTeacherRepo struct {
	teachers map[string]*models.Teacher
	updates  []bson.M
}

func newFakeTeacherRepo(teachers ...*models.Teacher) *fakeTeacherRepo {
	r := &fakeTeacherRepo{teachers: make(map[string]*models.Teacher)}
	for _, t := range teachers {
		r.teachers[t.ID] = t
	}
	return r
}

func (r *fakeTeacherRepo) Create(t *models.Teacher) error { r.teachers[t.ID] = t; return nil }
func (r *fakeTeacherRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := r.teachers[id]; !ok {
		return errors.New("teacher not found")
	}
	r.updates = append(r.updates, updateDoc)
	if set, ok := updateDoc["$set"].(bson.M); ok {
		t := r.teachers[id]
		if v, ok := set["name"].(string); ok {
			t.Name = v
		}
		if v, ok := set["phone"].(string); ok {
			t.Phone = v
		}
		if v, ok := set["hourlyRate"].(float64); ok {
			t.HourlyRate = v
		}
		if v, ok := set["fcmToken"].(string); ok {
			t.FCMToken = v
		}
	}
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
func (r *fakeTeacherRepo) GetAll() ([]models.Teacher, error) { return nil, nil }
func (r *fakeTeacherRepo) SetAvailability(id string, av models.WeeklyAvailability) error {
	if t, ok := r.teachers[id]; ok {
		t.Availability = av
	}
	return nil
}
func (r *fakeTeacherRepo) SetTokenHash(string, string) error { return nil }

// lastSet returns the $set document of the most recent update.
func (r *fakeTeacherRepo) lastSet(t *testing.T) bson.M {
	t.Helper()
	require.NotEmpty(t, r.updates)
	set, ok := r.updates[len(r.updates)-1]["$set"].(bson.M)
	require.True(t, ok)
	return set
}

func storedTeacher() *models.Teacher {
	return &models.Teacher{
		ID:           "teacher-1",
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		PasswordHash: "$2a$10$stored-hash",
		Phone:        "9876500000",
		HourlyRate:   700,
	}
}

func TestUpdateProfileWritesOnlyProvidedFields(t *testing.T) {
	repo := newFakeTeacherRepo(storedTeacher())
	svc := &DefaultTeacherService{Repo: repo}

	phone := "9876511111"
	rate := 900.0
	updated, err := svc.UpdateProfile("teacher-1", models.TeacherUpdateRequest{
		Phone:      &phone,
		HourlyRate: &rate,
	})
	require.NoError(t, err)

	set := repo.lastSet(t)
	assert.Equal(t, phone, set["phone"])
	assert.Equal(t, rate, set["hourlyRate"])
	assert.Contains(t, set, "updatedAt")

	// Omitted fields must never reach the write, in particular the
	// credential fields, which would otherwise be blanked.
	assert.NotContains(t, set, "passwordHash")
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "email")
	assert.NotContains(t, set, "tokenHash")
	assert.NotContains(t, set, "createdAt")

	// The stored account keeps its identity and credentials.
	assert.Equal(t, "Ravi Kumar", updated.Name)
	assert.Equal(t, "ravi@example.com", updated.Email)
	assert.Equal(t, "$2a$10$stored-hash", updated.PasswordHash)
	assert.Equal(t, phone, updated.Phone)
}

func TestUpdateProfileRejectsEmptyRequest(t *testing.T) {
	repo := newFakeTeacherRepo(storedTeacher())
	svc := &DefaultTeacherService{Repo: repo}

	_, err := svc.UpdateProfile("teacher-1", models.TeacherUpdateRequest{})
	require.Error(t, err)
	assert.Empty(t, repo.updates, "nothing may be written")
}

func TestUpdateFCMTokenIsTargetedWrite(t *testing.T) {
	repo := newFakeTeacherRepo(storedTeacher())
	svc := &DefaultTeacherService{Repo: repo}

	require.NoError(t, svc.UpdateFCMToken("teacher-1", "fcm-token-1"))

	set := repo.lastSet(t)
	assert.Equal(t, bson.M{"fcmToken": "fcm-token-1"}, set)
	assert.Equal(t, "$2a$10$stored-hash", repo.teachers["teacher-1"].PasswordHash)
}

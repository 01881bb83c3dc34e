package student

import (
	"errors"
	"testing"

	"teacherdekho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeStudentRepo struct {
	students map[string]*models.Student
	updates  []bson.M
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	r := &fakeStudentRepo{students: make(map[string]*models.Student)}
	for _, st := range students {
		r.students[st.ID] = st
	}
	return r
}

func (r *fakeStudentRepo) Create(st *models.Student) error { r.students[st.ID] = st; return nil }
func (r *fakeStudentRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	st, ok := r.students[id]
	if !ok {
		return errors.New("student not found")
	}
	r.updates = append(r.updates, updateDoc)
	if set, ok := updateDoc["$set"].(bson.M); ok {
		if v, ok := set["name"].(string); ok {
			st.Name = v
		}
		if v, ok := set["phone"].(string); ok {
			st.Phone = v
		}
		if v, ok := set["grade"].(string); ok {
			st.Grade = v
		}
	}
	return nil
}
func (r *fakeStudentRepo) Delete(id string) error { delete(r.students, id); return nil }
func (r *fakeStudentRepo) GetByID(id string) (*models.Student, error) {
	st, ok := r.students[id]
	if !ok {
		return nil, errors.New("student not found")
	}
	return st, nil
}
func (r *fakeStudentRepo) GetByEmail(email string) (*models.Student, error) {
	for _, st := range r.students {
		if st.Email == email {
			return st, nil
		}
	}
	return nil, errors.New("student not found")
}
func (r *fakeStudentRepo) SetTokenHash(string, string) error { return nil }
func (r *fakeStudentRepo) SetFCMToken(id, token string) error {
	if st, ok := r.students[id]; ok {
		st.FCMToken = token
	}
	return nil
}

func storedStudent() *models.Student {
	return &models.Student{
		ID:           "student-1",
		Name:         "Asha Verma",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$stored-hash",
		Grade:        "9",
	}
}

func TestUpdateProfileWritesOnlyProvidedFields(t *testing.T) {
	repo := newFakeStudentRepo(storedStudent())
	svc := &DefaultStudentService{Repo: repo}

	grade := "10"
	updated, err := svc.UpdateProfile("student-1", models.StudentUpdateRequest{Grade: &grade})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	set, ok := repo.updates[0]["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, grade, set["grade"])
	assert.Contains(t, set, "updatedAt")

	// Omitted fields stay out of the write so the stored credentials and
	// identity survive a partial update untouched.
	assert.NotContains(t, set, "passwordHash")
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "email")
	assert.NotContains(t, set, "createdAt")

	assert.Equal(t, "Asha Verma", updated.Name)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, "$2a$10$stored-hash", updated.PasswordHash)
	assert.Equal(t, "10", updated.Grade)
}

func TestUpdateProfileRejectsEmptyRequest(t *testing.T) {
	repo := newFakeStudentRepo(storedStudent())
	svc := &DefaultStudentService{Repo: repo}

	_, err := svc.UpdateProfile("student-1", models.StudentUpdateRequest{})
	require.Error(t, err)
	assert.Empty(t, repo.updates)
}

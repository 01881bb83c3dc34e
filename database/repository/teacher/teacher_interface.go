package teacherRepo

import (
	"teacherdekho/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TeacherRepository defines persistence operations for teacher documents.
type TeacherRepository interface {
	Create(t *models.Teacher) error
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Teacher, error)
	GetByEmail(email string) (*models.Teacher, error)
	GetAll() ([]models.Teacher, error)
	SetAvailability(id string, av models.WeeklyAvailability) error
	SetTokenHash(id, tokenHash string) error
}

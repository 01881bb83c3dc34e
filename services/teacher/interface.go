package teacher

import (
	teacherRepo "teacherdekho/database/repository/teacher"
	"teacherdekho/models"
	"teacherdekho/services/storage"
)

// RegistrationInput is the teacher sign-up payload.
type RegistrationInput struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Phone     string   `json:"phone"`
	Bio       string   `json:"bio"`
	Subjects  []string `json:"subjects"`
	Classes   []string `json:"classes"`
	Languages []string `json:"languages"`
	// HourlyRate may be omitted; display falls back to the catalog default.
	HourlyRate float64 `json:"hourlyRate"`
}

// AuthResult carries a freshly issued token and the account it belongs to.
type AuthResult struct {
	Token   string          `json:"token"`
	Teacher *models.Teacher `json:"teacher"`
}

// TeacherService defines teacher account operations.
type TeacherService interface {
	Register(input RegistrationInput) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.Teacher, error)
	GetByEmail(email string) (*models.Teacher, error)
	UpdateProfile(id string, req models.TeacherUpdateRequest) (*models.Teacher, error)
	Delete(id string) error
	RevokeAuthToken(id string) error
	UpdateFCMToken(id, token string) error
	SubmitKYC(teacherID, idDocPath, qualificationDocPath string) (*models.KYCInfo, error)
	SetKYCStatus(teacherID string, status models.KYCStatus) error
	KYCDocumentURLs(teacherID string) (map[string]string, error)
}

// DefaultTeacherService is the production implementation.
type DefaultTeacherService struct {
	Repo    teacherRepo.TeacherRepository
	Storage storage.StorageService
}

package student

import (
	"errors"
	"fmt"
	"time"

	studentRepo "teacherdekho/database/repository/student"
	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

const authTokenDuration = 72 * time.Hour

// RegistrationInput is the student sign-up payload.
type RegistrationInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Grade    string `json:"grade"`
}

// AuthResult carries a freshly issued token and the account it belongs to.
type AuthResult struct {
	Token   string          `json:"token"`
	Student *models.Student `json:"student"`
}

// StudentService defines student account operations.
type StudentService interface {
	Register(input RegistrationInput) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.Student, error)
	UpdateProfile(id string, req models.StudentUpdateRequest) (*models.Student, error)
	Delete(id string) error
	RevokeAuthToken(id string) error
	UpdateFCMToken(id, token string) error
}

// DefaultStudentService is the production implementation.
type DefaultStudentService struct {
	Repo studentRepo.StudentRepository
}

// Register creates a student account and signs them in.
func (s *DefaultStudentService) Register(input RegistrationInput) (*AuthResult, error) {
	logger := utils.GetLogger()

	if existing, _ := s.Repo.GetByEmail(input.Email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", input.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	st := &models.Student{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Phone:        input.Phone,
		Grade:        input.Grade,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(st); err != nil {
		return nil, fmt.Errorf("failed to register student: %w", err)
	}

	token, err := s.issueToken(st)
	if err != nil {
		return nil, err
	}
	logger.Info("student registered", zap.String("studentID", st.ID))
	return &AuthResult{Token: token, Student: st}, nil
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultStudentService) Authenticate(email, password string) (*AuthResult, error) {
	st, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(st)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Student: st}, nil
}

func (s *DefaultStudentService) issueToken(st *models.Student) (string, error) {
	token, err := utils.GenerateToken(st.ID, "student", st.Email, authTokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(st.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("failed to pin auth token: %w", err)
	}
	return token, nil
}

func (s *DefaultStudentService) GetByID(id string) (*models.Student, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile applies a partial update built from the request's non-nil
// fields only, so an omitted field never clobbers the stored value and the
// credential fields stay out of reach of this path.
func (s *DefaultStudentService) UpdateProfile(id string, req models.StudentUpdateRequest) (*models.Student, error) {
	setFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		setFields["name"] = *req.Name
	}
	if req.Phone != nil {
		setFields["phone"] = *req.Phone
	}
	if req.Grade != nil {
		setFields["grade"] = *req.Grade
	}
	if len(setFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": setFields}); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return s.Repo.GetByID(id)
}

func (s *DefaultStudentService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// RevokeAuthToken clears the pinned token hash.
func (s *DefaultStudentService) RevokeAuthToken(id string) error {
	return s.Repo.SetTokenHash(id, "")
}

func (s *DefaultStudentService) UpdateFCMToken(id, token string) error {
	return s.Repo.SetFCMToken(id, token)
}

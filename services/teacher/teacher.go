package teacher

import (
	"errors"
	"fmt"
	"time"

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

// Register creates a teacher account and signs them in.
func (s *DefaultTeacherService) Register(input RegistrationInput) (*AuthResult, error) {
	logger := utils.GetLogger()

	if existing, _ := s.Repo.GetByEmail(input.Email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", input.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	t := &models.Teacher{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Phone:        input.Phone,
		Bio:          input.Bio,
		Subjects:     input.Subjects,
		Classes:      input.Classes,
		Languages:    input.Languages,
		HourlyRate:   input.HourlyRate,
		Availability: models.NewWeeklyAvailability(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, fmt.Errorf("failed to register teacher: %w", err)
	}

	token, err := s.issueToken(t)
	if err != nil {
		return nil, err
	}
	logger.Info("teacher registered", zap.String("teacherID", t.ID))
	return &AuthResult{Token: token, Teacher: t}, nil
}

// Authenticate verifies credentials and issues a fresh token, replacing the
// previously pinned one.
func (s *DefaultTeacherService) Authenticate(email, password string) (*AuthResult, error) {
	t, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(t)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Teacher: t}, nil
}

func (s *DefaultTeacherService) issueToken(t *models.Teacher) (string, error) {
	token, err := utils.GenerateToken(t.ID, "teacher", t.Email, authTokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(t.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("failed to pin auth token: %w", err)
	}
	return token, nil
}

func (s *DefaultTeacherService) GetByID(id string) (*models.Teacher, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultTeacherService) GetByEmail(email string) (*models.Teacher, error) {
	return s.Repo.GetByEmail(email)
}

// UpdateProfile applies a partial update built from the request's non-nil
// fields only, so an omitted field never clobbers the stored value and the
// credential fields stay out of reach of this path.
func (s *DefaultTeacherService) UpdateProfile(id string, req models.TeacherUpdateRequest) (*models.Teacher, error) {
	setFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		setFields["name"] = *req.Name
	}
	if req.Phone != nil {
		setFields["phone"] = *req.Phone
	}
	if req.Bio != nil {
		setFields["bio"] = *req.Bio
	}
	if req.Subjects != nil {
		setFields["subjects"] = *req.Subjects
	}
	if req.Classes != nil {
		setFields["classes"] = *req.Classes
	}
	if req.Languages != nil {
		setFields["languages"] = *req.Languages
	}
	if req.HourlyRate != nil {
		setFields["hourlyRate"] = *req.HourlyRate
	}
	if len(setFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": setFields}); err != nil {
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}
	return s.Repo.GetByID(id)
}

func (s *DefaultTeacherService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// RevokeAuthToken clears the pinned token hash, invalidating any outstanding
// token for this account.
func (s *DefaultTeacherService) RevokeAuthToken(id string) error {
	return s.Repo.SetTokenHash(id, "")
}

func (s *DefaultTeacherService) UpdateFCMToken(id, token string) error {
	return s.Repo.UpdateWithDocument(id, bson.M{"$set": bson.M{"fcmToken": token}})
}

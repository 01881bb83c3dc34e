package handlers

import (
	"errors"
	"net/http"

	"teacherdekho/models"
	studentService "teacherdekho/services/student"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler serves student account and auth endpoints.
type StudentHandler struct {
	Service studentService.StudentService
	Logger  *zap.Logger
}

func NewStudentHandler(svc studentService.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{Service: svc, Logger: logger}
}

// Register creates a student account and returns a session token.
func (h *StudentHandler) Register(c *gin.Context) {
	var input studentService.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Service.Register(input)
	if err != nil {
		h.Logger.Error("student registration failed", zap.String("email", input.Email), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Login authenticates by email and password.
func (h *StudentHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, studentService.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", "Invalid email or password.")
			return
		}
		h.Logger.Error("student login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProfile returns the authenticated student's account.
func (h *StudentHandler) GetProfile(c *gin.Context) {
	studentID := c.GetString("studentID")
	st, err := h.Service.GetByID(studentID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Student not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// UpdateProfile applies a partial update to the authenticated student's
// profile. Omitted fields keep their stored values.
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	studentID := c.GetString("studentID")

	var req models.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	st, err := h.Service.UpdateProfile(studentID, req)
	if err != nil {
		h.Logger.Error("student update failed", zap.String("studentID", studentID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// Delete removes the authenticated student's account.
func (h *StudentHandler) Delete(c *gin.Context) {
	studentID := c.GetString("studentID")
	if err := h.Service.Delete(studentID); err != nil {
		h.Logger.Error("student delete failed", zap.String("studentID", studentID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Logout clears the pinned token hash, invalidating every issued token.
func (h *StudentHandler) Logout(c *gin.Context) {
	studentID := c.GetString("studentID")
	if err := h.Service.RevokeAuthToken(studentID); err != nil {
		h.Logger.Error("student logout failed", zap.String("studentID", studentID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// UpdateFCMToken registers the device push token.
func (h *StudentHandler) UpdateFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	studentID := c.GetString("studentID")
	if err := h.Service.UpdateFCMToken(studentID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

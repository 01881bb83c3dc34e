package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"teacherdekho/models"
	teacherService "teacherdekho/services/teacher"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TeacherHandler serves teacher account, auth and KYC endpoints.
type TeacherHandler struct {
	Service teacherService.TeacherService
	Logger  *zap.Logger
}

func NewTeacherHandler(svc teacherService.TeacherService, logger *zap.Logger) *TeacherHandler {
	return &TeacherHandler{Service: svc, Logger: logger}
}

// Register creates a teacher account and returns a session token.
func (h *TeacherHandler) Register(c *gin.Context) {
	var input teacherService.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Service.Register(input)
	if err != nil {
		h.Logger.Error("teacher registration failed", zap.String("email", input.Email), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Login authenticates by email and password.
func (h *TeacherHandler) Login(c *gin.Context) {
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
		if errors.Is(err, teacherService.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", "Invalid email or password.")
			return
		}
		h.Logger.Error("teacher login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProfile returns a teacher's public profile.
func (h *TeacherHandler) GetProfile(c *gin.Context) {
	teacher, err := h.Service.GetByID(c.Param("teacherID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Teacher not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// UpdateProfile applies a partial update to the authenticated teacher's
// profile. Omitted fields keep their stored values.
func (h *TeacherHandler) UpdateProfile(c *gin.Context) {
	teacherID := c.GetString("teacherID")

	var req models.TeacherUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	teacher, err := h.Service.UpdateProfile(teacherID, req)
	if err != nil {
		h.Logger.Error("teacher update failed", zap.String("teacherID", teacherID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// Delete removes the authenticated teacher's account.
func (h *TeacherHandler) Delete(c *gin.Context) {
	teacherID := c.GetString("teacherID")
	if err := h.Service.Delete(teacherID); err != nil {
		h.Logger.Error("teacher delete failed", zap.String("teacherID", teacherID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Logout clears the pinned token hash, invalidating every issued token.
func (h *TeacherHandler) Logout(c *gin.Context) {
	teacherID := c.GetString("teacherID")
	if err := h.Service.RevokeAuthToken(teacherID); err != nil {
		h.Logger.Error("teacher logout failed", zap.String("teacherID", teacherID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// UpdateFCMToken registers the device push token.
func (h *TeacherHandler) UpdateFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	teacherID := c.GetString("teacherID")
	if err := h.Service.UpdateFCMToken(teacherID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SubmitKYC accepts the identity and qualification documents as multipart
// uploads, spools them to disk, and hands them to the verification pipeline.
func (h *TeacherHandler) SubmitKYC(c *gin.Context) {
	teacherID := c.GetString("teacherID")

	idDoc, err := c.FormFile("idDocument")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "idDocument file is required")
		return
	}
	qualDoc, err := c.FormFile("qualificationDocument")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "qualificationDocument file is required")
		return
	}

	idPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s-id-%s", teacherID, filepath.Base(idDoc.Filename)))
	qualPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s-qual-%s", teacherID, filepath.Base(qualDoc.Filename)))
	if err := c.SaveUploadedFile(idDoc, idPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	defer os.Remove(idPath)
	if err := c.SaveUploadedFile(qualDoc, qualPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	defer os.Remove(qualPath)

	kyc, err := h.Service.SubmitKYC(teacherID, idPath, qualPath)
	if err != nil {
		h.Logger.Error("kyc submission failed", zap.String("teacherID", teacherID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "KYC submission failed", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, kyc)
}

// SetKYCStatus records a verification decision. Intended for the review
// back office; the route carries the decision in the body.
func (h *TeacherHandler) SetKYCStatus(c *gin.Context) {
	var input struct {
		Status models.KYCStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := h.Service.SetKYCStatus(c.Param("teacherID"), input.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "KYC update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(input.Status)})
}

// GetKYCDocuments returns short-lived download links for a teacher's
// submitted documents, for the review back office.
func (h *TeacherHandler) GetKYCDocuments(c *gin.Context) {
	urls, err := h.Service.KYCDocumentURLs(c.Param("teacherID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "KYC documents unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": urls})
}

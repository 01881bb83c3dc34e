package handlers

import (
	"errors"
	"net/http"
	"time"

	requestRepo "teacherdekho/database/repository/request"
	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestHandler serves tuition requests: students post asks, teachers browse
// the open board.
type RequestHandler struct {
	Repo   requestRepo.RequestRepository
	Logger *zap.Logger
}

func NewRequestHandler(repo requestRepo.RequestRepository, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{Repo: repo, Logger: logger}
}

// Create posts a new open request under the authenticated student.
func (h *RequestHandler) Create(c *gin.Context) {
	var input struct {
		Subject     string  `json:"subject" binding:"required"`
		ClassLevel  string  `json:"classLevel" binding:"required"`
		Language    string  `json:"language"`
		Mode        string  `json:"mode"`
		Budget      float64 `json:"budget"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	req := &models.TuitionRequest{
		ID:          uuid.New().String(),
		StudentID:   c.GetString("studentID"),
		Subject:     input.Subject,
		ClassLevel:  input.ClassLevel,
		Language:    input.Language,
		Mode:        input.Mode,
		Budget:      input.Budget,
		Description: input.Description,
		Status:      models.RequestOpen,
		CreatedAt:   time.Now(),
	}
	if err := h.Repo.Create(req); err != nil {
		h.Logger.Error("tuition request create failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListOpen returns the open board, newest first.
func (h *RequestHandler) ListOpen(c *gin.Context) {
	requests, err := h.Repo.ListOpen()
	if err != nil {
		h.Logger.Error("tuition request list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ListMine returns the authenticated student's requests, newest first.
func (h *RequestHandler) ListMine(c *gin.Context) {
	requests, err := h.Repo.ListByStudent(c.GetString("studentID"))
	if err != nil {
		h.Logger.Error("tuition request list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Close marks the authenticated student's request as closed.
func (h *RequestHandler) Close(c *gin.Context) {
	requestID := c.Param("requestID")

	req, err := h.getOwned(c, requestID)
	if err != nil {
		return
	}
	if err := h.Repo.SetStatus(req.ID, models.RequestClosed); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// Delete removes the authenticated student's request.
func (h *RequestHandler) Delete(c *gin.Context) {
	requestID := c.Param("requestID")

	req, err := h.getOwned(c, requestID)
	if err != nil {
		return
	}
	if err := h.Repo.Delete(req.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// getOwned loads a request and enforces student ownership, writing the error
// response itself on failure.
func (h *RequestHandler) getOwned(c *gin.Context, requestID string) (*models.TuitionRequest, error) {
	req, err := h.Repo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Request not found", err.Error())
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		}
		return nil, err
	}
	if req.StudentID != c.GetString("studentID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "This request belongs to another student.")
		return nil, errors.New("ownership mismatch")
	}
	return req, nil
}

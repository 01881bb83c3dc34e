package handlers

import (
	"errors"
	"net/http"
	"time"

	batchRepo "teacherdekho/database/repository/batch"
	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchHandler serves group-class batches. Batches are a thin CRUD surface,
// so the handler talks to the repository directly.
type BatchHandler struct {
	Repo   batchRepo.BatchRepository
	Logger *zap.Logger
}

func NewBatchHandler(repo batchRepo.BatchRepository, logger *zap.Logger) *BatchHandler {
	return &BatchHandler{Repo: repo, Logger: logger}
}

// Create opens a new batch under the authenticated teacher.
func (h *BatchHandler) Create(c *gin.Context) {
	var input struct {
		Name          string           `json:"name" binding:"required"`
		Subject       string           `json:"subject" binding:"required"`
		ClassLevel    string           `json:"classLevel" binding:"required"`
		Language      string           `json:"language"`
		Days          []models.Weekday `json:"days" binding:"required"`
		Slot          models.TimeSlot  `json:"slot" binding:"required"`
		PricePerMonth float64          `json:"pricePerMonth" binding:"required"`
		Capacity      int              `json:"capacity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	for _, day := range input.Days {
		if _, err := models.ParseWeekday(string(day)); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
	}

	b := &models.Batch{
		ID:                 uuid.New().String(),
		TeacherID:          c.GetString("teacherID"),
		Name:               input.Name,
		Subject:            input.Subject,
		ClassLevel:         input.ClassLevel,
		Language:           input.Language,
		Days:               input.Days,
		Slot:               input.Slot,
		PricePerMonth:      input.PricePerMonth,
		Capacity:           input.Capacity,
		EnrolledStudentIDs: []string{},
		CreatedAt:          time.Now(),
	}
	if err := h.Repo.Create(b); err != nil {
		h.Logger.Error("batch create failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusCreated, b)
}

// List returns all open batches, optionally filtered by subject.
func (h *BatchHandler) List(c *gin.Context) {
	batches, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("batch list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	if subject := c.Query("subject"); subject != "" {
		filtered := batches[:0]
		for _, b := range batches {
			if b.Subject == subject {
				filtered = append(filtered, b)
			}
		}
		batches = filtered
	}
	c.JSON(http.StatusOK, gin.H{"batches": batches})
}

// ListMine returns the authenticated teacher's batches.
func (h *BatchHandler) ListMine(c *gin.Context) {
	batches, err := h.Repo.ListByTeacher(c.GetString("teacherID"))
	if err != nil {
		h.Logger.Error("batch list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"batches": batches})
}

// Get returns one batch with its remaining seats.
func (h *BatchHandler) Get(c *gin.Context) {
	b, err := h.Repo.GetByID(c.Param("batchID"))
	if err != nil {
		if errors.Is(err, batchRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Batch not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"batch": b, "seatsLeft": b.SeatsLeft()})
}

// Enroll seats the authenticated student in a batch. The write is atomic:
// it fails cleanly when the batch is full or the student already holds a seat.
func (h *BatchHandler) Enroll(c *gin.Context) {
	batchID := c.Param("batchID")
	studentID := c.GetString("studentID")

	err := h.Repo.Enroll(batchID, studentID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "enrolled"})
	case errors.Is(err, batchRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Batch not found", err.Error())
	case errors.Is(err, batchRepo.ErrAlreadyEnrolled):
		utils.JSONError(c, http.StatusConflict, "Already enrolled", "You already have a seat in this batch.")
	case errors.Is(err, batchRepo.ErrFull):
		utils.JSONError(c, http.StatusConflict, "Batch full", "No seats left in this batch.")
	default:
		h.Logger.Error("batch enroll failed", zap.String("batchID", batchID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
	}
}

// Delete removes a batch owned by the authenticated teacher.
func (h *BatchHandler) Delete(c *gin.Context) {
	batchID := c.Param("batchID")

	b, err := h.Repo.GetByID(batchID)
	if err != nil {
		if errors.Is(err, batchRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Batch not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	if b.TeacherID != c.GetString("teacherID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "This batch belongs to another teacher.")
		return
	}

	if err := h.Repo.Delete(batchID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

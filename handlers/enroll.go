package handlers

import (
	"errors"
	"net/http"

	"teacherdekho/models"
	"teacherdekho/services/enroll"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EnrollmentHandler exposes the enrollment wizard over HTTP. Every response
// returns the updated draft so the client can render the current step.
type EnrollmentHandler struct {
	Service enroll.EnrollmentService
	Logger  *zap.Logger
}

func NewEnrollmentHandler(svc enroll.EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{Service: svc, Logger: logger}
}

// respondDraftErr maps wizard errors onto HTTP statuses: validation -> 400,
// missing draft -> 404, everything else -> 500.
func (h *EnrollmentHandler) respondDraftErr(c *gin.Context, err error) {
	switch {
	case enroll.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, enroll.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "Draft not found", err.Error())
	case errors.Is(err, enroll.ErrAtReview):
		utils.JSONError(c, http.StatusBadRequest, "Already at review", err.Error())
	default:
		h.Logger.Error("enrollment operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
	}
}

// StartDraft opens a wizard for the authenticated student.
func (h *EnrollmentHandler) StartDraft(c *gin.Context) {
	var input struct {
		TeacherID string `json:"teacherId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	studentID := c.GetString("studentID")

	draft, err := h.Service.Start(studentID, input.TeacherID)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft returns the current wizard state.
func (h *EnrollmentHandler) GetDraft(c *gin.Context) {
	draft, err := h.Service.Get(c.Param("draftID"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SelectPlan sets the draft's plan tier.
func (h *EnrollmentHandler) SelectPlan(c *gin.Context) {
	var input struct {
		Plan models.PlanType `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.SelectPlan(c.Param("draftID"), input.Plan)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Advance validates the current step and moves forward.
func (h *EnrollmentHandler) Advance(c *gin.Context) {
	draft, err := h.Service.Advance(c.Param("draftID"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Retreat steps back without validation.
func (h *EnrollmentHandler) Retreat(c *gin.Context) {
	draft, err := h.Service.Retreat(c.Param("draftID"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SelectPreset applies a silver schedule sub-option.
func (h *EnrollmentHandler) SelectPreset(c *gin.Context) {
	var input struct {
		Preset models.SchedulePreset `json:"preset" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.SelectPreset(c.Param("draftID"), input.Preset)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ToggleWeekday adds or removes a day subject to the plan policy.
func (h *EnrollmentHandler) ToggleWeekday(c *gin.Context) {
	var input struct {
		Day string `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.ToggleWeekday(c.Param("draftID"), models.Weekday(input.Day))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetCourseDetails sets the step-2 fields.
func (h *EnrollmentHandler) SetCourseDetails(c *gin.Context) {
	var input struct {
		Subject     string `json:"subject"`
		Grade       string `json:"grade"`
		Topic       string `json:"topic"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.SetCourseDetails(c.Param("draftID"), input.Subject, input.Grade, input.Topic, input.Description)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetSchedule sets the first-session date and slot label.
func (h *EnrollmentHandler) SetSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.SetSchedule(c.Param("draftID"), input.Date, input.Slot)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AddMember appends a group member.
func (h *EnrollmentHandler) AddMember(c *gin.Context) {
	var input models.GroupMember
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.AddMember(c.Param("draftID"), input.Name, input.Phone)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveMember removes a group member by index.
func (h *EnrollmentHandler) RemoveMember(c *gin.Context) {
	var input struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.RemoveMember(c.Param("draftID"), input.Index)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Submit converts the reviewed draft into a booking.
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	booking, err := h.Service.Submit(c.Param("draftID"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// Cancel discards the draft.
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	if err := h.Service.Cancel(c.Param("draftID")); err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// QuickOptions returns the quick-flow 7-day scheduling window for a teacher.
func (h *EnrollmentHandler) QuickOptions(c *gin.Context) {
	days, err := h.Service.QuickOptions(c.Param("teacherID"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// SetQuickSchedule picks a date and declared slot in the quick flow.
func (h *EnrollmentHandler) SetQuickSchedule(c *gin.Context) {
	var input struct {
		Date string          `json:"date" binding:"required"`
		Slot models.TimeSlot `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	draft, err := h.Service.SetQuickSchedule(c.Param("draftID"), input.Date, input.Slot)
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// BuildCheckout ends the quick flow with a transient checkout payload.
func (h *EnrollmentHandler) BuildCheckout(c *gin.Context) {
	checkout, err := h.Service.BuildCheckout(c.Param("draftID"))
	if err != nil {
		h.respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, checkout)
}

package handlers

import (
	"net/http"

	"teacherdekho/models"
	"teacherdekho/services/availability"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the weekly availability editor. Edit endpoints
// are read-modify-write: load the stored week, apply one pure edit, save.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

func (h *AvailabilityHandler) respondErr(c *gin.Context, err error) {
	if availability.IsValidation(err) {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	h.Logger.Error("availability operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
}

// edit runs one pure edit against the authenticated teacher's stored week and
// persists the result.
func (h *AvailabilityHandler) edit(c *gin.Context, fn func(models.WeeklyAvailability) (models.WeeklyAvailability, error)) {
	teacherID := c.GetString("teacherID")

	av, err := h.Service.Get(teacherID)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	edited, err := fn(av)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	if err := h.Service.Save(teacherID, edited); err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, edited)
}

// Get returns the teacher's stored week, defaulting to all-disabled.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	av, err := h.Service.Get(c.Param("teacherID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, av)
}

// Save replaces the teacher's whole week in one write.
func (h *AvailabilityHandler) Save(c *gin.Context) {
	var av models.WeeklyAvailability
	if err := c.ShouldBindJSON(&av); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	teacherID := c.GetString("teacherID")
	if err := h.Service.Save(teacherID, av); err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, av)
}

// ToggleDay flips a day on or off.
func (h *AvailabilityHandler) ToggleDay(c *gin.Context) {
	var input struct {
		Day models.Weekday `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	h.edit(c, func(av models.WeeklyAvailability) (models.WeeklyAvailability, error) {
		return availability.ToggleDay(av, input.Day), nil
	})
}

// AddSlot appends a period's default slot to a day.
func (h *AvailabilityHandler) AddSlot(c *gin.Context) {
	var input struct {
		Day    models.Weekday `json:"day" binding:"required"`
		Period models.Period  `json:"period" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	h.edit(c, func(av models.WeeklyAvailability) (models.WeeklyAvailability, error) {
		return availability.AddSlot(av, input.Day, input.Period)
	})
}

// RemoveSlot deletes a day's slot by index.
func (h *AvailabilityHandler) RemoveSlot(c *gin.Context) {
	var input struct {
		Day   models.Weekday `json:"day" binding:"required"`
		Index int            `json:"index"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	h.edit(c, func(av models.WeeklyAvailability) (models.WeeklyAvailability, error) {
		return availability.RemoveSlot(av, input.Day, input.Index)
	})
}

// SetSlotTime updates one boundary of one slot.
func (h *AvailabilityHandler) SetSlotTime(c *gin.Context) {
	var input struct {
		Day   models.Weekday         `json:"day" binding:"required"`
		Index int                    `json:"index"`
		Field availability.SlotField `json:"field" binding:"required"`
		Value string                 `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	h.edit(c, func(av models.WeeklyAvailability) (models.WeeklyAvailability, error) {
		return availability.SetSlotTime(av, input.Day, input.Index, input.Field, input.Value)
	})
}

// ApplyMaster overwrites the selected days with the template slots.
func (h *AvailabilityHandler) ApplyMaster(c *gin.Context) {
	var master models.MasterSchedule
	if err := c.ShouldBindJSON(&master); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	h.edit(c, func(av models.WeeklyAvailability) (models.WeeklyAvailability, error) {
		return availability.ApplyMasterSchedule(av, master)
	})
}

// HourOptions returns the selectable hour menu for a period, used to populate
// the slot time dropdowns.
func (h *AvailabilityHandler) HourOptions(c *gin.Context) {
	period := models.Period(c.Query("period"))
	opts := availability.HourOptions(period)
	if opts == nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", "unknown period "+string(period))
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "hours": opts})
}

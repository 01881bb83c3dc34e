package handlers

import (
	"errors"
	"net/http"

	bookingRepo "teacherdekho/database/repository/booking"
	"teacherdekho/models"
	bookingService "teacherdekho/services/booking"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the post-submission booking lifecycle.
type BookingHandler struct {
	Service bookingService.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc bookingService.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

func (h *BookingHandler) respondErr(c *gin.Context, err error) {
	if errors.Is(err, bookingRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	h.Logger.Error("booking operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
}

// Get returns one of the authenticated student's bookings.
func (h *BookingHandler) Get(c *gin.Context) {
	b, ok := h.ownedByStudent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

// ownedByStudent loads the booking and rejects the request unless it belongs
// to the authenticated student.
func (h *BookingHandler) ownedByStudent(c *gin.Context) (*models.Booking, bool) {
	b, err := h.Service.GetByID(c.Param("bookingID"))
	if err != nil {
		h.respondErr(c, err)
		return nil, false
	}
	if b.StudentID != c.GetString("studentID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "This booking belongs to another student.")
		return nil, false
	}
	return b, true
}

// ListForStudent returns the authenticated student's bookings, newest first.
func (h *BookingHandler) ListForStudent(c *gin.Context) {
	bookings, err := h.Service.ListByStudent(c.GetString("studentID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListForTeacher returns the authenticated teacher's bookings, newest first.
func (h *BookingHandler) ListForTeacher(c *gin.Context) {
	bookings, err := h.Service.ListByTeacher(c.GetString("teacherID"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Accept lets the booked teacher confirm a pending request.
func (h *BookingHandler) Accept(c *gin.Context) {
	h.decide(c, h.Service.Accept)
}

// Reject lets the booked teacher decline a pending request.
func (h *BookingHandler) Reject(c *gin.Context) {
	h.decide(c, h.Service.Reject)
}

func (h *BookingHandler) decide(c *gin.Context, fn func(string) (*models.Booking, error)) {
	bookingID := c.Param("bookingID")

	b, err := h.Service.GetByID(bookingID)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	if b.TeacherID != c.GetString("teacherID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "This booking belongs to another teacher.")
		return
	}

	decided, err := fn(bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Decision failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, decided)
}

// CreatePaymentIntent starts a Stripe payment for the booking and returns the
// client secret the app confirms with.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	b, ok := h.ownedByStudent(c)
	if !ok {
		return
	}
	bookingID := b.ID

	clientSecret, err := h.Service.CreatePaymentIntent(bookingID)
	if err != nil {
		h.Logger.Error("payment intent failed", zap.String("bookingID", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Payment setup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// MarkPaid records a confirmed payment on the student's own booking.
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	b, ok := h.ownedByStudent(c)
	if !ok {
		return
	}
	if err := h.Service.MarkPaid(b.ID); err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paid"})
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "teacherdekho/database/repository/booking"
	"teacherdekho/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingService serves a fixed set of bookings and records state changes.
type fakeBookingService struct {
	bookings map[string]*models.Booking
	paid     []string
}

func (f *fakeBookingService) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return b, nil
}
func (f *fakeBookingService) ListByStudent(studentID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingService) ListByTeacher(teacherID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingService) Accept(bookingID string) (*models.Booking, error) {
	return f.bookings[bookingID], nil
}
func (f *fakeBookingService) Reject(bookingID string) (*models.Booking, error) {
	return f.bookings[bookingID], nil
}
func (f *fakeBookingService) CreatePaymentIntent(bookingID string) (string, error) {
	return "pi_secret", nil
}
func (f *fakeBookingService) MarkPaid(bookingID string) error {
	f.paid = append(f.paid, bookingID)
	return nil
}

func newBookingTestContext(t *testing.T, studentID, bookingID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "bookingID", Value: bookingID}}
	c.Set("studentID", studentID)
	return c, w
}

func bookingHandlerFixture() (*BookingHandler, *fakeBookingService) {
	svc := &fakeBookingService{bookings: map[string]*models.Booking{
		"booking-1": {ID: "booking-1", StudentID: "student-1", TeacherID: "teacher-1"},
	}}
	return NewBookingHandler(svc, zap.NewNop()), svc
}

func TestGetRejectsForeignStudent(t *testing.T) {
	h, _ := bookingHandlerFixture()

	c, w := newBookingTestContext(t, "student-2", "booking-1")
	h.Get(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = newBookingTestContext(t, "student-1", "booking-1")
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkPaidRejectsForeignStudent(t *testing.T) {
	h, svc := bookingHandlerFixture()

	c, w := newBookingTestContext(t, "student-2", "booking-1")
	h.MarkPaid(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, svc.paid, "foreign booking must not be marked paid")
}

func TestMarkPaidByOwner(t *testing.T) {
	h, svc := bookingHandlerFixture()

	c, w := newBookingTestContext(t, "student-1", "booking-1")
	h.MarkPaid(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"booking-1"}, svc.paid)
}

func TestMarkPaidUnknownBooking(t *testing.T) {
	h, _ := bookingHandlerFixture()

	c, w := newBookingTestContext(t, "student-1", "booking-404")
	h.MarkPaid(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePaymentIntentRejectsForeignStudent(t *testing.T) {
	h, _ := bookingHandlerFixture()

	c, w := newBookingTestContext(t, "student-2", "booking-1")
	h.CreatePaymentIntent(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

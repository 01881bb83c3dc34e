package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingRejected  BookingStatus = "rejected"
)

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRequired PaymentStatus = "required"
)

// GroupMember is an additional participant attached to a group enrollment.
// Phone is stored as entered; only non-emptiness is checked.
type GroupMember struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// Booking is the wizard's terminal output: one document created per
// successful submission, subsequently mutated by teacher accept/reject and
// payment flows.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	TeacherID        string        `bson:"teacherId" json:"teacherId"`
	StudentID        string        `bson:"studentId" json:"studentId"`
	StudentName      string        `bson:"studentName" json:"studentName"`
	Subject          string        `bson:"subject" json:"subject"`
	Grade            string        `bson:"grade" json:"grade"`
	Topic            string        `bson:"topic" json:"topic"`
	Description      string        `bson:"description,omitempty" json:"description,omitempty"`
	ScheduledAt      time.Time     `bson:"scheduledAt" json:"scheduledAt"`
	TimeSlot         string        `bson:"timeSlot" json:"timeSlot"`
	Status           BookingStatus `bson:"status" json:"status"`
	IsDemo           bool          `bson:"isDemo" json:"isDemo"`
	PaymentStatus    PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	PlanType         PlanType      `bson:"planType" json:"planType"`
	SessionsPerMonth int           `bson:"sessionsPerMonth" json:"sessionsPerMonth"`
	TotalSessions    int           `bson:"totalSessions" json:"totalSessions"`
	MonthlyPrice     float64       `bson:"monthlyPrice" json:"monthlyPrice"`
	Members          []GroupMember `bson:"members,omitempty" json:"members,omitempty"`
	SelectedDays     []Weekday     `bson:"selectedDays" json:"selectedDays"`
	PaymentIntentID  string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
}

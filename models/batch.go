package models

import "time"

// Batch is a group class run by one teacher on a fixed weekly schedule.
type Batch struct {
	ID                 string    `bson:"id" json:"id"`
	TeacherID          string    `bson:"teacherId" json:"teacherId"`
	Name               string    `bson:"name" json:"name"`
	Subject            string    `bson:"subject" json:"subject"`
	ClassLevel         string    `bson:"classLevel" json:"classLevel"`
	Language           string    `bson:"language,omitempty" json:"language,omitempty"`
	Days               []Weekday `bson:"days" json:"days"`
	Slot               TimeSlot  `bson:"slot" json:"slot"`
	PricePerMonth      float64   `bson:"pricePerMonth" json:"pricePerMonth"`
	Capacity           int       `bson:"capacity" json:"capacity"`
	EnrolledStudentIDs []string  `bson:"enrolledStudentIds" json:"enrolledStudentIds"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// SeatsLeft reports remaining capacity.
func (b *Batch) SeatsLeft() int {
	return b.Capacity - len(b.EnrolledStudentIDs)
}

package models

import "time"

// RequestStatus is the lifecycle of a tuition request.
type RequestStatus string

const (
	RequestOpen   RequestStatus = "open"
	RequestClosed RequestStatus = "closed"
)

// TuitionRequest is a student's posted ask that teachers can browse.
type TuitionRequest struct {
	ID          string        `bson:"id" json:"id"`
	StudentID   string        `bson:"studentId" json:"studentId"`
	Subject     string        `bson:"subject" json:"subject"`
	ClassLevel  string        `bson:"classLevel" json:"classLevel"`
	Language    string        `bson:"language,omitempty" json:"language,omitempty"`
	Mode        string        `bson:"mode,omitempty" json:"mode,omitempty"` // online / home
	Budget      float64       `bson:"budget,omitempty" json:"budget,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Status      RequestStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

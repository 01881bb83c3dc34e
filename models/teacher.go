package models

import "time"

// KYCStatus tracks a teacher's identity verification.
type KYCStatus string

const (
	KYCNone     KYCStatus = ""
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// KYCInfo holds uploaded document references and the verification state.
type KYCInfo struct {
	Status             KYCStatus `bson:"status" json:"status"`
	IDDocumentID       string    `bson:"idDocumentId,omitempty" json:"idDocumentId,omitempty"`
	QualificationDocID string    `bson:"qualificationDocId,omitempty" json:"qualificationDocId,omitempty"`
	SubmittedAt        time.Time `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

// Teacher is a tutor account document.
type Teacher struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Subjects     []string           `bson:"subjects" json:"subjects"`
	Classes      []string           `bson:"classes" json:"classes"`
	Languages    []string           `bson:"languages" json:"languages"`
	HourlyRate   float64            `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Availability WeeklyAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	KYC          KYCInfo            `bson:"kyc" json:"kyc"`
	FCMToken     string             `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string             `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TeacherUpdateRequest is the partial profile-update payload. Only non-nil
// fields are written; credentials and KYC state are not reachable from here.
type TeacherUpdateRequest struct {
	Name       *string   `json:"name,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Subjects   *[]string `json:"subjects,omitempty"`
	Classes    *[]string `json:"classes,omitempty"`
	Languages  *[]string `json:"languages,omitempty"`
	HourlyRate *float64  `json:"hourlyRate,omitempty"`
}

// TeacherListing is the public search-result projection of a teacher.
type TeacherListing struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Subjects     []string           `json:"subjects"`
	Classes      []string           `json:"classes"`
	Languages    []string           `json:"languages"`
	HourlyRate   float64            `json:"hourlyRate"`
	Rating       float64            `json:"rating"`
	KYCVerified  bool               `json:"kycVerified"`
	Availability WeeklyAvailability `json:"availability,omitempty"`
}

// Listing builds the public projection, resolving the hourly-rate default.
func (t *Teacher) Listing() TeacherListing {
	return TeacherListing{
		ID:           t.ID,
		Name:         t.Name,
		Subjects:     t.Subjects,
		Classes:      t.Classes,
		Languages:    t.Languages,
		HourlyRate:   ResolveHourlyRate(t),
		Rating:       t.Rating,
		KYCVerified:  t.KYC.Status == KYCVerified,
		Availability: t.Availability,
	}
}

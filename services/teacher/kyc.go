package teacher

import (
	"context"
	"fmt"
	"time"

	"teacherdekho/models"
	"teacherdekho/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const kycFolder = "teacherdekho/kyc"

// SubmitKYC uploads the teacher's identity and qualification documents and
// marks the account pending verification.
func (s *DefaultTeacherService) SubmitKYC(teacherID, idDocPath, qualificationDocPath string) (*models.KYCInfo, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	current, err := s.Repo.GetByID(teacherID)
	if err != nil {
		return nil, fmt.Errorf("teacher not found: %w", err)
	}

	idDocID, err := s.Storage.UploadFile(ctx, idDocPath, kycFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload identity document: %w", err)
	}
	qualDocID, err := s.Storage.UploadFile(ctx, qualificationDocPath, kycFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload qualification document: %w", err)
	}

	info := models.KYCInfo{
		Status:             models.KYCPending,
		IDDocumentID:       idDocID,
		QualificationDocID: qualDocID,
		SubmittedAt:        time.Now(),
	}
	update := bson.M{"$set": bson.M{"kyc": info, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(teacherID, update); err != nil {
		return nil, fmt.Errorf("failed to record KYC submission: %w", err)
	}

	// A resubmission replaces the stored documents; the old uploads are
	// orphaned, so drop them. Failures here do not fail the submission.
	for _, oldID := range []string{current.KYC.IDDocumentID, current.KYC.QualificationDocID} {
		if oldID == "" {
			continue
		}
		if err := s.Storage.DeleteFile(ctx, oldID); err != nil {
			logger.Warn("failed to delete replaced KYC document", zap.String("publicID", oldID), zap.Error(err))
		}
	}

	logger.Info("KYC submitted", zap.String("teacherID", teacherID))
	return &info, nil
}

// kycDocumentURLTTL bounds how long a generated document link stays valid.
const kycDocumentURLTTL = 15 * time.Minute

// KYCDocumentURLs resolves download URLs for a teacher's submitted documents.
// Intended for the review tooling behind SetKYCStatus.
func (s *DefaultTeacherService) KYCDocumentURLs(teacherID string) (map[string]string, error) {
	t, err := s.Repo.GetByID(teacherID)
	if err != nil {
		return nil, fmt.Errorf("teacher not found: %w", err)
	}
	if t.KYC.IDDocumentID == "" || t.KYC.QualificationDocID == "" {
		return nil, fmt.Errorf("no KYC submission on file")
	}

	ctx := context.Background()
	idURL, err := s.Storage.GetDownloadURL(ctx, "image", t.KYC.IDDocumentID, kycDocumentURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity document URL: %w", err)
	}
	qualURL, err := s.Storage.GetDownloadURL(ctx, "image", t.KYC.QualificationDocID, kycDocumentURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve qualification document URL: %w", err)
	}
	return map[string]string{
		"idDocument":            idURL,
		"qualificationDocument": qualURL,
	}, nil
}

// SetKYCStatus moves a pending submission to verified or rejected.
func (s *DefaultTeacherService) SetKYCStatus(teacherID string, status models.KYCStatus) error {
	if status != models.KYCVerified && status != models.KYCRejected {
		return fmt.Errorf("invalid KYC status %q", status)
	}
	update := bson.M{"$set": bson.M{"kyc.status": status, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(teacherID, update); err != nil {
		return fmt.Errorf("failed to update KYC status: %w", err)
	}
	return nil
}

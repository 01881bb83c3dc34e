package teacher

import (
	"context"
	"fmt"
	"testing"
	"time"

	"teacherdekho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage counts uploads and records deletions.
type fakeStorage struct {
	uploaded int
	deleted  []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	f.uploaded++
	return fmt.Sprintf("%s/doc-%d", destFolder, f.uploaded), nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func TestSubmitKYCUploadsBothDocuments(t *testing.T) {
	repo := newFakeTeacherRepo(storedTeacher())
	store := &fakeStorage{}
	svc := &DefaultTeacherService{Repo: repo, Storage: store}

	info, err := svc.SubmitKYC("teacher-1", "/tmp/id.jpg", "/tmp/degree.jpg")
	require.NoError(t, err)

	assert.Equal(t, models.KYCPending, info.Status)
	assert.NotEmpty(t, info.IDDocumentID)
	assert.NotEmpty(t, info.QualificationDocID)
	assert.Equal(t, 2, store.uploaded)
	assert.Empty(t, store.deleted, "first submission has nothing to replace")
}

func TestSubmitKYCResubmissionDropsReplacedDocuments(t *testing.T) {
	existing := storedTeacher()
	existing.KYC = models.KYCInfo{
		Status:             models.KYCRejected,
		IDDocumentID:       "teacherdekho/kyc/old-id",
		QualificationDocID: "teacherdekho/kyc/old-degree",
	}
	repo := newFakeTeacherRepo(existing)
	store := &fakeStorage{}
	svc := &DefaultTeacherService{Repo: repo, Storage: store}

	_, err := svc.SubmitKYC("teacher-1", "/tmp/id.jpg", "/tmp/degree.jpg")
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"teacherdekho/kyc/old-id", "teacherdekho/kyc/old-degree"},
		store.deleted)
}

func TestKYCDocumentURLs(t *testing.T) {
	existing := storedTeacher()
	existing.KYC = models.KYCInfo{
		Status:             models.KYCPending,
		IDDocumentID:       "teacherdekho/kyc/id-1",
		QualificationDocID: "teacherdekho/kyc/degree-1",
	}
	repo := newFakeTeacherRepo(existing)
	svc := &DefaultTeacherService{Repo: repo, Storage: &fakeStorage{}}

	urls, err := svc.KYCDocumentURLs("teacher-1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/teacherdekho/kyc/id-1", urls["idDocument"])
	assert.Equal(t, "https://cdn.example.com/teacherdekho/kyc/degree-1", urls["qualificationDocument"])
}

func TestKYCDocumentURLsWithoutSubmission(t *testing.T) {
	repo := newFakeTeacherRepo(storedTeacher())
	svc := &DefaultTeacherService{Repo: repo, Storage: &fakeStorage{}}

	_, err := svc.KYCDocumentURLs("teacher-1")
	require.Error(t, err)
}

package batchRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teacherdekho/database"
	"teacherdekho/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a batch id matches no document.
var ErrNotFound = errors.New("batch not found")

// ErrFull signals that an enrollment was rejected because the batch is at capacity.
var ErrFull = errors.New("batch is full")

// ErrAlreadyEnrolled signals that the student already holds a seat in the batch.
var ErrAlreadyEnrolled = errors.New("student already enrolled in batch")

// BatchRepository defines persistence operations for group-class batches.
type BatchRepository interface {
	Create(b *models.Batch) error
	GetByID(id string) (*models.Batch, error)
	GetAll() ([]models.Batch, error)
	ListByTeacher(teacherID string) ([]models.Batch, error)
	Enroll(batchID, studentID string) error
	Delete(id string) error
}

// MongoBatchRepo implements BatchRepository using MongoDB.
type MongoBatchRepo struct {
	coll *mongo.Collection
}

// NewMongoBatchRepo creates a new instance of BatchRepository using MongoDB.
func NewMongoBatchRepo() BatchRepository {
	return &MongoBatchRepo{coll: database.Collection("batches")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoBatchRepo) Create(b *models.Batch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}
	return nil
}

func (r *MongoBatchRepo) GetByID(id string) (*models.Batch, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var b models.Batch
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch batch with id %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBatchRepo) GetAll() ([]models.Batch, error) {
	return r.list(bson.M{})
}

func (r *MongoBatchRepo) ListByTeacher(teacherID string) ([]models.Batch, error) {
	return r.list(bson.M{"teacherId": teacherID})
}

func (r *MongoBatchRepo) list(filter bson.M) ([]models.Batch, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer cursor.Close(ctx)
	var batches []models.Batch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("failed to decode batches: %w", err)
	}
	return batches, nil
}

// Enroll adds a student to a batch atomically. The filter rejects the write
// when the batch is full or the student is already enrolled.
func (r *MongoBatchRepo) Enroll(batchID, studentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                 batchID,
		"enrolledStudentIds": bson.M{"$ne": studentID},
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": "$enrolledStudentIds"}, "$capacity"},
		},
	}
	update := bson.M{"$addToSet": bson.M{"enrolledStudentIds": studentID}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to enroll student %s in batch %s: %w", studentID, batchID, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish missing batch, duplicate enrollment and full batch.
		b, gerr := r.GetByID(batchID)
		if gerr != nil {
			return gerr
		}
		for _, enrolled := range b.EnrolledStudentIDs {
			if enrolled == studentID {
				return ErrAlreadyEnrolled
			}
		}
		return ErrFull
	}
	return nil
}

func (r *MongoBatchRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete batch with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package requestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teacherdekho/database"
	"teacherdekho/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a request id matches no document.
var ErrNotFound = errors.New("tuition request not found")

// RequestRepository defines persistence operations for tuition requests.
type RequestRepository interface {
	Create(req *models.TuitionRequest) error
	GetByID(id string) (*models.TuitionRequest, error)
	ListOpen() ([]models.TuitionRequest, error)
	ListByStudent(studentID string) ([]models.TuitionRequest, error)
	SetStatus(id string, status models.RequestStatus) error
	Delete(id string) error
}

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	return &MongoRequestRepo{coll: database.Collection("requests")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoRequestRepo) Create(req *models.TuitionRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create tuition request: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) GetByID(id string) (*models.TuitionRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var req models.TuitionRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tuition request with id %s: %w", id, err)
	}
	return &req, nil
}

func (r *MongoRequestRepo) ListOpen() ([]models.TuitionRequest, error) {
	return r.list(bson.M{"status": models.RequestOpen})
}

func (r *MongoRequestRepo) ListByStudent(studentID string) ([]models.TuitionRequest, error) {
	return r.list(bson.M{"studentId": studentID})
}

func (r *MongoRequestRepo) list(filter bson.M) ([]models.TuitionRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tuition requests: %w", err)
	}
	defer cursor.Close(ctx)
	var requests []models.TuitionRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode tuition requests: %w", err)
	}
	return requests, nil
}

func (r *MongoRequestRepo) SetStatus(id string, status models.RequestStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update tuition request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRequestRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tuition request with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

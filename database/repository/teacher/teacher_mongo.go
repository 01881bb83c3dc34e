package teacherRepo

import (
	"context"
	"fmt"
	"time"

	"teacherdekho/database"
	"teacherdekho/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTeacherRepo implements TeacherRepository using MongoDB.
type MongoTeacherRepo struct {
	coll *mongo.Collection
}

// NewMongoTeacherRepo creates a new instance of TeacherRepository using MongoDB.
func NewMongoTeacherRepo() TeacherRepository {
	return &MongoTeacherRepo{coll: database.Collection("teachers")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoTeacherRepo) GetByID(id string) (*models.Teacher, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var t models.Teacher
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to fetch teacher with id %s: %w", id, err)
	}
	return &t, nil
}

func (r *MongoTeacherRepo) GetByEmail(email string) (*models.Teacher, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var t models.Teacher
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to fetch teacher with email %s: %w", email, err)
	}
	return &t, nil
}

func (r *MongoTeacherRepo) GetAll() ([]models.Teacher, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve teachers: %w", err)
	}
	defer cursor.Close(ctx)
	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("failed to decode teachers: %w", err)
	}
	return teachers, nil
}

// Create inserts a new teacher document.
func (r *MongoTeacherRepo) Create(t *models.Teacher) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create teacher: %w", err)
	}
	return nil
}

// UpdateWithDocument updates a teacher using a custom update document.
// Partial-field writes go through here; there is deliberately no
// whole-struct replace, it would overwrite unset fields.
func (r *MongoTeacherRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update teacher with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("teacher with id %s not found", id)
	}
	return nil
}

// Delete removes a teacher document by its ID.
func (r *MongoTeacherRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete teacher with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("teacher with id %s not found", id)
	}
	return nil
}

// SetAvailability overwrites the whole availability field in one update.
func (r *MongoTeacherRepo) SetAvailability(id string, av models.WeeklyAvailability) error {
	return r.UpdateWithDocument(id, bson.M{
		"$set": bson.M{
			"availability": av,
			"updatedAt":    time.Now(),
		},
	})
}

// SetTokenHash pins (or clears) the hash of the currently issued auth token.
func (r *MongoTeacherRepo) SetTokenHash(id, tokenHash string) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{"tokenHash": tokenHash}})
}

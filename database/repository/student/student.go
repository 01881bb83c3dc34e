package studentRepo

import (
	"context"
	"fmt"
	"time"

	"teacherdekho/database"
	"teacherdekho/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StudentRepository defines persistence operations for student documents.
type StudentRepository interface {
	Create(s *models.Student) error
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	SetTokenHash(id, tokenHash string) error
	SetFCMToken(id, token string) error
}

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	return &MongoStudentRepo{coll: database.Collection("students")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoStudentRepo) Create(s *models.Student) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// UpdateWithDocument updates a student using a custom update document.
// Partial-field writes go through here; there is deliberately no
// whole-struct replace, it would overwrite unset fields.
func (r *MongoStudentRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update student with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with id %s not found", id)
	}
	return nil
}

func (r *MongoStudentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete student with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("student with id %s not found", id)
	}
	return nil
}

func (r *MongoStudentRepo) GetByID(id string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var s models.Student
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to fetch student with id %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoStudentRepo) GetByEmail(email string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var s models.Student
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to fetch student with email %s: %w", email, err)
	}
	return &s, nil
}

func (r *MongoStudentRepo) SetTokenHash(id, tokenHash string) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{"tokenHash": tokenHash}})
}

func (r *MongoStudentRepo) SetFCMToken(id, token string) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{"fcmToken": token}})
}

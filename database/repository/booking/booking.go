package bookingRepo

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

// ErrNotFound is returned when a booking id matches no document, or the
// stored document cannot be decoded into a valid Booking.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines persistence operations for booking records.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByStudent(studentID string) ([]models.Booking, error)
	ListByTeacher(teacherID string) ([]models.Booking, error)
	SetStatus(id string, status models.BookingStatus) error
	SetPaymentStatus(id string, status models.PaymentStatus, intentID string) error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		// A document that won't decode is treated the same as a missing one.
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	return r.list(bson.M{"studentId": studentID})
}

func (r *MongoBookingRepo) ListByTeacher(teacherID string) ([]models.Booking, error) {
	return r.list(bson.M{"teacherId": teacherID})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) SetStatus(id string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) SetPaymentStatus(id string, status models.PaymentStatus, intentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{"paymentStatus": status}
	if intentID != "" {
		update["paymentIntentId"] = intentID
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update booking %s payment status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Package repository provides data access for allocation run history.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunRecord represents a persisted allocation run summary document.
type RunRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID    string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	RequestCount int                `bson:"request_count" json:"request_count"`
	LotCount     int                `bson:"lot_count" json:"lot_count"`
	RowCount     int                `bson:"row_count" json:"row_count"`
	Status       string             `bson:"status" json:"status"` // "success" or "error"
	DurationMs   int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedBy    string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// RunsRepository provides methods for allocation run history operations.
type RunsRepository struct {
	collection *mongo.Collection
}

// NewRunsRepository creates a new runs repository.
func NewRunsRepository(db *MongoDB) *RunsRepository {
	return &RunsRepository{
		collection: db.Runs,
	}
}

// Create persists a run summary.
func (r *RunsRepository) Create(ctx context.Context, record RunRecord) (*RunRecord, error) {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByID returns a single run summary by its ID.
func (r *RunsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*RunRecord, error) {
	var record RunRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns run summaries, newest first.
func (r *RunsRepository) List(ctx context.Context, limit int) ([]RunRecord, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []RunRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RunsRepositoryInterface defines the interface for run history repository operations.
type RunsRepositoryInterface interface {
	Create(ctx context.Context, record RunRecord) (*RunRecord, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*RunRecord, error)
	List(ctx context.Context, limit int) ([]RunRecord, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

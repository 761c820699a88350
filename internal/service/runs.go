package service

import (
	"context"
	"errors"

	"github.com/stockops/allocation-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// RunsService provides allocation run history operations.
type RunsService interface {
	Record(ctx context.Context, record repository.RunRecord) (*repository.RunRecord, error)
	Get(ctx context.Context, id primitive.ObjectID) (*repository.RunRecord, error)
	List(ctx context.Context, limit int) ([]repository.RunRecord, error)
}

// RunsServiceImpl implements RunsService.
type RunsServiceImpl struct {
	runsRepo repository.RunsRepositoryInterface
}

// NewRunsService creates a new runs service.
func NewRunsService(runsRepo repository.RunsRepositoryInterface) RunsService {
	if runsRepo == nil {
		return &RunsServiceImpl{}
	}
	return &RunsServiceImpl{
		runsRepo: runsRepo,
	}
}

func (s *RunsServiceImpl) Record(ctx context.Context, record repository.RunRecord) (*repository.RunRecord, error) {
	if s.runsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.runsRepo.Create(ctx, record)
}

func (s *RunsServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*repository.RunRecord, error) {
	if s.runsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.runsRepo.GetByID(ctx, id)
}

func (s *RunsServiceImpl) List(ctx context.Context, limit int) ([]repository.RunRecord, error) {
	if s.runsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.runsRepo.List(ctx, limit)
}

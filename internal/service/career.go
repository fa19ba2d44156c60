package service

import (
	"context"
	"fmt"

	"github.com/kwakyosong/platform-ui/internal/core"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// CareerService serves the career map page.
type CareerService struct {
	repo core.CareerRepository
}

// NewCareerService constructs a new CareerService.
func NewCareerService(repo core.CareerRepository) *CareerService {
	return &CareerService{repo: repo}
}

// List returns all career paths.
func (s *CareerService) List(ctx context.Context) ([]*model.CareerPath, error) {
	paths, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list career paths: %w", err)
	}
	return paths, nil
}

// Get returns a single career path by ID.
func (s *CareerService) Get(ctx context.Context, id string) (*model.CareerPath, error) {
	path, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get career path %q: %w", id, err)
	}
	return path, nil
}

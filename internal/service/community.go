package service

import (
	"context"
	"fmt"

	"github.com/kwakyosong/platform-ui/internal/core"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// CommunityService serves the community board.
type CommunityService struct {
	repo core.PostRepository
}

// NewCommunityService constructs a new CommunityService.
func NewCommunityService(repo core.PostRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

// List returns posts matching the filter, newest first.
func (s *CommunityService) List(ctx context.Context, filter model.PostFilter) ([]*model.CommunityPost, error) {
	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get returns a single post by ID.
func (s *CommunityService) Get(ctx context.Context, id string) (*model.CommunityPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %q: %w", id, err)
	}
	return post, nil
}

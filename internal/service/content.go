package service

import (
	"context"
	"fmt"

	"github.com/kwakyosong/platform-ui/internal/core"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// ContentServiceOptions groups dependencies for ContentService.
type ContentServiceOptions struct {
	Repo      core.ContentRepository
	Evaluator ExprEvaluator
}

// ContentService encapsulates the content catalog logic shared by the
// public pages and the admin contents screen.
type ContentService struct {
	repo core.ContentRepository
	jems ExprEvaluator
}

// NewContentService constructs a new ContentService.
func NewContentService(opts ContentServiceOptions) *ContentService {
	jems := opts.Evaluator
	if jems == nil {
		jems = NewExprEvaluator()
	}
	return &ContentService{repo: opts.Repo, jems: jems}
}

// List returns contents matching the filter, newest first.
func (s *ContentService) List(ctx context.Context, filter model.ContentFilter) ([]*model.Content, error) {
	contents, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return contents, nil
}

// Get returns a single content item by ID.
func (s *ContentService) Get(ctx context.Context, id string) (*model.Content, error) {
	content, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content %q: %w", id, err)
	}
	return content, nil
}

// AdminList returns contents matching the filter, further narrowed by an
// optional JMESPath expression (e.g. `status == 'ongoing'`).
func (s *ContentService) AdminList(
	ctx context.Context,
	filter model.ContentFilter,
	expr string,
) ([]*model.Content, error) {
	contents, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return filterByExpr(s.jems, expr, contents)
}

// ValidateExpr reports whether an admin filter expression parses.
func (s *ContentService) ValidateExpr(expr string) error {
	return s.jems.Validate(expr)
}

// Create adds a content item to the catalog.
func (s *ContentService) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	if c.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !c.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", c.Category)
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return created, nil
}

// Update replaces a content item.
func (s *ContentService) Update(ctx context.Context, id string, c *model.Content) (*model.Content, error) {
	if !c.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", c.Category)
	}

	updated, err := s.repo.Update(ctx, id, c)
	if err != nil {
		return nil, fmt.Errorf("update content %q: %w", id, err)
	}
	return updated, nil
}

// Delete removes a content item. Returns false when it did not exist.
func (s *ContentService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete content %q: %w", id, err)
	}
	return deleted, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/kwakyosong/platform-ui/internal/core"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// AccountService serves the admin users screen.
type AccountService struct {
	repo core.AccountRepository
}

// NewAccountService constructs a new AccountService.
func NewAccountService(repo core.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// List returns accounts matching the filter, newest first.
func (s *AccountService) List(ctx context.Context, filter model.AccountFilter) ([]*model.Account, error) {
	accounts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Get returns a single account by ID.
func (s *AccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account %q: %w", id, err)
	}
	return account, nil
}

// Delete removes an account. Returns false when it did not exist.
func (s *AccountService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete account %q: %w", id, err)
	}
	return deleted, nil
}

// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the repository interfaces in internal/core. To regenerate mocks after
// interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockContentRepository(ctrl)
//	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(contents, nil)
package mocks

// Generate mock for ContentRepository interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=content_repository_mock.go github.com/kwakyosong/platform-ui/internal/core ContentRepository

// Generate mock for PostRepository interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=post_repository_mock.go github.com/kwakyosong/platform-ui/internal/core PostRepository

// Generate mock for CareerRepository interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=career_repository_mock.go github.com/kwakyosong/platform-ui/internal/core CareerRepository

// Generate mock for AccountRepository interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_repository_mock.go github.com/kwakyosong/platform-ui/internal/core AccountRepository

// Generate mock for CacheRepository interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/kwakyosong/platform-ui/internal/core CacheRepository

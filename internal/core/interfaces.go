// Package core defines the repository contracts (ports in hexagonal
// architecture) between the service layer and the data layer. Service
// implementations depend on these interfaces, not on concrete stores.
package core

import (
	"context"
	"time"

	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// ContentRepository defines the interface for content catalog operations.
type ContentRepository interface {
	// List returns contents matching the filter, newest first.
	List(ctx context.Context, filter model.ContentFilter) ([]*model.Content, error)
	GetByID(ctx context.Context, id string) (*model.Content, error)
	Create(ctx context.Context, c *model.Content) (*model.Content, error)
	Update(ctx context.Context, id string, c *model.Content) (*model.Content, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PostRepository defines the interface for community post operations.
type PostRepository interface {
	List(ctx context.Context, filter model.PostFilter) ([]*model.CommunityPost, error)
	GetByID(ctx context.Context, id string) (*model.CommunityPost, error)
}

// CareerRepository defines the interface for career path data.
type CareerRepository interface {
	List(ctx context.Context) ([]*model.CareerPath, error)
	GetByID(ctx context.Context, id string) (*model.CareerPath, error)
}

// AccountRepository defines the interface for account administration.
type AccountRepository interface {
	List(ctx context.Context, filter model.AccountFilter) ([]*model.Account, error)
	GetByID(ctx context.Context, id string) (*model.Account, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CacheRepository defines the interface for caching operations. The
// dashboard service uses it to keep computed stats off the hot path.
type CacheRepository interface {
	// Set stores a value with the given TTL. A TTL of 0 never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key. Returns true if the key existed.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// ErrNotFound is returned when a catalog entity does not exist.
var ErrNotFound = errors.New("not found")

// ContentRepo implements core.ContentRepository over an in-memory slice.
type ContentRepo struct {
	mu       sync.RWMutex
	contents []*model.Content
}

// NewContentRepo creates a content repository seeded with the given contents.
func NewContentRepo(seed []*model.Content) *ContentRepo {
	r := &ContentRepo{contents: make([]*model.Content, 0, len(seed))}
	for _, c := range seed {
		cp := *c
		r.contents = append(r.contents, &cp)
	}
	return r
}

func (r *ContentRepo) List(_ context.Context, filter model.ContentFilter) ([]*model.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Content, 0, len(r.contents))
	for _, c := range r.contents {
		if c.Matches(filter) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ContentRepo) GetByID(_ context.Context, id string) (*model.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contents {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ContentRepo) Create(_ context.Context, c *model.Content) (*model.Content, error) {
	cp := *c
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.contents = append(r.contents, &cp)

	out := cp
	return &out, nil
}

func (r *ContentRepo) Update(_ context.Context, id string, c *model.Content) (*model.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.contents {
		if existing.ID == id {
			cp := *c
			cp.ID = id
			cp.CreatedAt = existing.CreatedAt
			r.contents[i] = &cp

			out := cp
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ContentRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.contents {
		if c.ID == id {
			r.contents = append(r.contents[:i], r.contents[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// PostRepo implements core.PostRepository over an in-memory slice.
type PostRepo struct {
	mu    sync.RWMutex
	posts []*model.CommunityPost
}

// NewPostRepo creates a post repository seeded with the given posts.
func NewPostRepo(seed []*model.CommunityPost) *PostRepo {
	r := &PostRepo{posts: make([]*model.CommunityPost, 0, len(seed))}
	for _, p := range seed {
		cp := *p
		r.posts = append(r.posts, &cp)
	}
	return r
}

func (r *PostRepo) List(_ context.Context, filter model.PostFilter) ([]*model.CommunityPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CommunityPost, 0, len(r.posts))
	for _, p := range r.posts {
		if p.Matches(filter) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PostRepo) GetByID(_ context.Context, id string) (*model.CommunityPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CareerRepo implements core.CareerRepository over an in-memory slice.
type CareerRepo struct {
	mu    sync.RWMutex
	paths []*model.CareerPath
}

// NewCareerRepo creates a career path repository seeded with the given paths.
func NewCareerRepo(seed []*model.CareerPath) *CareerRepo {
	r := &CareerRepo{paths: make([]*model.CareerPath, 0, len(seed))}
	for _, p := range seed {
		cp := *p
		r.paths = append(r.paths, &cp)
	}
	return r
}

func (r *CareerRepo) List(_ context.Context) ([]*model.CareerPath, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CareerPath, 0, len(r.paths))
	for _, p := range r.paths {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CareerRepo) GetByID(_ context.Context, id string) (*model.CareerPath, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.paths {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// AccountRepo implements core.AccountRepository over an in-memory slice.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts []*model.Account
}

// NewAccountRepo creates an account repository seeded with the given accounts.
func NewAccountRepo(seed []*model.Account) *AccountRepo {
	r := &AccountRepo{accounts: make([]*model.Account, 0, len(seed))}
	for _, a := range seed {
		cp := *a
		r.accounts = append(r.accounts, &cp)
	}
	return r
}

func (r *AccountRepo) List(_ context.Context, filter model.AccountFilter) ([]*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		if a.Matches(filter) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].JoinedAt.After(out[j].JoinedAt)
	})
	return out, nil
}

func (r *AccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *AccountRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

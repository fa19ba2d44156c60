package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kwakyosong/platform-ui/internal/core"
	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

const (
	dashboardStatsKey        = "dashboard:stats"
	defaultDashboardStatsTTL = time.Minute
)

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalContents  int                           `json:"total_contents"`
	ByCategory     map[model.ContentCategory]int `json:"by_category"`
	ByStatus       map[model.ContentStatus]int   `json:"by_status"`
	TotalPosts     int                           `json:"total_posts"`
	TotalAccounts  int                           `json:"total_accounts"`
	AccountsByRole map[domainauth.Role]int       `json:"accounts_by_role"`
	GeneratedAt    time.Time                     `json:"generated_at"`
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Contents core.ContentRepository
	Posts    core.PostRepository
	Accounts core.AccountRepository
	Cache    core.CacheRepository
	Logger   *slog.Logger
	// StatsTTL bounds how long cached stats are served; zero means one minute.
	StatsTTL time.Duration
}

// DashboardService computes admin dashboard stats, caching the result
// briefly so repeated htmx refreshes stay cheap.
type DashboardService struct {
	contents core.ContentRepository
	posts    core.PostRepository
	accounts core.AccountRepository
	cache    core.CacheRepository
	logger   *slog.Logger
	statsTTL time.Duration
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.StatsTTL
	if ttl <= 0 {
		ttl = defaultDashboardStatsTTL
	}
	return &DashboardService{
		contents: opts.Contents,
		posts:    opts.Posts,
		accounts: opts.Accounts,
		cache:    opts.Cache,
		logger:   logger,
		statsTTL: ttl,
	}
}

// Stats returns the dashboard counters, served from cache when fresh.
// Cache failures degrade to a recomputation rather than an error.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardStatsKey); err != nil {
			s.logger.Warn("dashboard stats cache read failed", "error", err)
		} else if len(cached) > 0 {
			var stats DashboardStats
			if unmarshalErr := json.Unmarshal(cached, &stats); unmarshalErr == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, marshalErr := json.Marshal(stats); marshalErr == nil {
			if setErr := s.cache.Set(ctx, dashboardStatsKey, data, s.statsTTL); setErr != nil {
				s.logger.Warn("dashboard stats cache write failed", "error", setErr)
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached stats, e.g. after an admin edits the catalog.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, dashboardStatsKey); err != nil {
		s.logger.Warn("dashboard stats cache invalidate failed", "error", err)
	}
}

func (s *DashboardService) compute(ctx context.Context) (*DashboardStats, error) {
	contents, err := s.contents.List(ctx, model.ContentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	posts, err := s.posts.List(ctx, model.PostFilter{})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	accounts, err := s.accounts.List(ctx, model.AccountFilter{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	stats := &DashboardStats{
		TotalContents:  len(contents),
		ByCategory:     make(map[model.ContentCategory]int),
		ByStatus:       make(map[model.ContentStatus]int),
		TotalPosts:     len(posts),
		TotalAccounts:  len(accounts),
		AccountsByRole: make(map[domainauth.Role]int),
		GeneratedAt:    time.Now(),
	}
	for _, c := range contents {
		stats.ByCategory[c.Category]++
		stats.ByStatus[c.Status]++
	}
	for _, a := range accounts {
		stats.AccountsByRole[a.Role]++
	}

	return stats, nil
}

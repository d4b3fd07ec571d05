package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"AIV_training_backend/internal/model"
)

type DashboardService struct {
	repo SignupRepository
}

func NewDashboardService(repo SignupRepository) *DashboardService {
	return &DashboardService{
		repo: repo,
	}
}

// ListSignups returns the signups matching the search query, newest first,
// together with the unfiltered total so an empty result can be told apart
// from an empty table.
func (s *DashboardService) ListSignups(ctx context.Context, query string) ([]*model.Signup, int, error) {
	signups, err := s.repo.ListSignups(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get signups: %w", err)
	}

	return FilterSignups(signups, query), len(signups), nil
}

// FilterSignups keeps signups whose full name, email or referral code
// contains the query, case-insensitively. An empty query matches all.
func FilterSignups(signups []*model.Signup, query string) []*model.Signup {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return signups
	}

	matched := make([]*model.Signup, 0, len(signups))
	for _, s := range signups {
		if containsFold(s.Email, query) ||
			(s.FullName != nil && containsFold(*s.FullName, query)) ||
			(s.ReferralCode != nil && containsFold(*s.ReferralCode, query)) {
			matched = append(matched, s)
		}
	}

	return matched
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

func (s *DashboardService) Stats(ctx context.Context) (*model.SignupStats, error) {
	signups, err := s.repo.ListSignups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups: %w", err)
	}

	stats := ComputeStats(signups, time.Now())
	return &stats, nil
}

// ComputeStats derives the dashboard counters from the full list.
// "Today" is the viewer's calendar day, "week" the trailing 7x24h window.
func ComputeStats(signups []*model.Signup, now time.Time) model.SignupStats {
	stats := model.SignupStats{Total: len(signups)}
	weekAgo := now.Add(-7 * 24 * time.Hour)
	year, month, day := now.Date()

	for _, s := range signups {
		createdLocal := s.CreatedAt.In(now.Location())
		y, m, d := createdLocal.Date()
		if y == year && m == month && d == day {
			stats.Today++
		}
		if !s.CreatedAt.Before(weekAgo) {
			stats.Week++
		}
		if s.Referred() {
			stats.Referred++
		}
	}

	return stats
}

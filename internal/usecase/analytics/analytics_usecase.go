package analytics

import (
	"context"
	"fmt"
	"math"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
)

type AnalyticsUseCase struct {
	videoRepo    repository.VideoRepository
	campaignRepo repository.CampaignRepository
	matchRepo    repository.MatchRepository
}

func NewAnalyticsUseCase(
	videoRepo repository.VideoRepository,
	campaignRepo repository.CampaignRepository,
	matchRepo repository.MatchRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		videoRepo:    videoRepo,
		campaignRepo: campaignRepo,
		matchRepo:    matchRepo,
	}
}

// Dashboard holds the counters shown on an account's dashboard.
// Video fields are set for creators, campaign fields for marketers.
type Dashboard struct {
	Role            domain.Role `json:"role"`
	TotalVideos     *int        `json:"total_videos,omitempty"`
	MatchedVideos   *int        `json:"matched_videos,omitempty"`
	TotalCampaigns  *int        `json:"total_campaigns,omitempty"`
	TotalMatches    int         `json:"total_matches"`
	AcceptedMatches int         `json:"accepted_matches"`
	PendingMatches  int         `json:"pending_matches"`
	AverageScore    float64     `json:"average_score"`
}

// GetDashboard returns the actor's dashboard counters
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context, actor domain.Actor) (*Dashboard, error) {
	dashboard := &Dashboard{Role: actor.Role}

	var (
		stats *repository.MatchStats
		err   error
	)
	switch actor.Role {
	case domain.RoleCreator:
		stats, err = uc.creatorCounts(ctx, actor.ID, dashboard)
	case domain.RoleMarketer:
		stats, err = uc.marketerCounts(ctx, actor.ID, dashboard)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	dashboard.TotalMatches = stats.Total
	dashboard.AcceptedMatches = stats.Accepted
	dashboard.PendingMatches = stats.Pending
	dashboard.AverageScore = math.Round(stats.AverageScore*10) / 10

	return dashboard, nil
}

func (uc *AnalyticsUseCase) creatorCounts(ctx context.Context, creatorID int, d *Dashboard) (*repository.MatchStats, error) {
	total, matched, err := uc.videoRepo.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}
	d.TotalVideos = &total
	d.MatchedVideos = &matched

	stats, err := uc.matchRepo.StatsForCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match stats: %w", err)
	}
	return stats, nil
}

func (uc *AnalyticsUseCase) marketerCounts(ctx context.Context, marketerID int, d *Dashboard) (*repository.MatchStats, error) {
	total, err := uc.campaignRepo.CountByMarketer(ctx, marketerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}
	d.TotalCampaigns = &total

	stats, err := uc.matchRepo.StatsForMarketer(ctx, marketerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match stats: %w", err)
	}
	return stats, nil
}

package analytics

import (
	"context"
	"testing"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	videos := memory.NewVideoRepository(store)
	campaigns := memory.NewCampaignRepository(store)
	matches := memory.NewMatchRepository(store)
	uc := NewAnalyticsUseCase(videos, campaigns, matches)

	creator := domain.Actor{ID: 1, Role: domain.RoleCreator}
	marketer := domain.Actor{ID: 2, Role: domain.RoleMarketer}

	v1 := &domain.Video{CreatorID: creator.ID, Title: "a", Genre: "comedy", Status: domain.VideoStatusMatched}
	v2 := &domain.Video{CreatorID: creator.ID, Title: "b", Genre: "comedy", Status: domain.VideoStatusUploaded}
	require.NoError(t, videos.Create(ctx, v1))
	require.NoError(t, videos.Create(ctx, v2))

	c1 := &domain.Campaign{MarketerID: marketer.ID, ProductName: "x", Category: "food"}
	c2 := &domain.Campaign{MarketerID: 3, ProductName: "y", Category: "food"}
	require.NoError(t, campaigns.Create(ctx, c1))
	require.NoError(t, campaigns.Create(ctx, c2))

	for _, m := range []*domain.Match{
		{VideoID: v1.ID, CampaignID: c1.ID, MatchScore: 80, Status: domain.MatchStatusAccepted, Source: domain.MatchSourceAI},
		{VideoID: v1.ID, CampaignID: c2.ID, MatchScore: 65, Status: domain.MatchStatusPending, Source: domain.MatchSourceFallback},
		{VideoID: v2.ID, CampaignID: c1.ID, MatchScore: 50, Status: domain.MatchStatusRejected, Source: domain.MatchSourceFallback},
	} {
		require.NoError(t, matches.Create(ctx, m))
	}

	t.Run("creator", func(t *testing.T) {
		d, err := uc.GetDashboard(ctx, creator)
		require.NoError(t, err)
		require.NotNil(t, d.TotalVideos)
		require.Equal(t, 2, *d.TotalVideos)
		require.Equal(t, 1, *d.MatchedVideos)
		require.Nil(t, d.TotalCampaigns)
		require.Equal(t, 3, d.TotalMatches)
		require.Equal(t, 1, d.AcceptedMatches)
		require.Equal(t, 1, d.PendingMatches)
		require.Equal(t, 65.0, d.AverageScore)
	})

	t.Run("marketer", func(t *testing.T) {
		d, err := uc.GetDashboard(ctx, marketer)
		require.NoError(t, err)
		require.Nil(t, d.TotalVideos)
		require.Equal(t, 1, *d.TotalCampaigns)
		require.Equal(t, 2, d.TotalMatches)
		require.Equal(t, 1, d.AcceptedMatches)
		require.Equal(t, 0, d.PendingMatches)
		require.Equal(t, 65.0, d.AverageScore)
	})

	t.Run("empty account", func(t *testing.T) {
		d, err := uc.GetDashboard(ctx, domain.Actor{ID: 99, Role: domain.RoleMarketer})
		require.NoError(t, err)
		require.Equal(t, 0, *d.TotalCampaigns)
		require.Equal(t, 0, d.TotalMatches)
		require.Zero(t, d.AverageScore)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := uc.GetDashboard(ctx, domain.Actor{ID: 1, Role: "admin"})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}

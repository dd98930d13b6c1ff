package repository

import (
	"context"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
)

// MatchStats aggregates the matches visible to one account
type MatchStats struct {
	Total        int     `db:"total"`
	Accepted     int     `db:"accepted"`
	Pending      int     `db:"pending"`
	AverageScore float64 `db:"average_score"`
}

type MatchRepository interface {
	// Create inserts a match. It returns domain.ErrMatchExists when the
	// (video, campaign) pair is already stored.
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByPair(ctx context.Context, videoID, campaignID int) (*domain.Match, error)
	ListForCreator(ctx context.Context, creatorID int) ([]*domain.MatchDetails, error)
	ListForMarketer(ctx context.Context, marketerID int) ([]*domain.MatchDetails, error)
	UpdateStatus(ctx context.Context, id int, status domain.MatchStatus) error
	StatsForCreator(ctx context.Context, creatorID int) (*MatchStats, error)
	StatsForMarketer(ctx context.Context, marketerID int) (*MatchStats, error)
}

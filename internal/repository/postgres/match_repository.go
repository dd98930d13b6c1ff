package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	// The unique (video_id, campaign_id) constraint decides concurrent inserts
	query := `
		INSERT INTO matches (video_id, campaign_id, match_score, reasoning, source, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (video_id, campaign_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		match.VideoID, match.CampaignID, match.MatchScore, match.Reasoning, match.Source, match.Status,
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMatchExists
	}
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByPair(ctx context.Context, videoID, campaignID int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE video_id = $1 AND campaign_id = $2`
	err := r.db.GetContext(ctx, &match, query, videoID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

const matchDetailsSelect = `
	SELECT m.*,
	       v.title AS video_title, v.creator_id,
	       c.product_name, c.category, c.marketer_id
	FROM matches m
	JOIN videos v ON v.id = m.video_id
	JOIN campaigns c ON c.id = m.campaign_id
`

func (r *matchRepository) ListForCreator(ctx context.Context, creatorID int) ([]*domain.MatchDetails, error) {
	matches := make([]*domain.MatchDetails, 0)
	query := matchDetailsSelect + ` WHERE v.creator_id = $1 ORDER BY m.match_score DESC, m.id`
	err := r.db.SelectContext(ctx, &matches, query, creatorID)
	return matches, err
}

func (r *matchRepository) ListForMarketer(ctx context.Context, marketerID int) ([]*domain.MatchDetails, error) {
	matches := make([]*domain.MatchDetails, 0)
	query := matchDetailsSelect + ` WHERE c.marketer_id = $1 ORDER BY m.match_score DESC, m.id`
	err := r.db.SelectContext(ctx, &matches, query, marketerID)
	return matches, err
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int, status domain.MatchStatus) error {
	query := `UPDATE matches SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

const matchStatsSelect = `
	SELECT COUNT(*) AS total,
	       COUNT(*) FILTER (WHERE m.status = 'accepted') AS accepted,
	       COUNT(*) FILTER (WHERE m.status = 'pending') AS pending,
	       COALESCE(AVG(m.match_score), 0) AS average_score
	FROM matches m
`

func (r *matchRepository) StatsForCreator(ctx context.Context, creatorID int) (*repository.MatchStats, error) {
	var stats repository.MatchStats
	query := matchStatsSelect + ` JOIN videos v ON v.id = m.video_id WHERE v.creator_id = $1`
	if err := r.db.GetContext(ctx, &stats, query, creatorID); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *matchRepository) StatsForMarketer(ctx context.Context, marketerID int) (*repository.MatchStats, error) {
	var stats repository.MatchStats
	query := matchStatsSelect + ` JOIN campaigns c ON c.id = m.campaign_id WHERE c.marketer_id = $1`
	if err := r.db.GetContext(ctx, &stats, query, marketerID); err != nil {
		return nil, err
	}
	return &stats, nil
}

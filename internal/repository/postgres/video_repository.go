package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO videos (
			creator_id, title, genre, tone, description,
			file_path, original_name, mime_type, size_bytes, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		video.CreatorID, video.Title, video.Genre, video.Tone, video.Description,
		video.FilePath, video.OriginalName, video.MimeType, video.SizeBytes, video.Status,
	).Scan(&video.ID, &video.CreatedAt, &video.UpdatedAt)
}

func (r *videoRepository) GetByID(ctx context.Context, id int) (*domain.Video, error) {
	var video domain.Video
	err := r.db.GetContext(ctx, &video, `SELECT * FROM videos WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	videos := make([]*domain.Video, 0)
	err := r.db.SelectContext(ctx, &videos, `SELECT * FROM videos ORDER BY id`)
	return videos, err
}

func (r *videoRepository) ListByCreator(ctx context.Context, creatorID int) ([]*domain.Video, error) {
	videos := make([]*domain.Video, 0)
	query := `SELECT * FROM videos WHERE creator_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &videos, query, creatorID)
	return videos, err
}

func (r *videoRepository) UpdateStatus(ctx context.Context, id int, status domain.VideoStatus) error {
	query := `UPDATE videos SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepository) CountByCreator(ctx context.Context, creatorID int) (int, int, error) {
	var counts struct {
		Total   int `db:"total"`
		Matched int `db:"matched"`
	}
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'matched') AS matched
		FROM videos WHERE creator_id = $1
	`
	if err := r.db.GetContext(ctx, &counts, query, creatorID); err != nil {
		return 0, 0, err
	}
	return counts.Total, counts.Matched, nil
}

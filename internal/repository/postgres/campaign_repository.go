package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		INSERT INTO campaigns (marketer_id, product_name, category, description, budget, target_audience)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		campaign.MarketerID, campaign.ProductName, campaign.Category,
		campaign.Description, campaign.Budget, campaign.TargetAudience,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *campaignRepository) GetByID(ctx context.Context, id int) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.GetContext(ctx, &campaign, `SELECT * FROM campaigns WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) List(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns := make([]*domain.Campaign, 0)
	err := r.db.SelectContext(ctx, &campaigns, `SELECT * FROM campaigns ORDER BY id`)
	return campaigns, err
}

func (r *campaignRepository) ListByMarketer(ctx context.Context, marketerID int) ([]*domain.Campaign, error) {
	campaigns := make([]*domain.Campaign, 0)
	query := `SELECT * FROM campaigns WHERE marketer_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &campaigns, query, marketerID)
	return campaigns, err
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		UPDATE campaigns
		SET product_name = $1, category = $2, description = $3,
		    budget = $4, target_audience = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		campaign.ProductName, campaign.Category, campaign.Description,
		campaign.Budget, campaign.TargetAudience, campaign.ID,
	).Scan(&campaign.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCampaignNotFound
	}
	return err
}

func (r *campaignRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (r *campaignRepository) CountByMarketer(ctx context.Context, marketerID int) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM campaigns WHERE marketer_id = $1`, marketerID)
	return total, err
}

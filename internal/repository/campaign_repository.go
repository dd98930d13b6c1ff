package repository

import (
	"context"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id int) (*domain.Campaign, error)
	// List returns every campaign in id order
	List(ctx context.Context) ([]*domain.Campaign, error)
	ListByMarketer(ctx context.Context, marketerID int) ([]*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, id int) error
	CountByMarketer(ctx context.Context, marketerID int) (int, error)
}

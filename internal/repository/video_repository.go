package repository

import (
	"context"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
)

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id int) (*domain.Video, error)
	// List returns every video in id order
	List(ctx context.Context) ([]*domain.Video, error)
	ListByCreator(ctx context.Context, creatorID int) ([]*domain.Video, error)
	UpdateStatus(ctx context.Context, id int, status domain.VideoStatus) error
	Delete(ctx context.Context, id int) error
	CountByCreator(ctx context.Context, creatorID int) (total int, matched int, err error)
}

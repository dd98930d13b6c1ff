package video

import (
	"context"
	"fmt"
	"io"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
	"go.uber.org/zap"
)

// MediaStorage persists uploaded media files
type MediaStorage interface {
	Save(ctx context.Context, originalName string, r io.Reader) (path string, size int64, err error)
	Delete(ctx context.Context, path string) error
}

type VideoUseCase struct {
	videoRepo    repository.VideoRepository
	storage      MediaStorage
	maxBytes     int64
	allowedMIMEs map[string]struct{}
	logger       *zap.Logger
}

func NewVideoUseCase(
	videoRepo repository.VideoRepository,
	storage MediaStorage,
	maxUploadMB int,
	allowedMIMEs []string,
	logger *zap.Logger,
) *VideoUseCase {
	allowed := make(map[string]struct{}, len(allowedMIMEs))
	for _, m := range allowedMIMEs {
		allowed[m] = struct{}{}
	}
	return &VideoUseCase{
		videoRepo:    videoRepo,
		storage:      storage,
		maxBytes:     int64(maxUploadMB) << 20,
		allowedMIMEs: allowed,
		logger:       logger,
	}
}

// UploadVideoRequest holds the metadata sent with an upload
type UploadVideoRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=200"`
	Genre       string  `form:"genre" binding:"required,max=50"`
	Tone        string  `form:"tone" binding:"required,max=100"`
	Description *string `form:"description" binding:"omitempty,max=2000"`
}

// UploadedFile describes the media part of an upload
type UploadedFile struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// Upload stores the file and records the video for the creator
func (uc *VideoUseCase) Upload(ctx context.Context, creatorID int, req *UploadVideoRequest, file *UploadedFile) (*domain.Video, error) {
	if _, ok := uc.allowedMIMEs[file.MimeType]; !ok {
		return nil, domain.ErrUnsupportedMedia
	}
	if file.Size > uc.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	path, size, err := uc.storage.Save(ctx, file.Name, file.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store video: %w", err)
	}

	video := &domain.Video{
		CreatorID:    creatorID,
		Title:        req.Title,
		Genre:        req.Genre,
		Tone:         req.Tone,
		Description:  req.Description,
		FilePath:     path,
		OriginalName: file.Name,
		MimeType:     file.MimeType,
		SizeBytes:    size,
		Status:       domain.VideoStatusUploaded,
	}
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		if delErr := uc.storage.Delete(ctx, path); delErr != nil {
			uc.logger.Warn("failed to clean up stored file", zap.String("path", path), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	uc.logger.Info("video uploaded", zap.Int("video_id", video.ID), zap.Int("creator_id", creatorID), zap.Int64("size", size))
	return video, nil
}

// ListMyVideos returns the creator's videos, newest first
func (uc *VideoUseCase) ListMyVideos(ctx context.Context, creatorID int) ([]*domain.Video, error) {
	videos, err := uc.videoRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// GetVideo returns a video. Creators may only see their own videos.
func (uc *VideoUseCase) GetVideo(ctx context.Context, videoID int, actor domain.Actor) (*domain.Video, error) {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCreator && video.CreatorID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return video, nil
}

// DeleteVideo removes the video record, its matches and the stored file
func (uc *VideoUseCase) DeleteVideo(ctx context.Context, videoID int, actor domain.Actor) error {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video.CreatorID != actor.ID {
		return domain.ErrForbidden
	}

	if err := uc.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}
	if err := uc.storage.Delete(ctx, video.FilePath); err != nil {
		uc.logger.Warn("failed to delete stored file", zap.Int("video_id", videoID), zap.Error(err))
	}
	return nil
}

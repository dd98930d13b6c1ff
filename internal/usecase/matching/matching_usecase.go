package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/metrics"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PairLocker serialises the check-then-insert of a single pair across
// processes. Release must be safe to call once.
type PairLocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

type MatchUseCase struct {
	videoRepo    repository.VideoRepository
	campaignRepo repository.CampaignRepository
	matchRepo    repository.MatchRepository
	generator    *Generator
	locker       PairLocker
	concurrency  int
	logger       *zap.Logger
}

func NewMatchUseCase(
	videoRepo repository.VideoRepository,
	campaignRepo repository.CampaignRepository,
	matchRepo repository.MatchRepository,
	generator *Generator,
	locker PairLocker,
	concurrency int,
	logger *zap.Logger,
) *MatchUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &MatchUseCase{
		videoRepo:    videoRepo,
		campaignRepo: campaignRepo,
		matchRepo:    matchRepo,
		generator:    generator,
		locker:       locker,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// UpdateStatusRequest represents an accept/reject decision
type UpdateStatusRequest struct {
	Status domain.MatchStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

type pair struct {
	video    *domain.Video
	campaign *domain.Campaign
}

// batchStats counts how each pair of one request was answered
type batchStats struct {
	reused    atomic.Int32
	generated atomic.Int32
}

func (s *batchStats) reuse() {
	s.reused.Add(1)
	metrics.MatchesReused.Inc()
}

// FindMatchesForVideo scores the video against every campaign. Pairs that
// already have a match are returned as stored; the rest are generated and
// persisted. The result is ordered by score, highest first.
func (uc *MatchUseCase) FindMatchesForVideo(ctx context.Context, videoID int, actor domain.Actor) ([]*domain.Match, error) {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCreator && video.CreatorID != actor.ID {
		return nil, domain.ErrForbidden
	}

	campaigns, err := uc.campaignRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	pairs := make([]pair, 0, len(campaigns))
	for _, campaign := range campaigns {
		pairs = append(pairs, pair{video: video, campaign: campaign})
	}

	return uc.resolve(ctx, pairs, zap.Int("video_id", videoID))
}

// FindMatchesForCampaign is FindMatchesForVideo with the roles swapped
func (uc *MatchUseCase) FindMatchesForCampaign(ctx context.Context, campaignID int, actor domain.Actor) ([]*domain.Match, error) {
	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleMarketer && campaign.MarketerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	videos, err := uc.videoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	pairs := make([]pair, 0, len(videos))
	for _, video := range videos {
		pairs = append(pairs, pair{video: video, campaign: campaign})
	}

	return uc.resolve(ctx, pairs, zap.Int("campaign_id", campaignID))
}

func (uc *MatchUseCase) resolve(ctx context.Context, pairs []pair, target zap.Field) ([]*domain.Match, error) {
	// Indexed by discovery order so the stable sort keeps ties in place
	matches := make([]*domain.Match, len(pairs))
	var stats batchStats

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			match, err := uc.resolvePair(gctx, p, &stats)
			if err != nil {
				return err
			}
			matches[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	uc.logger.Info("matches resolved",
		target,
		zap.Int("pairs", len(pairs)),
		zap.Int32("reused", stats.reused.Load()),
		zap.Int32("generated", stats.generated.Load()),
	)

	return matches, nil
}

func (uc *MatchUseCase) resolvePair(ctx context.Context, p pair, stats *batchStats) (*domain.Match, error) {
	existing, err := uc.existing(ctx, p)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		stats.reuse()
		return existing, nil
	}

	release, err := uc.locker.Lock(ctx, pairKey(p))
	if err != nil {
		// The unique constraint still guards the pair
		uc.logger.Warn("pair lock unavailable", zap.String("key", pairKey(p)), zap.Error(err))
	} else {
		defer release()

		// Another request may have stored the pair while we waited
		existing, err = uc.existing(ctx, p)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			stats.reuse()
			return existing, nil
		}
	}

	result := uc.generator.Generate(ctx, p.video.Ref(), p.campaign.Ref())

	// A fallback caused by cancellation is not a generator failure and must not be stored
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	match := &domain.Match{
		VideoID:    p.video.ID,
		CampaignID: p.campaign.ID,
		MatchScore: result.Score,
		Reasoning:  result.Reasoning,
		Source:     result.Source,
		Status:     domain.MatchStatusPending,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		if !errors.Is(err, domain.ErrMatchExists) {
			return nil, fmt.Errorf("failed to create match: %w", err)
		}
		stored, err := uc.matchRepo.GetByPair(ctx, p.video.ID, p.campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload match: %w", err)
		}
		stats.reuse()
		return stored, nil
	}
	stats.generated.Add(1)

	if err := uc.videoRepo.UpdateStatus(ctx, p.video.ID, domain.VideoStatusMatched); err != nil {
		return nil, fmt.Errorf("failed to mark video matched: %w", err)
	}

	return match, nil
}

func (uc *MatchUseCase) existing(ctx context.Context, p pair) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByPair(ctx, p.video.ID, p.campaign.ID)
	if err == nil {
		return match, nil
	}
	if errors.Is(err, domain.ErrMatchNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get match: %w", err)
}

func pairKey(p pair) string {
	return fmt.Sprintf("match:pair:%d:%d", p.video.ID, p.campaign.ID)
}

// ListMatches returns the matches the actor is a party to
func (uc *MatchUseCase) ListMatches(ctx context.Context, actor domain.Actor) ([]*domain.MatchDetails, error) {
	var (
		matches []*domain.MatchDetails
		err     error
	)
	switch actor.Role {
	case domain.RoleCreator:
		matches, err = uc.matchRepo.ListForCreator(ctx, actor.ID)
	case domain.RoleMarketer:
		matches, err = uc.matchRepo.ListForMarketer(ctx, actor.ID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// UpdateStatus accepts or rejects a match on behalf of either party
func (uc *MatchUseCase) UpdateStatus(ctx context.Context, matchID int, status domain.MatchStatus, actor domain.Actor) (*domain.Match, error) {
	if status != domain.MatchStatusAccepted && status != domain.MatchStatusRejected {
		return nil, domain.ErrInvalidStatus
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	allowed := false
	switch actor.Role {
	case domain.RoleCreator:
		video, err := uc.videoRepo.GetByID(ctx, match.VideoID)
		if err != nil {
			return nil, err
		}
		allowed = video.CreatorID == actor.ID
	case domain.RoleMarketer:
		campaign, err := uc.campaignRepo.GetByID(ctx, match.CampaignID)
		if err != nil {
			return nil, err
		}
		allowed = campaign.MarketerID == actor.ID
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if err := uc.matchRepo.UpdateStatus(ctx, matchID, status); err != nil {
		return nil, err
	}
	match.Status = status
	return match, nil
}

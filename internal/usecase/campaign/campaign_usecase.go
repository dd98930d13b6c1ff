package campaign

import (
	"context"
	"fmt"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
)

type CampaignUseCase struct {
	campaignRepo repository.CampaignRepository
}

func NewCampaignUseCase(campaignRepo repository.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// CreateCampaignRequest represents campaign creation request
type CreateCampaignRequest struct {
	ProductName    string   `json:"product_name" binding:"required,min=1,max=200"`
	Category       string   `json:"category" binding:"required,max=100"`
	Description    string   `json:"description" binding:"omitempty,max=5000"`
	Budget         *float64 `json:"budget" binding:"omitempty,gte=0"`
	TargetAudience *string  `json:"target_audience" binding:"omitempty,max=1000"`
}

// UpdateCampaignRequest represents campaign update request
type UpdateCampaignRequest struct {
	ProductName    *string  `json:"product_name" binding:"omitempty,min=1,max=200"`
	Category       *string  `json:"category" binding:"omitempty,max=100"`
	Description    *string  `json:"description" binding:"omitempty,max=5000"`
	Budget         *float64 `json:"budget" binding:"omitempty,gte=0"`
	TargetAudience *string  `json:"target_audience" binding:"omitempty,max=1000"`
}

// CreateCampaign creates a campaign owned by the marketer
func (uc *CampaignUseCase) CreateCampaign(ctx context.Context, marketerID int, req *CreateCampaignRequest) (*domain.Campaign, error) {
	campaign := &domain.Campaign{
		MarketerID:     marketerID,
		ProductName:    req.ProductName,
		Category:       req.Category,
		Description:    req.Description,
		Budget:         req.Budget,
		TargetAudience: req.TargetAudience,
	}
	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaigns returns the marketer's own campaigns, or every campaign for creators
func (uc *CampaignUseCase) ListCampaigns(ctx context.Context, actor domain.Actor) ([]*domain.Campaign, error) {
	var (
		campaigns []*domain.Campaign
		err       error
	)
	if actor.Role == domain.RoleMarketer {
		campaigns, err = uc.campaignRepo.ListByMarketer(ctx, actor.ID)
	} else {
		campaigns, err = uc.campaignRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign. Marketers may only see their own campaigns.
func (uc *CampaignUseCase) GetCampaign(ctx context.Context, campaignID int, actor domain.Actor) (*domain.Campaign, error) {
	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleMarketer && campaign.MarketerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return campaign, nil
}

// UpdateCampaign applies the provided fields
func (uc *CampaignUseCase) UpdateCampaign(ctx context.Context, campaignID int, actor domain.Actor, req *UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := uc.owned(ctx, campaignID, actor)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		campaign.ProductName = *req.ProductName
	}
	if req.Category != nil {
		campaign.Category = *req.Category
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Budget != nil {
		campaign.Budget = req.Budget
	}
	if req.TargetAudience != nil {
		campaign.TargetAudience = req.TargetAudience
	}

	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign and, through the foreign key, its matches
func (uc *CampaignUseCase) DeleteCampaign(ctx context.Context, campaignID int, actor domain.Actor) error {
	if _, err := uc.owned(ctx, campaignID, actor); err != nil {
		return err
	}
	return uc.campaignRepo.Delete(ctx, campaignID)
}

func (uc *CampaignUseCase) owned(ctx context.Context, campaignID int, actor domain.Actor) (*domain.Campaign, error) {
	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.MarketerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return campaign, nil
}

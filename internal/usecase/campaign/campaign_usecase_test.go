package campaign

import (
	"context"
	"testing"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestCampaignLifecycle(t *testing.T) {
	uc := NewCampaignUseCase(memory.NewCampaignRepository(memory.NewStore()))
	ctx := context.Background()
	owner := domain.Actor{ID: 10, Role: domain.RoleMarketer}
	other := domain.Actor{ID: 11, Role: domain.RoleMarketer}
	creator := domain.Actor{ID: 20, Role: domain.RoleCreator}

	created, err := uc.CreateCampaign(ctx, owner.ID, &CreateCampaignRequest{
		ProductName: "Gadget",
		Category:    "technology",
		Description: "A shiny gadget",
	})
	require.NoError(t, err)
	require.Equal(t, owner.ID, created.MarketerID)

	_, err = uc.CreateCampaign(ctx, other.ID, &CreateCampaignRequest{ProductName: "Shoes", Category: "fashion"})
	require.NoError(t, err)

	mine, err := uc.ListCampaigns(ctx, owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := uc.ListCampaigns(ctx, creator)
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = uc.GetCampaign(ctx, created.ID, other)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.GetCampaign(ctx, created.ID, creator)
	require.NoError(t, err)

	name := "Gadget Pro"
	_, err = uc.UpdateCampaign(ctx, created.ID, other, &UpdateCampaignRequest{ProductName: &name})
	require.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := uc.UpdateCampaign(ctx, created.ID, owner, &UpdateCampaignRequest{ProductName: &name})
	require.NoError(t, err)
	require.Equal(t, "Gadget Pro", updated.ProductName)
	require.Equal(t, "technology", updated.Category)

	require.ErrorIs(t, uc.DeleteCampaign(ctx, created.ID, other), domain.ErrForbidden)
	require.NoError(t, uc.DeleteCampaign(ctx, created.ID, owner))
	_, err = uc.GetCampaign(ctx, created.ID, owner)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

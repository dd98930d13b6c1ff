package handler

import (
	"net/http"

	"github.com/gdugdh24/creatormatch-backend/internal/usecase/campaign"
	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignUseCase *campaign.CampaignUseCase
}

func NewCampaignHandler(campaignUseCase *campaign.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
	}
}

// Create handles POST /campaigns
// @Summary Create campaign
// @Tags campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body campaign.CreateCampaignRequest true "Campaign data"
// @Success 201 {object} domain.Campaign
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req campaign.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.campaignUseCase.CreateCampaign(c.Request.Context(), actor.ID, &req)
	if err != nil {
		respondError(c, err, "failed to create campaign")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /campaigns
// @Summary List campaigns
// @Description Marketers get their own campaigns, creators get all campaigns
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Campaign
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	campaigns, err := h.campaignUseCase.ListCampaigns(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "failed to list campaigns")
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// Get handles GET /campaigns/:id
// @Summary Get campaign
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} domain.Campaign
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	found, err := h.campaignUseCase.GetCampaign(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, "failed to get campaign")
		return
	}

	c.JSON(http.StatusOK, found)
}

// Update handles PUT /campaigns/:id
// @Summary Update campaign
// @Tags campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Param request body campaign.UpdateCampaignRequest true "Fields to change"
// @Success 200 {object} domain.Campaign
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req campaign.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.campaignUseCase.UpdateCampaign(c.Request.Context(), id, actor, &req)
	if err != nil {
		respondError(c, err, "failed to update campaign")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /campaigns/:id
// @Summary Delete campaign
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.campaignUseCase.DeleteCampaign(c.Request.Context(), id, actor); err != nil {
		respondError(c, err, "failed to delete campaign")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "campaign deleted",
	})
}

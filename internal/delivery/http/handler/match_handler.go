package handler

import (
	"net/http"

	"github.com/gdugdh24/creatormatch-backend/internal/usecase/matching"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *matching.MatchUseCase
}

func NewMatchHandler(matchUseCase *matching.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// FindForVideo handles POST /matches/video/:id
// @Summary Find matches for a video
// @Description Score the video against every campaign. Existing matches are returned unchanged.
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {array} domain.Match
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/video/{id} [post]
func (h *MatchHandler) FindForVideo(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	matches, err := h.matchUseCase.FindMatchesForVideo(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, "failed to generate matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// FindForCampaign handles POST /matches/campaign/:id
// @Summary Find matches for a campaign
// @Description Score the campaign against every video. Existing matches are returned unchanged.
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {array} domain.Match
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/campaign/{id} [post]
func (h *MatchHandler) FindForCampaign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	matches, err := h.matchUseCase.FindMatchesForCampaign(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, "failed to generate matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// List handles GET /matches
// @Summary List my matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.MatchDetails
// @Router /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "failed to list matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// UpdateStatus handles PUT /matches/:id/status
// @Summary Accept or reject a match
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body matching.UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/status [put]
func (h *MatchHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req matching.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "status must be accepted or rejected",
		})
		return
	}

	match, err := h.matchUseCase.UpdateStatus(c.Request.Context(), id, req.Status, actor)
	if err != nil {
		respondError(c, err, "failed to update match")
		return
	}

	c.JSON(http.StatusOK, match)
}

package handler

import (
	"net/http"

	"github.com/gdugdh24/creatormatch-backend/internal/usecase/analytics"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase *analytics.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

// Dashboard handles GET /analytics/dashboard
// @Summary Dashboard counters
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} analytics.Dashboard
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	dashboard, err := h.analyticsUseCase.GetDashboard(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

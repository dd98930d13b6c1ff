package http

import (
	"github.com/gdugdh24/creatormatch-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/creatormatch-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	authHandler      *handler.AuthHandler
	videoHandler     *handler.VideoHandler
	campaignHandler  *handler.CampaignHandler
	matchHandler     *handler.MatchHandler
	analyticsHandler *handler.AnalyticsHandler
	assistantHandler *handler.AssistantHandler
	authMiddleware   *middleware.AuthMiddleware
	logger           *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	campaignHandler *handler.CampaignHandler,
	matchHandler *handler.MatchHandler,
	analyticsHandler *handler.AnalyticsHandler,
	assistantHandler *handler.AssistantHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:      authHandler,
		videoHandler:     videoHandler,
		campaignHandler:  campaignHandler,
		matchHandler:     matchHandler,
		analyticsHandler: analyticsHandler,
		assistantHandler: assistantHandler,
		authMiddleware:   authMiddleware,
		logger:           logger,
	}
}

func (r *Router) Setup() (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(r.logger), middleware.Metrics())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	creatorOnly := r.authMiddleware.RequireRole(domain.RoleCreator)
	marketerOnly := r.authMiddleware.RequireRole(domain.RoleMarketer)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			videos := protected.Group("/videos")
			{
				videos.POST("", creatorOnly, r.videoHandler.Upload)
				videos.GET("", creatorOnly, r.videoHandler.ListMine)
				videos.GET("/:id", r.videoHandler.Get)
				videos.DELETE("/:id", creatorOnly, r.videoHandler.Delete)
			}

			campaigns := protected.Group("/campaigns")
			{
				campaigns.POST("", marketerOnly, r.campaignHandler.Create)
				campaigns.GET("", r.campaignHandler.List)
				campaigns.GET("/:id", r.campaignHandler.Get)
				campaigns.PUT("/:id", marketerOnly, r.campaignHandler.Update)
				campaigns.DELETE("/:id", marketerOnly, r.campaignHandler.Delete)
			}

			matches := protected.Group("/matches")
			{
				matches.POST("/video/:id", r.matchHandler.FindForVideo)
				matches.POST("/campaign/:id", r.matchHandler.FindForCampaign)
				matches.GET("", r.matchHandler.List)
				matches.PUT("/:id/status", r.matchHandler.UpdateStatus)
			}

			protected.GET("/analytics/dashboard", r.analyticsHandler.Dashboard)
			protected.POST("/assistant/chat", r.assistantHandler.Chat)
		}
	}

	return router, nil
}

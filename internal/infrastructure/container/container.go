package container

import (
	"fmt"
	"time"

	"github.com/gdugdh24/creatormatch-backend/internal/config"
	"github.com/gdugdh24/creatormatch-backend/internal/delivery/http"
	"github.com/gdugdh24/creatormatch-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/creatormatch-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/database"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/lock"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/server"
	"github.com/gdugdh24/creatormatch-backend/internal/infrastructure/storage"
	"github.com/gdugdh24/creatormatch-backend/internal/repository"
	"github.com/gdugdh24/creatormatch-backend/internal/repository/memory"
	"github.com/gdugdh24/creatormatch-backend/internal/repository/postgres"
	"github.com/gdugdh24/creatormatch-backend/internal/usecase/analytics"
	"github.com/gdugdh24/creatormatch-backend/internal/usecase/assistant"
	"github.com/gdugdh24/creatormatch-backend/internal/usecase/auth"
	"github.com/gdugdh24/creatormatch-backend/internal/usecase/campaign"
	"github.com/gdugdh24/creatormatch-backend/internal/usecase/matching"
	"github.com/gdugdh24/creatormatch-backend/internal/usecase/video"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

type repositories struct {
	users     repository.UserRepository
	videos    repository.VideoRepository
	campaigns repository.CampaignRepository
	matches   repository.MatchRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	repos, err := c.initRepositories()
	if err != nil {
		c.Close()
		return nil, err
	}

	// Redis only backs the pair lock, so the service runs without it
	var locker matching.PairLocker = lock.NoopLocker{}
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(&cfg.Redis, logger)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		locker = lock.NewRedisLocker(redisClient, cfg.Matching.LockTTL, cfg.Matching.LockWait, logger)
	} else {
		logger.Warn("redis not configured, pair locking relies on the database constraint only")
	}

	// Without Gemini every match is scored by the fallback scorer and the assistant is unavailable
	var text matching.TextGenerator
	var chat assistant.TextGenerator
	geminiClient, err := gemini.NewGeminiClient(&cfg.Gemini)
	if err != nil {
		logger.Warn("gemini client disabled", zap.Error(err))
	} else {
		c.Gemini = geminiClient
		text = geminiClient
		chat = geminiClient
	}

	mediaStorage, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		repos.users,
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
		logger,
	)
	videoUseCase := video.NewVideoUseCase(
		repos.videos,
		mediaStorage,
		cfg.Storage.MaxUploadMB,
		cfg.Storage.AllowedMIMEs,
		logger,
	)
	campaignUseCase := campaign.NewCampaignUseCase(repos.campaigns)
	matchUseCase := matching.NewMatchUseCase(
		repos.videos,
		repos.campaigns,
		repos.matches,
		matching.NewGenerator(text, cfg.Gemini.Timeout, logger),
		locker,
		cfg.Matching.Concurrency,
		logger,
	)
	analyticsUseCase := analytics.NewAnalyticsUseCase(repos.videos, repos.campaigns, repos.matches)
	assistantUseCase := assistant.NewAssistantUseCase(chat, cfg.Gemini.Timeout, logger)

	router := http.NewRouter(
		handler.NewAuthHandler(authUseCase),
		handler.NewVideoHandler(videoUseCase),
		handler.NewCampaignHandler(campaignUseCase),
		handler.NewMatchHandler(matchUseCase),
		handler.NewAnalyticsHandler(analyticsUseCase),
		handler.NewAssistantHandler(assistantUseCase),
		middleware.NewAuthMiddleware(authUseCase),
		logger,
	)

	ginRouter, err := router.Setup()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	c.Server = server.NewServer(&cfg.Server, ginRouter, logger)
	return c, nil
}

func (c *Container) initRepositories() (*repositories, error) {
	if c.Config.Database.Driver == "memory" {
		c.Logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:     memory.NewUserRepository(store),
			videos:    memory.NewVideoRepository(store),
			campaigns: memory.NewCampaignRepository(store),
			matches:   memory.NewMatchRepository(store),
		}, nil
	}

	db, err := database.NewPostgresDB(&c.Config.Database, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.DB = db

	return &repositories{
		users:     postgres.NewUserRepository(db),
		videos:    postgres.NewVideoRepository(db),
		campaigns: postgres.NewCampaignRepository(db),
		matches:   postgres.NewMatchRepository(db),
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			c.Logger.Warn("error closing gemini client", zap.Error(err))
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

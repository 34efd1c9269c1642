package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"openblog-backend/internal/config"
	infraCache "openblog-backend/internal/infrastructure/cache"
	"openblog-backend/internal/infrastructure/database"
	"openblog-backend/internal/infrastructure/storage"
	"openblog-backend/pkg/cache"
	"openblog-backend/pkg/jwt"

	"openblog-backend/internal/domains/comment"
	commentHandler "openblog-backend/internal/domains/comment/handler"
	commentRepo "openblog-backend/internal/domains/comment/repository"
	commentService "openblog-backend/internal/domains/comment/service"
	"openblog-backend/internal/domains/feed"
	feedHandler "openblog-backend/internal/domains/feed/handler"
	feedService "openblog-backend/internal/domains/feed/service"
	"openblog-backend/internal/domains/follow"
	followHandler "openblog-backend/internal/domains/follow/handler"
	followRepo "openblog-backend/internal/domains/follow/repository"
	followService "openblog-backend/internal/domains/follow/service"
	"openblog-backend/internal/domains/group"
	groupHandler "openblog-backend/internal/domains/group/handler"
	groupRepo "openblog-backend/internal/domains/group/repository"
	groupService "openblog-backend/internal/domains/group/service"
	postHandler "openblog-backend/internal/domains/post/handler"
	postRepo "openblog-backend/internal/domains/post/repository"
	postService "openblog-backend/internal/domains/post/service"
	userHandler "openblog-backend/internal/domains/user/handler"
	userRepo "openblog-backend/internal/domains/user/repository"
	userService "openblog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is
// a singleton built once at startup.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// Repositories
	UserRepo    userRepo.UserRepository
	GroupRepo   group.Repository
	PostRepo    postRepo.PostRepository
	CommentRepo comment.Repository
	FollowRepo  follow.Repository

	// Services
	UserService    userService.ServiceInterface
	GroupService   group.Service
	PostService    postService.ServiceInterface
	CommentService comment.Service
	FollowService  follow.Service
	FeedService    feed.Service

	// Handlers
	UserHandler    *userHandler.UserHandler
	GroupHandler   *groupHandler.GroupHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
	FollowHandler  *followHandler.FollowHandler
	FeedHandler    *feedHandler.FeedHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the whole dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// Step 2: database
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	log.Info().Msg("database connected")

	// Step 3: cache
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}
	c.Cache = redisCache
	log.Info().Msg("redis connected")

	// Step 4: object storage
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("object storage ready")

	// Step 5: shared components
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	imageProcessor := storage.NewImageProcessor()

	// Step 6: repositories
	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)
	c.GroupRepo = groupRepo.NewPostgresGroupRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(db.Pool, c.Cache, cfg.Feed.IndexCacheTTL)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(db.Pool)
	c.FollowRepo = followRepo.NewPostgresFollowRepository(db.Pool)

	// Step 7: services
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.GroupService = groupService.NewGroupService(c.GroupRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.GroupRepo, minioStorage, imageProcessor)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo)
	c.FollowService = followService.NewFollowService(c.FollowRepo, c.UserRepo)
	c.FeedService = feedService.NewFeedService(
		c.PostRepo,
		c.GroupRepo,
		c.UserRepo,
		c.FollowRepo,
		c.CommentRepo,
		cfg.Feed.PageSize,
	)

	// Step 8: handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService)
	c.FeedHandler = feedHandler.NewFeedHandler(c.FeedService)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleaned up")
}

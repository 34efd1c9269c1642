package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openblog-backend/internal/shared/middleware"
	"openblog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupGroupRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupFeedRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// GROUP ROUTES
// ========================================
func setupGroupRoutes(v1 *gin.RouterGroup, c *container.Container) {
	groups := v1.Group("/groups")
	{
		groups.GET("", c.GroupHandler.List)
		groups.POST("", middleware.AuthRequired(c.JWTManager), c.GroupHandler.Create)
		groups.GET("/:slug/posts", c.FeedHandler.Group)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthRequired(c.JWTManager)

	posts := v1.Group("/posts")
	{
		posts.GET("/:id", c.FeedHandler.PostDetail)
		posts.GET("/:id/comments", c.CommentHandler.List)

		posts.POST("", auth, c.PostHandler.Create)
		posts.PUT("/:id", auth, c.PostHandler.Update)
		posts.DELETE("/:id", auth, c.PostHandler.Delete)
		posts.POST("/:id/comments", auth, c.CommentHandler.Add)
	}

	v1.POST("/images", auth, c.PostHandler.UploadImage)
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthRequired(c.JWTManager)

	users := v1.Group("/users")
	{
		// Profile is public; an authenticated viewer also gets their
		// follow state.
		users.GET("/:username/posts", middleware.AuthOptional(c.JWTManager), c.FeedHandler.Profile)

		users.POST("/:username/follow", auth, c.FollowHandler.Follow)
		users.DELETE("/:username/follow", auth, c.FollowHandler.Unfollow)
	}
}

// ========================================
// FEED ROUTES
// ========================================
func setupFeedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	feed := v1.Group("/feed")
	{
		feed.GET("", c.FeedHandler.Index)
		feed.GET("/personal", middleware.AuthRequired(c.JWTManager), c.FeedHandler.Personal)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":      dbStatus,
			"cache":       cacheStatus,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	authorHandler "library-catalog/internal/domains/author/handler"
	"library-catalog/internal/infrastructure/dynamo"
	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
	"library-catalog/web"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(!c.Config.IsProduction()),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/catalog/authors")
	})
	router.GET("/health", healthCheckHandler(c))

	catalog := router.Group("/catalog")
	setupAuthorRoutes(catalog, c.AuthorHandler)

	return router, nil
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(catalog *gin.RouterGroup, h *authorHandler.AuthorHandler) {
	catalog.GET("/authors", h.List)

	// /author/create phải đăng ký trước /author/:id
	author := catalog.Group("/author")
	{
		author.GET("/create", h.CreateForm)
		author.POST("/create", h.Create)

		author.GET("/:id", h.Detail)

		author.GET("/:id/delete", h.DeleteForm)
		author.POST("/:id/delete", h.Delete)
		author.GET("/:id/update", h.UpdateForm)
		author.POST("/:id/update", h.Update)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{}

		store, err := storeHealth(ctx.Request.Context(), c)
		if err != nil {
			status = http.StatusServiceUnavailable
			checks["store"] = gin.H{"status": "unhealthy", "driver": c.Config.Store.Driver, "error": err.Error()}
		} else {
			checks["store"] = store
		}

		// Redis chỉ là cache: lỗi thì degraded, không 503
		switch {
		case c.Cache == nil:
			checks["cache"] = gin.H{"status": "disabled"}
		case c.Cache.Ping(ctx.Request.Context()) != nil:
			checks["cache"] = gin.H{"status": "degraded"}
		default:
			checks["cache"] = gin.H{"status": "healthy"}
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}
		ctx.JSON(status, gin.H{
			"status":  overall,
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}

func storeHealth(ctx context.Context, c *container.Container) (gin.H, error) {
	switch {
	case c.DB != nil:
		if err := c.DB.HealthCheck(ctx); err != nil {
			return nil, err
		}
		stats, err := c.DB.Stats()
		if err != nil {
			return nil, err
		}
		return gin.H{"status": "healthy", "driver": c.Config.Store.Driver, "pool": stats}, nil
	case c.Dynamo != nil:
		if err := dynamo.Ping(ctx, c.Dynamo, c.Config.DynamoDB.AuthorsTable); err != nil {
			return nil, err
		}
		return gin.H{"status": "healthy", "driver": c.Config.Store.Driver}, nil
	default:
		return nil, fmt.Errorf("no store configured")
	}
}

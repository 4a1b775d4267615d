// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lapmatch/internal/delivery/http/middleware"
	"lapmatch/internal/delivery/http/router/handler"
	"lapmatch/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler           *handler.UserHandler
	LaptopHandler         *handler.LaptopHandler
	PreferenceHandler     *handler.PreferenceHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler           *handler.UserHandler
	laptopHandler         *handler.LaptopHandler
	preferenceHandler     *handler.PreferenceHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:           params.UserHandler,
		laptopHandler:         params.LaptopHandler,
		preferenceHandler:     params.PreferenceHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public catalog routes. Static paths must be registered before /:id.
	laptopGroup := e.Group("/laptops")
	{
		laptopGroup.GET("", r.laptopHandler.List)
		laptopGroup.GET("/search", r.laptopHandler.Search)
		laptopGroup.POST("/filter", r.laptopHandler.Filter)
		laptopGroup.GET("/stats", r.laptopHandler.Stats)
		laptopGroup.GET("/brand/:brand", r.laptopHandler.ByBrand)
		laptopGroup.GET("/category/:category", r.laptopHandler.ByCategory)
		laptopGroup.GET("/:id", r.laptopHandler.Get)
	}

	// Admin catalog routes
	adminLaptopGroup := e.Group("/laptops")
	adminLaptopGroup.Use(r.authMiddleware.Authenticate)
	adminLaptopGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
	{
		adminLaptopGroup.POST("", r.laptopHandler.Create)
		adminLaptopGroup.POST("/bulk", r.laptopHandler.BulkCreate)
		adminLaptopGroup.PUT("/:id", r.laptopHandler.Update)
		adminLaptopGroup.DELETE("/:id", r.laptopHandler.Delete)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/dashboard", r.userHandler.GetDashboard)
		userGroup.GET("/activity", r.userHandler.GetActivity)
		userGroup.GET("/export", r.userHandler.ExportData)
		userGroup.DELETE("/account", r.userHandler.DeleteAccount)
		userGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		userGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)
		userGroup.POST("/interactions", r.preferenceHandler.TrackInteraction)
	}

	// Recommendation routes that require authentication
	recommendationGroup := e.Group("/recommendations")
	recommendationGroup.Use(r.authMiddleware.Authenticate)
	{
		recommendationGroup.GET("/personalized", r.recommendationHandler.Personalized)
		recommendationGroup.GET("/collaborative", r.recommendationHandler.Collaborative)
		recommendationGroup.GET("/similar/:laptopId", r.recommendationHandler.Similar)
	}
}

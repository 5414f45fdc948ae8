// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	blogGroup := api.Group("/blogs")
	{
		// Public routes; no token required to browse published blogs.
		blogGroup.GET("/published", r.blogHandler.ListPublished)
		blogGroup.GET("/published/:id", r.blogHandler.GetPublished)

		// Owner routes behind JWT authentication.
		blogGroup.POST("", r.blogHandler.Create, r.authMiddleware.Authenticate)
		blogGroup.GET("/my-blogs", r.blogHandler.ListMine, r.authMiddleware.Authenticate)
		blogGroup.PUT("/:id", r.blogHandler.Update, r.authMiddleware.Authenticate)
		blogGroup.DELETE("/:id", r.blogHandler.Delete, r.authMiddleware.Authenticate)
		blogGroup.PATCH("/:id/publish", r.blogHandler.Publish, r.authMiddleware.Authenticate)
	}
}

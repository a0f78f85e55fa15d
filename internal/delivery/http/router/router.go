// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	TaskHandler         *handler.TaskHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	taskHandler         *handler.TaskHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		taskHandler:         params.TaskHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential endpoints are public but rate limited per client IP.
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.Limit)
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:userID", r.userHandler.GetUser)
	}

	// Task routes that require authentication
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.POST("/:userID", r.taskHandler.CreateTask)
		taskGroup.GET("/:userID", r.taskHandler.ListTasks)
		taskGroup.PUT("/:taskID", r.taskHandler.UpdateTask)
		taskGroup.DELETE("/:taskID", r.taskHandler.DeleteTask)
	}
}

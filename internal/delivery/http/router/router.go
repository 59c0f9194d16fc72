// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"erpauth/internal/delivery/http/middleware"
	"erpauth/internal/delivery/http/router/handler"
	"erpauth/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	SystemHandler  *handler.SystemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	systemHandler  *handler.SystemHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		systemHandler:  params.SystemHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Index)

	api := e.Group("/api")
	api.GET("/health", r.systemHandler.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify-token", r.authHandler.VerifyToken)
		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)
	}

	// Middleware is attached per route: Group.Use would also catch unknown /api/admin paths
	// and answer them with 401 instead of 404.
	adminOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}
	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/stats", r.adminHandler.Stats, adminOnly...)
		adminGroup.PATCH("/accounts/:id/active", r.adminHandler.SetActive, adminOnly...)
	}
}

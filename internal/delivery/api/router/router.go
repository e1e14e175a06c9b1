// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hashsvc/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HashHandler *handler.HashHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	hashHandler *handler.HashHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		hashHandler: params.HashHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Unversioned paths kept for existing clients
	e.POST("/hash", r.hashHandler.Hash)
	e.POST("/match", r.hashHandler.Match)

	apiV1 := e.Group("/api/v1")
	{
		apiV1.POST("/hash", r.hashHandler.Hash)
		apiV1.POST("/match", r.hashHandler.Match)
		apiV1.POST("/inspect", r.hashHandler.Inspect)
		apiV1.GET("/algorithms", r.hashHandler.Algorithms)
	}
}

// Package router registers the API routes.
package router

import (
	"breachcheck/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BreachCheckHandler *handler.BreachCheckHandler
}

type router struct {
	breachCheckHandler *handler.BreachCheckHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		breachCheckHandler: params.BreachCheckHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Path used by existing clients.
	e.POST("/check", r.breachCheckHandler.CheckPassword)

	apiV1 := e.Group("/api/v1")
	apiV1.POST("/password-checks", r.breachCheckHandler.CheckPassword)
}

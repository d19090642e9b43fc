// Package router wires middleware and handlers into the gin engine.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/api/http/handler"
	"github.com/fit4ever/fit4ever-server/internal/api/http/middleware"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Auth      *handler.Auth
	OAuth     *handler.OAuth
	User      *handler.User
	Workout   *handler.Workout
	Nutrition *handler.Nutrition
	Goal      *handler.Goal
}

// Middleware bundles the cross-cutting middleware the router mounts.
type Middleware struct {
	Logging      *middleware.Logging
	RateLimit    *middleware.RateLimit
	Authenticate *middleware.Authenticate
}

// New builds the gin engine. Registration and login sit behind the rate
// limiter; everything under /api except /api/auth requires a bearer
// token.
func New(h Handlers, m Middleware) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), m.Logging.Handler())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := engine.Group("/api/auth", m.RateLimit.Handler())
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	oauth := engine.Group("/oauth2")
	{
		oauth.GET("/authorize/google", h.OAuth.Authorize)
		oauth.GET("/callback/google", h.OAuth.Callback)
		oauth.GET("/redirect", h.OAuth.Redirect)
	}

	api := engine.Group("/api", m.Authenticate.Handler())
	{
		api.GET("/users/me", h.User.Me)
		api.POST("/users/me/avatar", h.User.UploadAvatar)

		api.POST("/workouts", h.Workout.Create)
		api.GET("/workouts", h.Workout.List)
		api.GET("/workouts/:id", h.Workout.Get)
		api.PUT("/workouts/:id", h.Workout.Update)
		api.DELETE("/workouts/:id", h.Workout.Delete)

		api.POST("/nutrition/logs", h.Nutrition.CreateLog)
		api.GET("/nutrition/logs", h.Nutrition.ListByDate)
		api.DELETE("/nutrition/logs/:id", h.Nutrition.Delete)
		api.GET("/nutrition/summary", h.Nutrition.Summary)

		api.POST("/goals", h.Goal.Create)
		api.GET("/goals", h.Goal.List)
		api.PUT("/goals/:id", h.Goal.Update)
		api.GET("/goals/:id/progress", h.Goal.Progress)
	}

	return engine
}

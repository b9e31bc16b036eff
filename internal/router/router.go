package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/dig"

	"github.com/Peculiar9/dojo/internal/config"
	"github.com/Peculiar9/dojo/internal/handler"
	"github.com/Peculiar9/dojo/internal/middleware"
)

// RouterParams defines the router parameters
type RouterParams struct {
	dig.In

	Config         *config.Config
	WarriorHandler *handler.WarriorHandler
}

// NewRouter creates a new router
func NewRouter(params RouterParams) *gin.Engine {
	r := gin.New()

	// CORS middleware should be placed first
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())

	// Root greeting, served as a plain string
	greeting := params.Config.Server.Greeting
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, greeting)
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterWarriorRoutes(r, params.WarriorHandler)

	return r
}

// RegisterWarriorRoutes registers warrior-related routes
func RegisterWarriorRoutes(r *gin.Engine, handler *handler.WarriorHandler) {
	warrior := r.Group("/warrior")
	{
		warrior.GET("/fight", handler.Fight)
		warrior.GET("/sneak", handler.Sneak)
	}
}

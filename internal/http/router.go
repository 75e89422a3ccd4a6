// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hananaq/TripMate-AI/internal/config"
	"github.com/hananaq/TripMate-AI/internal/content"
	"github.com/hananaq/TripMate-AI/internal/http/handlers"
	"github.com/hananaq/TripMate-AI/internal/http/middleware"
	"github.com/hananaq/TripMate-AI/internal/places"
	"github.com/hananaq/TripMate-AI/internal/session"
)

type RouterDeps struct {
	Content  *content.Service
	Sessions session.Store
	Places   *places.Service
	CORS     config.CORSConfig
	Log      *logrus.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Log), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORS.AllowedOrigins,
		AllowMethods:     deps.CORS.AllowedMethods,
		AllowHeaders:     deps.CORS.AllowedHeaders,
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           time.Duration(deps.CORS.MaxAge) * time.Second,
	}))

	tripHandler := handlers.NewTripHandler(deps.Content, deps.Sessions, deps.Log)
	r.POST("/api/trips/plan", tripHandler.Plan)
	r.GET("/api/trips/:session_id", tripHandler.Get)

	pdfHandler := handlers.NewPDFHandler(deps.Sessions, deps.Log)
	r.GET("/api/trips/:session_id/pdf", pdfHandler.Download)

	destinationsHandler := handlers.NewDestinationsHandler(deps.Places)
	r.GET("/api/destinations", destinationsHandler.Suggest)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

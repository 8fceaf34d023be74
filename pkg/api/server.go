// Package api exposes the HTTP surface: meeting registration and lookup,
// answer submission, user-initiated re-transcription and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JanDamek/jervis-transcribe/pkg/database"
	"github.com/JanDamek/jervis-transcribe/pkg/services"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// Server holds the handler dependencies.
type Server struct {
	meetings *services.MeetingService
	backend  transcriber.Backend
	db       *database.Client
}

// NewServer creates the API server.
func NewServer(meetings *services.MeetingService, backend transcriber.Backend, db *database.Client) *Server {
	return &Server{meetings: meetings, backend: backend, db: db}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/meetings", s.CreateMeeting)
		v1.GET("/meetings", s.ListMeetings)
		v1.GET("/meetings/:id", s.GetMeeting)
		v1.POST("/meetings/:id/answers", s.AnswerQuestions)
		v1.POST("/meetings/:id/retranscribe", s.Retranscribe)
	}
	return router
}

// Health handles GET /health: database plus transcription backend
// availability.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	backendUp := s.backend.IsAvailable(ctx)

	status := http.StatusOK
	overall := "healthy"
	if err != nil || !backendUp {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":        overall,
		"database":      dbHealth,
		"transcription": backendUp,
	})
}

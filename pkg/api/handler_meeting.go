package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/services"
)

// CreateMeeting handles POST /api/v1/meetings.
func (s *Server) CreateMeeting(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := s.meetings.Create(c.Request.Context(), &services.CreateMeetingInput{
		ClientID:        req.ClientID,
		ProjectID:       req.ProjectID,
		Title:           req.Title,
		StartedAt:       req.StartedAt,
		StoppedAt:       req.StoppedAt,
		DurationSeconds: req.DurationSeconds,
		MeetingType:     req.MeetingType,
		AudioInputType:  req.AudioInputType,
		AudioFilePath:   req.AudioFilePath,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMeetingResponse(m))
}

// GetMeeting handles GET /api/v1/meetings/:id.
func (s *Server) GetMeeting(c *gin.Context) {
	m, err := s.meetings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMeetingResponse(m))
}

// ListMeetings handles GET /api/v1/meetings?state=STATE.
func (s *Server) ListMeetings(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state query parameter is required"})
		return
	}

	meetings, err := s.meetings.ListByState(c.Request.Context(), models.MeetingState(state))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": toMeetingResponses(meetings)})
}

// AnswerQuestions handles POST /api/v1/meetings/:id/answers.
func (s *Server) AnswerQuestions(c *gin.Context) {
	var req AnswerQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := make([]models.CorrectionAnswer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = models.CorrectionAnswer{
			QuestionID: a.QuestionID,
			Original:   a.Original,
			Corrected:  a.Corrected,
			Category:   a.Category,
		}
	}

	if err := s.meetings.AnswerQuestions(c.Request.Context(), c.Param("id"), answers); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// Retranscribe handles POST /api/v1/meetings/:id/retranscribe.
func (s *Server) Retranscribe(c *gin.Context) {
	var req RetranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.meetings.Retranscribe(c.Request.Context(), c.Param("id"), req.SegmentIndices); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

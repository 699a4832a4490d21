package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidimedmar/profeleve/internal/services"
	"github.com/sidimedmar/profeleve/internal/ws"
)

type AttemptHandler struct {
	attempts *services.AttemptService
	hub      *ws.Hub
}

func NewAttemptHandler(attempts *services.AttemptService, hub *ws.Hub) *AttemptHandler {
	return &AttemptHandler{attempts: attempts, hub: hub}
}

type StartAttemptRequest struct {
	Name  string `json:"name" binding:"required" example:"Fatima Mint Ahmed"`
	Phone string `json:"phone" binding:"required" example:"+22212345678"`
}

// StartAttempt godoc
// @Summary      Start a quiz attempt
// @Description  Login gate: requires a non-empty name and phone and an active quiz
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Param        request body StartAttemptRequest true "Student identity"
// @Success      200 {object} services.AttemptView
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/attempts [post]
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.attempts.Start(req.Name, req.Phone)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetAttempt godoc
// @Summary      Get attempt state
// @Tags         attempts
// @Produce      json
// @Param        id path string true "Attempt ID"
// @Success      200 {object} services.AttemptView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/{id} [get]
func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	view, err := h.attempts.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type SelectOptionRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	OptionID   *int   `json:"option_id" binding:"required"`
}

// SelectOption godoc
// @Summary      Select or deselect an option
// @Description  Radio semantics on single choice, checkbox toggle on multiple
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Param        id path string true "Attempt ID"
// @Param        request body SelectOptionRequest true "Selection"
// @Success      200 {object} services.AttemptView
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/attempts/{id}/answers [post]
func (h *AttemptHandler) SelectOption(c *gin.Context) {
	var req SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.attempts.SelectOption(c.Param("id"), req.QuestionID, *req.OptionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit godoc
// @Summary      Submit the attempt
// @Description  Scores the answers, records the submission and ends the attempt. One-way.
// @Tags         attempts
// @Produce      json
// @Param        id path string true "Attempt ID"
// @Success      200 {object} models.Submission
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/attempts/{id}/submit [post]
func (h *AttemptHandler) Submit(c *gin.Context) {
	sub, err := h.attempts.Submit(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.hub.Broadcast(ws.WSMessage{
		Type: "submission_received",
		Data: sub,
	})

	c.JSON(http.StatusOK, sub)
}

func (h *AttemptHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoActiveQuiz), errors.Is(err, services.ErrAttemptFinished):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAttemptNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

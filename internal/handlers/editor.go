package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sidimedmar/profeleve/internal/services"
)

type EditorHandler struct {
	editor *services.EditorService
}

func NewEditorHandler(editor *services.EditorService) *EditorHandler {
	return &EditorHandler{editor: editor}
}

// StartEditing godoc
// @Summary      Open an editing session
// @Description  Seeds a working copy from the active quiz's questions
// @Tags         editor
// @Produce      json
// @Success      200 {array} models.Question
// @Router       /api/v1/editor [post]
func (h *EditorHandler) StartEditing(c *gin.Context) {
	c.JSON(http.StatusOK, h.editor.StartEditing())
}

// GetWorkingCopy godoc
// @Summary      Get the working copy
// @Tags         editor
// @Produce      json
// @Success      200 {array} models.Question
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/editor [get]
func (h *EditorHandler) GetWorkingCopy(c *gin.Context) {
	questions, err := h.editor.WorkingCopy()
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Discard godoc
// @Summary      Discard the working copy
// @Description  Drops unpublished edits; the active quiz is unaffected
// @Tags         editor
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/editor [delete]
func (h *EditorHandler) Discard(c *gin.Context) {
	h.editor.Discard()
	c.JSON(http.StatusOK, MessageResponse{Message: "working copy discarded"})
}

// AddQuestion godoc
// @Summary      Add a blank question to the working copy
// @Tags         editor
// @Produce      json
// @Success      200 {object} models.Question
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/editor/questions [post]
func (h *EditorHandler) AddQuestion(c *gin.Context) {
	q, err := h.editor.AddQuestion()
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

// RemoveQuestion godoc
// @Summary      Remove a question from the working copy
// @Tags         editor
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/editor/questions/{id} [delete]
func (h *EditorHandler) RemoveQuestion(c *gin.Context) {
	if err := h.editor.RemoveQuestion(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question removed"})
}

// UpdateQuestionRequest carries exactly one mutation command; setting more
// than one field (or none) is rejected.
type UpdateQuestionRequest struct {
	Text   *string `json:"text,omitempty"`
	Points *int    `json:"points,omitempty"`
	Type   *string `json:"type,omitempty" example:"single"`
}

// UpdateQuestion godoc
// @Summary      Update one field of a question
// @Description  Explicit single-field commands: text, points or type per call
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        request body UpdateQuestionRequest true "Exactly one field"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/editor/questions/{id} [put]
func (h *EditorHandler) UpdateQuestion(c *gin.Context) {
	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	set := 0
	for _, provided := range []bool{req.Text != nil, req.Points != nil, req.Type != nil} {
		if provided {
			set++
		}
	}
	if set != 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "exactly one of text, points or type must be set"})
		return
	}

	questionID := c.Param("id")
	var err error
	switch {
	case req.Text != nil:
		err = h.editor.SetText(questionID, *req.Text)
	case req.Points != nil:
		err = h.editor.SetPoints(questionID, *req.Points)
	case req.Type != nil:
		err = h.editor.SetType(questionID, *req.Type)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question updated"})
}

// AddOption godoc
// @Summary      Add an empty option to a question
// @Tags         editor
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200 {object} models.Option
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/editor/questions/{id}/options [post]
func (h *EditorHandler) AddOption(c *gin.Context) {
	opt, err := h.editor.AddOption(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, opt)
}

type UpdateOptionRequest struct {
	Text string `json:"text"`
}

// UpdateOption godoc
// @Summary      Set an option's text
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        oid path int true "Option ID"
// @Param        request body UpdateOptionRequest true "Option text"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/editor/questions/{id}/options/{oid} [put]
func (h *EditorHandler) UpdateOption(c *gin.Context) {
	optionID, ok := h.optionID(c)
	if !ok {
		return
	}

	var req UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.editor.SetOptionText(c.Param("id"), optionID, req.Text); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "option updated"})
}

// ToggleCorrect godoc
// @Summary      Toggle an option's correctness
// @Description  Radio semantics on single choice, checkbox flip on multiple
// @Tags         editor
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        oid path int true "Option ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/editor/questions/{id}/options/{oid}/toggle [post]
func (h *EditorHandler) ToggleCorrect(c *gin.Context) {
	optionID, ok := h.optionID(c)
	if !ok {
		return
	}

	if err := h.editor.ToggleCorrect(c.Param("id"), optionID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "correct answers updated"})
}

type PublishRequest struct {
	Title string `json:"title" example:"Geography Quiz"`
}

// Publish godoc
// @Summary      Publish the working copy
// @Description  Replaces the active quiz wholesale and closes the session
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        request body PublishRequest true "Quiz title"
// @Success      200 {object} models.Quiz
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/editor/publish [post]
func (h *EditorHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.editor.Publish(req.Title)
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *EditorHandler) optionID(c *gin.Context) (int, bool) {
	optionID, err := strconv.Atoi(c.Param("oid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid option id"})
		return 0, false
	}
	return optionID, true
}

func (h *EditorHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotEditing):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrQuestionNotFound), errors.Is(err, services.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidimedmar/profeleve/internal/store"
)

type QuizHandler struct {
	store *store.Store
}

func NewQuizHandler(st *store.Store) *QuizHandler {
	return &QuizHandler{store: st}
}

// GetActiveQuiz godoc
// @Summary      Get the active quiz
// @Description  Returns the currently published quiz, including answers (author view)
// @Tags         quiz
// @Produce      json
// @Success      200 {object} models.Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz [get]
func (h *QuizHandler) GetActiveQuiz(c *gin.Context) {
	quiz, ok := h.store.ActiveQuiz()
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active quiz"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidimedmar/profeleve/internal/services"
)

type AIGenerateHandler struct {
	editor    *services.EditorService
	aiService *services.AIGenerateService
}

func NewAIGenerateHandler(editor *services.EditorService, aiService *services.AIGenerateService) *AIGenerateHandler {
	return &AIGenerateHandler{
		editor:    editor,
		aiService: aiService,
	}
}

type GenerateRequest struct {
	Topic    string `json:"topic" binding:"required,min=2"`
	Language string `json:"language" binding:"required,oneof=fr ar"`
}

type GenerateResponse struct {
	Generated bool        `json:"generated"`
	Question  interface{} `json:"question,omitempty"`
}

// CheckAI godoc
// @Summary      Check if AI generation is available
// @Tags         ai
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/editor/ai-status [get]
func (h *AIGenerateHandler) CheckAI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"available": h.aiService.IsAvailable()})
}

// Generate godoc
// @Summary      Generate a question with AI
// @Description  Generates one question about a topic and appends it to the working copy. A failed or malformed generation is a no-op, not an error.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body GenerateRequest true "Topic and language"
// @Success      200 {object} GenerateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/editor/generate [post]
func (h *AIGenerateHandler) Generate(c *gin.Context) {
	if !h.aiService.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "AI generation is not configured. Set AI_API_KEY."})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.aiService.GenerateQuestion(c.Request.Context(), req.Topic, req.Language)
	if err != nil {
		log.Printf("ai: generation failed, treating as no-op: %v", err)
		c.JSON(http.StatusOK, GenerateResponse{Generated: false})
		return
	}

	if err := h.editor.AppendQuestion(*question); err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Generated: true, Question: question})
}

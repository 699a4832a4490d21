package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidimedmar/profeleve/internal/i18n"
)

type I18nHandler struct{}

func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// GetTranslations godoc
// @Summary      UI string table
// @Tags         i18n
// @Produce      json
// @Param        lang path string true "Language (fr or ar)"
// @Success      200 {object} i18n.Translation
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/i18n/{lang} [get]
func (h *I18nHandler) GetTranslations(c *gin.Context) {
	t, ok := i18n.Get(c.Param("lang"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown language"})
		return
	}
	c.JSON(http.StatusOK, t)
}

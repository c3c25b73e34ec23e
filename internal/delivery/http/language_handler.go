package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minijudge/minijudge/internal/language"
)

// LanguageHandler handles language listing requests.
type LanguageHandler struct {
	registry *language.Registry
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(registry *language.Registry) *LanguageHandler {
	return &LanguageHandler{registry: registry}
}

// List handles GET /api/v1/languages
func (h *LanguageHandler) List(c *gin.Context) {
	type languageInfo struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Extension       string `json:"extension"`
		RequiresCompile bool   `json:"requires_compile"`
	}

	profiles := h.registry.List()
	languages := make([]languageInfo, 0, len(profiles))
	for _, p := range profiles {
		languages = append(languages, languageInfo{
			ID:              p.ID,
			Name:            p.Name,
			Extension:       p.Extension,
			RequiresCompile: p.RequiresCompile,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"languages": languages,
	})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-lab/portfolio-backend/internal/content/service"
)

type Handler struct {
	content *service.ContentService
}

func NewHandler(content *service.ContentService) *Handler {
	return &Handler{content: content}
}

// Register attaches content routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
	rg.GET("/languages", h.languages)
}

func (h *Handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "language": "en", "content": h.content.Canonical()})
}

func (h *Handler) languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "languages": service.Languages})
}

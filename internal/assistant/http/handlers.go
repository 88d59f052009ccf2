package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/assistant/domain"
	"github.com/folio-lab/portfolio-backend/internal/assistant/service"
	"github.com/folio-lab/portfolio-backend/internal/logging"
)

const noticeChatFailed = "Sorry, I'm having trouble connecting right now. Please try again later."

type Handler struct {
	assistant *service.AssistantService
}

func NewHandler(assistant *service.AssistantService) *Handler {
	return &Handler{assistant: assistant}
}

// Register attaches assistant routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/describe-project", h.describeProject)
	rg.POST("/translate-bio", h.translateBio)
	rg.POST("/chat", h.chat)
}

type describeReq struct {
	ProjectName         string `json:"projectName" binding:"required"`
	OriginalDescription string `json:"originalDescription" binding:"required"`
}

func (h *Handler) describeProject(c *gin.Context) {
	var req describeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	out, err := h.assistant.DescribeProject(c.Request.Context(), req.ProjectName, req.OriginalDescription)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "alternativeDescription": out})
}

type translateBioReq struct {
	ExistingBio    string `json:"existingBio" binding:"required"`
	TargetLanguage string `json:"targetLanguage"`
}

func (h *Handler) translateBio(c *gin.Context) {
	var req translateBioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	out, err := h.assistant.TranslateBio(c.Request.Context(), req.ExistingBio, req.TargetLanguage)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "translatedBio": out})
}

type chatReq struct {
	History []domain.Message `json:"history" binding:"dive"`
	Message string           `json:"message" binding:"required"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	out, err := h.assistant.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		fail(c, err, noticeChatFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "response": out})
}

func fail(c *gin.Context, err error, notice string) {
	resp := gin.H{"ok": false, "error": err.Error()}
	if notice != "" && !errors.Is(err, apperr.ErrValidation) {
		resp["notice"] = notice
	}
	logging.FromContext(c.Request.Context()).Warn().Err(err).Str("path", c.FullPath()).Msg("Assistant flow failed")
	c.JSON(apperr.HTTPStatus(err), resp)
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	contentservice "github.com/folio-lab/portfolio-backend/internal/content/service"
	"github.com/folio-lab/portfolio-backend/internal/logging"
	"github.com/folio-lab/portfolio-backend/internal/session"
	"github.com/folio-lab/portfolio-backend/internal/translation/service"
)

const (
	noticeTranslationFailed = "Translation failed. Showing the original content."
	noticeReset             = "Content reset to English."
)

type Handler struct {
	translator *service.Translator
	content    *contentservice.ContentService
	guard      session.Guard
}

func NewHandler(translator *service.Translator, content *contentservice.ContentService, guard session.Guard) *Handler {
	return &Handler{translator: translator, content: content, guard: guard}
}

// Register attaches the translate route to the content router group,
// behind the given middleware.
func (h *Handler) Register(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	rg.POST("/translate", append(mw, h.translate)...)
}

type translateReq struct {
	TargetLanguage string `json:"targetLanguage"`
}

func (h *Handler) translate(c *gin.Context) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ctx := c.Request.Context()
	release, err := session.Admit(ctx, h.guard, session.ID(c), session.ActionTranslate)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"ok": false, "error": err.Error()})
		return
	}
	defer release()

	// Always translate from the canonical tree.
	original := h.content.Canonical()
	out, err := h.translator.Translate(ctx, original, req.TargetLanguage)
	if err != nil {
		if errors.Is(err, apperr.ErrTranslation) {
			logging.FromContext(ctx).Warn().Err(err).Str("target_language", req.TargetLanguage).Msg("Translation fell back to original")
			c.JSON(http.StatusBadGateway, gin.H{
				"ok":       false,
				"error":    err.Error(),
				"notice":   noticeTranslationFailed,
				"language": "en",
				"content":  original,
			})
			return
		}
		c.JSON(apperr.HTTPStatus(err), gin.H{"ok": false, "error": err.Error()})
		return
	}

	resp := gin.H{"ok": true, "language": strings.TrimSpace(req.TargetLanguage), "content": out}
	if service.IsEnglish(req.TargetLanguage) {
		resp["notice"] = noticeReset
	}
	c.JSON(http.StatusOK, resp)
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/session"
	"github.com/folio-lab/portfolio-backend/internal/theme/domain"
	"github.com/folio-lab/portfolio-backend/internal/theme/service"
)

const noticeGenerationFailed = "Could not generate a new theme. Keeping the current one."

type Handler struct {
	themes *service.ThemeService
}

func NewHandler(themes *service.ThemeService) *Handler {
	return &Handler{themes: themes}
}

// Register attaches theme routes to the given router group. mw guards the
// generate route only.
func (h *Handler) Register(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	rg.GET("", h.get)
	rg.GET("/style.css", h.stylesheet)
	rg.PUT("/mode", h.setMode)
	rg.PUT("/palette", h.setPalette)
	rg.DELETE("/palette", h.resetPalette)
	rg.POST("/generate", append(mw, h.generate)...)
}

func (h *Handler) get(c *gin.Context) {
	a := h.themes.Load(c.Request.Context(), session.ID(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": a.State()})
}

func (h *Handler) stylesheet(c *gin.Context) {
	a := h.themes.Load(c.Request.Context(), session.ID(c))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(a.State().Variables.CSS()))
}

type setModeReq struct {
	Mode string `json:"mode" binding:"required"`
}

func (h *Handler) setMode(c *gin.Context) {
	var req setModeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	a := h.themes.Load(ctx, session.ID(c))
	if err := a.SetMode(ctx, mode); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": a.State()})
}

func (h *Handler) setPalette(c *gin.Context) {
	var palette domain.Palette
	if err := c.ShouldBindJSON(&palette); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ctx := c.Request.Context()
	a := h.themes.Load(ctx, session.ID(c))
	if err := a.SetPalette(ctx, &palette); err != nil {
		// A rejected palette from the caller is bad input, not an upstream fault.
		status := apperr.HTTPStatus(err)
		if errors.Is(err, apperr.ErrSchemaValidation) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error(), "theme": a.State()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": a.State()})
}

func (h *Handler) resetPalette(c *gin.Context) {
	ctx := c.Request.Context()
	a := h.themes.Load(ctx, session.ID(c))
	a.ResetPalette(ctx)
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": a.State()})
}

func (h *Handler) generate(c *gin.Context) {
	a, err := h.themes.Generate(c.Request.Context(), session.ID(c))
	if err != nil {
		resp := gin.H{"ok": false, "error": err.Error(), "theme": a.State()}
		if errors.Is(err, apperr.ErrGeneration) {
			resp["notice"] = noticeGenerationFailed
		}
		c.JSON(apperr.HTTPStatus(err), resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": a.State()})
}

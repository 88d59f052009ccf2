package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/contact/domain"
	"github.com/folio-lab/portfolio-backend/internal/contact/service"
)

const noticeContactFailed = "There was an error sending your message. Please try again later."

type Handler struct {
	contact *service.ContactService
}

func NewHandler(contact *service.ContactService) *Handler {
	return &Handler{contact: contact}
}

// Register attaches the contact route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var req domain.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	receipt, err := h.contact.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(apperr.HTTPStatus(err), gin.H{"ok": false, "error": err.Error(), "message": noticeContactFailed})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": receipt.ID, "message": receipt.Message})
}

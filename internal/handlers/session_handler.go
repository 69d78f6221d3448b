package handlers

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/services"
	"smart_canteen/pkg/resp"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) Get(c *gin.Context) {
	resp.OK(c, h.sessionService.State())
}

func (h *SessionHandler) SetView(c *gin.Context) {
	var req struct {
		View models.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	sel, err := h.sessionService.SetView(req.View)
	if err != nil {
		h.validationError(c, err)
		return
	}
	resp.OK(c, sel)
}

func (h *SessionHandler) SetCategory(c *gin.Context) {
	var req struct {
		Category models.Category `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	sel, err := h.sessionService.SetCategory(req.Category)
	if err != nil {
		h.validationError(c, err)
		return
	}
	resp.OK(c, sel)
}

func (h *SessionHandler) SetSearch(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}
	resp.OK(c, h.sessionService.SetSearch(req.Query))
}

func (h *SessionHandler) ToggleAdmin(c *gin.Context) {
	resp.OK(c, h.sessionService.ToggleAdmin())
}

func (h *SessionHandler) validationError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		resp.BadRequest(c, verr.Error())
		return
	}
	resp.ServerError(c, err)
}

package handlers

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/services"
	"smart_canteen/pkg/resp"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *gin.Context) {
	resp.OK(c, h.orderService.List())
}

func (h *OrderHandler) Place(c *gin.Context) {
	order, err := h.orderService.Place(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			resp.BadRequest(c, "cart is empty")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, models.ErrInvalidTransition):
			resp.Conflict(c, "invalid status transition")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}

func (h *OrderHandler) ClearHistory(c *gin.Context) {
	h.orderService.ClearHistory(c.Request.Context())
	resp.OK(c, gin.H{"cleared": true})
}

func (h *OrderHandler) Stats(c *gin.Context) {
	resp.OK(c, h.orderService.Stats())
}

package handlers

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/services"
	"smart_canteen/pkg/resp"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(c *gin.Context) {
	resp.OK(c, h.cartService.Summary())
}

type addToCartRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	line, err := h.cartService.Add(req.MenuItemID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"line": line, "cart": h.cartService.Summary()})
}

type updateQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	h.cartService.UpdateQuantity(c.Param("id"), *req.Delta)
	resp.OK(c, h.cartService.Summary())
}

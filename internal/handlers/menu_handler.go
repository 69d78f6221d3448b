package handlers

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/services"
	"smart_canteen/pkg/resp"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService    services.MenuService
	sessionService services.SessionService
}

func NewMenuHandler(menuService services.MenuService, sessionService services.SessionService) *MenuHandler {
	return &MenuHandler{menuService: menuService, sessionService: sessionService}
}

// List returns the filtered menu. Explicit query parameters win; otherwise
// the session's category and search selection apply.
func (h *MenuHandler) List(c *gin.Context) {
	sel := h.sessionService.State()

	category := sel.Category
	if v, ok := c.GetQuery("category"); ok {
		category = models.Category(v)
		if !category.Valid() {
			resp.BadRequest(c, "unknown category")
			return
		}
	}
	query := sel.Search
	if v, ok := c.GetQuery("q"); ok {
		query = v
	}

	items := h.menuService.Filter(category, query)
	bestseller, _ := h.menuService.Bestseller()
	resp.OK(c, gin.H{
		"items":         items,
		"categories":    models.Categories,
		"bestseller_id": bestseller,
	})
}

func (h *MenuHandler) Bestseller(c *gin.Context) {
	id, ok := h.menuService.Bestseller()
	resp.OK(c, gin.H{"bestseller_id": id, "found": ok})
}

type addItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    *int64          `json:"price" binding:"required"`
	Category models.Category `json:"category" binding:"required"`
	Image    string          `json:"image"`
}

func (h *MenuHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request format")
		return
	}

	item, err := h.menuService.AddItem(c.Request.Context(), req.Name, *req.Price, req.Category, req.Image)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			resp.BadRequest(c, verr.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

func (h *MenuHandler) RemoveItem(c *gin.Context) {
	err := h.menuService.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (h *MenuHandler) ToggleAvailability(c *gin.Context) {
	item, err := h.menuService.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

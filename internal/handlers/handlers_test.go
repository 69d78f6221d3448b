package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart_canteen/internal/middlewares"
	"smart_canteen/internal/repository"
	"smart_canteen/internal/services"
	"smart_canteen/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func newTestRouter(t *testing.T) (*gin.Engine, services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	store := storage.NewMemory("canteen")
	menuRepo := repository.NewMenuRepository(store)
	if err := menuRepo.Load(ctx); err != nil {
		t.Fatalf("menu load returned error: %v", err)
	}
	orderRepo := repository.NewOrderRepository(store)
	if err := orderRepo.Load(ctx); err != nil {
		t.Fatalf("order load returned error: %v", err)
	}
	cartRepo := repository.NewCartRepository()

	taxRate := decimal.NewFromInt(5).Div(decimal.NewFromInt(100))
	sessionService := services.NewSessionService()
	menuService := services.NewMenuService(menuRepo, orderRepo)
	cartService := services.NewCartService(cartRepo, menuRepo, taxRate)
	orderService := services.NewOrderService(orderRepo, cartRepo, menuRepo, nil, taxRate)

	menuHandler := NewMenuHandler(menuService, sessionService)
	cartHandler := NewCartHandler(cartService)
	orderHandler := NewOrderHandler(orderService)
	sessionHandler := NewSessionHandler(sessionService)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/menu", menuHandler.List)
	api.GET("/cart", cartHandler.Get)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)
	api.GET("/orders", orderHandler.List)
	api.POST("/orders", orderHandler.Place)
	api.POST("/session/admin", sessionHandler.ToggleAdmin)

	admin := api.Group("/admin", middlewares.AdminRequired(sessionService))
	admin.POST("/menu", menuHandler.AddItem)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/stats", orderHandler.Stats)

	return router, sessionService
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	// Empty cart: placing is rejected.
	if w := doJSON(t, router, http.MethodPost, "/api/orders", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("place on empty cart: status = %d, want 400", w.Code)
	}

	// Two coffees into the cart.
	for i := 0; i < 2; i++ {
		if w := doJSON(t, router, http.MethodPost, "/api/cart/items", `{"menu_item_id":"3"}`); w.Code != http.StatusOK {
			t.Fatalf("add to cart: status = %d, body %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/cart", "")
	var cartResp struct {
		Data struct {
			Subtotal int64 `json:"subtotal"`
			Tax      int64 `json:"tax"`
			Total    int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("failed to decode cart response: %v", err)
	}
	if cartResp.Data.Subtotal != 40 || cartResp.Data.Tax != 2 || cartResp.Data.Total != 42 {
		t.Errorf("cart totals = %+v, want 40/2/42", cartResp.Data)
	}

	// Place the order.
	w = doJSON(t, router, http.MethodPost, "/api/orders", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status = %d, body %s", w.Code, w.Body.String())
	}
	var placeResp struct {
		Data struct {
			ID     string `json:"id"`
			Total  int64  `json:"total"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &placeResp); err != nil {
		t.Fatalf("failed to decode order response: %v", err)
	}
	if placeResp.Data.Total != 42 || placeResp.Data.Status != "Preparing" {
		t.Errorf("order = %+v, want total 42 status Preparing", placeResp.Data)
	}

	// Cart is cleared by placement.
	w = doJSON(t, router, http.MethodGet, "/api/cart", "")
	if err := json.Unmarshal(w.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("failed to decode cart response: %v", err)
	}
	if cartResp.Data.Total != 0 {
		t.Errorf("cart total after placement = %d, want 0", cartResp.Data.Total)
	}

	// Status updates are admin actions.
	statusPath := "/api/admin/orders/" + placeResp.Data.ID + "/status"
	if w := doJSON(t, router, http.MethodPatch, statusPath, `{"status":"Ready"}`); w.Code != http.StatusForbidden {
		t.Fatalf("admin action without admin mode: status = %d, want 403", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/api/session/admin", ""); w.Code != http.StatusOK {
		t.Fatalf("toggle admin: status = %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPatch, statusPath, `{"status":"Ready"}`); w.Code != http.StatusOK {
		t.Fatalf("update to Ready: status = %d, body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodPatch, statusPath, `{"status":"Ready"}`); w.Code != http.StatusConflict {
		t.Fatalf("repeat transition: status = %d, want 409", w.Code)
	}
}

func TestAdminAddItemValidation(t *testing.T) {
	router, session := newTestRouter(t)
	session.ToggleAdmin()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "ok", body: `{"name":"Dosa","price":50,"category":"Breakfast"}`, want: http.StatusCreated},
		{name: "missing price", body: `{"name":"Dosa","category":"Breakfast"}`, want: http.StatusBadRequest},
		{name: "negative price", body: `{"name":"Dosa","price":-5,"category":"Breakfast"}`, want: http.StatusBadRequest},
		{name: "category All", body: `{"name":"Dosa","price":50,"category":"All"}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(t, router, http.MethodPost, "/api/admin/menu", tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestMenuFilterParams(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/menu?category=Beverages", "")
	var menuResp struct {
		Data struct {
			Items []struct {
				Name string `json:"name"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &menuResp); err != nil {
		t.Fatalf("failed to decode menu response: %v", err)
	}
	if len(menuResp.Data.Items) != 1 || menuResp.Data.Items[0].Name != "Coffee" {
		t.Errorf("filtered menu = %+v, want exactly Coffee", menuResp.Data.Items)
	}

	if w := doJSON(t, router, http.MethodGet, "/api/menu?category=Dessert", ""); w.Code != http.StatusBadRequest {
		t.Errorf("unknown category: status = %d, want 400", w.Code)
	}
}

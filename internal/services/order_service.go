package services

import (
	"context"
	"math/rand"
	"time"

	"smart_canteen/internal/metrics"
	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"
	"smart_canteen/pkg/notify"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	Revenue      int64  `json:"revenue"`
	PendingCount int    `json:"pending_count"`
	ActiveOrders int    `json:"active_orders"`
	MenuItems    int    `json:"menu_items"`
	BestsellerID string `json:"bestseller_id,omitempty"`
}

type OrderService interface {
	// Place turns the current cart into an order: snapshot the lines,
	// compute the taxed total, prepend to history and clear the cart.
	Place(ctx context.Context) (models.Order, error)
	List() []models.Order
	// UpdateStatus moves an order to next, which must be a legal forward
	// transition from its current status.
	UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) (models.Order, error)
	ClearHistory(ctx context.Context)
	// Revenue sums totals over all orders regardless of status, matching
	// the reference dashboard.
	Revenue() int64
	PendingCount() int
	Stats() AdminStats
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	menuRepo  repository.MenuRepository
	notifier  *notify.Client
	taxRate   decimal.Decimal
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, menuRepo repository.MenuRepository, notifier *notify.Client, taxRate decimal.Decimal) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		menuRepo:  menuRepo,
		notifier:  notifier,
		taxRate:   taxRate,
	}
}

func (s *orderService) Place(ctx context.Context) (models.Order, error) {
	lines := s.cartRepo.Lines()
	if len(lines) == 0 {
		return models.Order{}, models.ErrEmptyCart
	}

	sub := SubtotalOf(lines)
	order := models.Order{
		ID:          uuid.NewString(),
		OrderNumber: newOrderNumber(),
		Items:       lines,
		Total:       sub + TaxAmount(sub, s.taxRate),
		Status:      models.StatusPreparing,
		Timestamp:   time.Now(),
	}

	s.orderRepo.Prepend(ctx, order)
	s.cartRepo.Clear()
	metrics.OrdersPlaced.Inc()
	log.Info().
		Str("order_id", order.ID).
		Int("order_number", order.OrderNumber).
		Int64("total", order.Total).
		Msg("order placed")

	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("order webhook failed")
	}
	return order, nil
}

func (s *orderService) List() []models.Order {
	return s.orderRepo.List()
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) (models.Order, error) {
	order, ok := s.orderRepo.GetByID(orderID)
	if !ok {
		return models.Order{}, models.ErrNotFound
	}
	if !next.Valid() || !order.Status.CanTransition(next) {
		return models.Order{}, models.ErrInvalidTransition
	}

	order, _ = s.orderRepo.UpdateStatus(ctx, orderID, next)
	log.Info().Str("order_id", orderID).Str("status", string(next)).Msg("order status updated")

	if err := s.notifier.StatusChanged(ctx, order); err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("status webhook failed")
	}
	return order, nil
}

func (s *orderService) ClearHistory(ctx context.Context) {
	s.orderRepo.Clear(ctx)
	log.Info().Msg("order history cleared")
}

func (s *orderService) Revenue() int64 {
	var sum int64
	for _, o := range s.orderRepo.List() {
		sum += o.Total
	}
	return sum
}

func (s *orderService) PendingCount() int {
	count := 0
	for _, o := range s.orderRepo.List() {
		if o.Pending() {
			count++
		}
	}
	return count
}

func (s *orderService) Stats() AdminStats {
	stats := AdminStats{
		Revenue:      s.Revenue(),
		PendingCount: s.PendingCount(),
		MenuItems:    s.menuRepo.Count(),
	}
	stats.ActiveOrders = stats.PendingCount
	if id, ok := BestsellerID(s.orderRepo.List()); ok {
		stats.BestsellerID = id
	}
	return stats
}

// newOrderNumber returns a uniform random 4-digit display code in
// [1000,9999]. Collisions are permitted; the code is never used as a lookup
// key.
func newOrderNumber() int {
	return 1000 + rand.Intn(9000)
}

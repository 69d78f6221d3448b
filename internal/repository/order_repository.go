package repository

import (
	"context"
	"sync"

	"smart_canteen/internal/metrics"
	"smart_canteen/internal/models"
	"smart_canteen/internal/storage"

	"github.com/rs/zerolog/log"
)

type OrderRepository interface {
	Load(ctx context.Context) error
	// List returns the orders most-recent-first.
	List() []models.Order
	GetByID(id string) (models.Order, bool)
	// Prepend inserts order at the head of the list, keeping the
	// most-recent-first invariant.
	Prepend(ctx context.Context, order models.Order)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, bool)
	Clear(ctx context.Context)
}

type orderRepository struct {
	store  storage.Store
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderRepository(store storage.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Load(ctx context.Context) error {
	var orders []models.Order
	if _, err := r.store.Load(ctx, storage.CollectionOrders, &orders); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = orders
	return nil
}

func (r *orderRepository) List() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *orderRepository) GetByID(id string) (models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (r *orderRepository) Prepend(ctx context.Context, order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]models.Order{order}, r.orders...)
	r.persist(ctx)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.persist(ctx)
			return r.orders[i], true
		}
	}
	return models.Order{}, false
}

func (r *orderRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = nil
	r.persist(ctx)
}

// persist mirrors menuRepository.persist; callers must hold the lock.
func (r *orderRepository) persist(ctx context.Context) {
	orders := r.orders
	if orders == nil {
		orders = []models.Order{}
	}
	if err := r.store.Save(ctx, storage.CollectionOrders, orders); err != nil {
		metrics.StorageFailures.WithLabelValues(storage.CollectionOrders).Inc()
		log.Warn().Err(err).Msg("failed to persist orders")
	}
}

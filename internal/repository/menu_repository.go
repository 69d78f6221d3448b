package repository

import (
	"context"
	"sync"

	"smart_canteen/internal/metrics"
	"smart_canteen/internal/models"
	"smart_canteen/internal/storage"

	"github.com/rs/zerolog/log"
)

type MenuRepository interface {
	// Load reads the persisted menu, seeding the default menu when nothing
	// was stored yet.
	Load(ctx context.Context) error
	List() []models.MenuItem
	GetByID(id string) (models.MenuItem, bool)
	Add(ctx context.Context, item models.MenuItem)
	Remove(ctx context.Context, id string) bool
	SetAvailability(ctx context.Context, id string, available bool) (models.MenuItem, bool)
	Count() int
}

type menuRepository struct {
	store storage.Store
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMenuRepository(store storage.Store) MenuRepository {
	return &menuRepository{store: store}
}

func (r *menuRepository) Load(ctx context.Context) error {
	var items []models.MenuItem
	found, err := r.store.Load(ctx, storage.CollectionMenu, &items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if found && len(items) > 0 {
		r.items = items
		return nil
	}

	r.items = DefaultMenu()
	r.persist(ctx)
	return nil
}

func (r *menuRepository) List() []models.MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.MenuItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *menuRepository) GetByID(id string) (models.MenuItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (r *menuRepository) Add(ctx context.Context, item models.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	r.persist(ctx)
}

func (r *menuRepository) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			return true
		}
	}
	return false
}

func (r *menuRepository) SetAvailability(ctx context.Context, id string, available bool) (models.MenuItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Available = available
			r.persist(ctx)
			return r.items[i], true
		}
	}
	return models.MenuItem{}, false
}

func (r *menuRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// persist writes the whole collection through to the store. A failed write is
// logged and counted but does not fail the mutation: in-memory state stays
// authoritative for the session. Callers must hold the lock.
func (r *menuRepository) persist(ctx context.Context) {
	if err := r.store.Save(ctx, storage.CollectionMenu, r.items); err != nil {
		metrics.StorageFailures.WithLabelValues(storage.CollectionMenu).Inc()
		log.Warn().Err(err).Msg("failed to persist menu")
	}
}

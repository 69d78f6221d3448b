package services

import (
	"context"
	"strings"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultImage = "🍴"

type MenuService interface {
	List() []models.MenuItem
	// Filter returns the menu items matching category and a case-insensitive
	// substring query against the item name, preserving menu order.
	Filter(category models.Category, query string) []models.MenuItem
	AddItem(ctx context.Context, name string, price int64, category models.Category, image string) (models.MenuItem, error)
	RemoveItem(ctx context.Context, id string) error
	ToggleAvailability(ctx context.Context, id string) (models.MenuItem, error)
	// Bestseller returns the id of the menu item with the highest cumulative
	// ordered quantity across order history, or false when there is none.
	Bestseller() (string, bool)
}

type menuService struct {
	menuRepo  repository.MenuRepository
	orderRepo repository.OrderRepository
}

func NewMenuService(menuRepo repository.MenuRepository, orderRepo repository.OrderRepository) MenuService {
	return &menuService{menuRepo: menuRepo, orderRepo: orderRepo}
}

func (s *menuService) List() []models.MenuItem {
	return s.menuRepo.List()
}

func (s *menuService) Filter(category models.Category, query string) []models.MenuItem {
	return FilterItems(s.menuRepo.List(), category, query)
}

// FilterItems applies the category and search filters to items. It is pure:
// items is not mutated and the input order is preserved.
func FilterItems(items []models.MenuItem, category models.Category, query string) []models.MenuItem {
	query = strings.ToLower(query)
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != models.CategoryAll && item.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *menuService) AddItem(ctx context.Context, name string, price int64, category models.Category, image string) (models.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.MenuItem{}, &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price < 0 {
		return models.MenuItem{}, &models.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if !category.Assignable() {
		return models.MenuItem{}, &models.ValidationError{Field: "category", Reason: "must be one of the fixed categories"}
	}
	if image == "" {
		image = defaultImage
	}

	item := models.MenuItem{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Category:  category,
		Available: true,
		Image:     image,
	}
	s.menuRepo.Add(ctx, item)
	log.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("menu item added")
	return item, nil
}

func (s *menuService) RemoveItem(ctx context.Context, id string) error {
	if !s.menuRepo.Remove(ctx, id) {
		return models.ErrNotFound
	}
	log.Info().Str("item_id", id).Msg("menu item removed")
	return nil
}

func (s *menuService) ToggleAvailability(ctx context.Context, id string) (models.MenuItem, error) {
	item, ok := s.menuRepo.GetByID(id)
	if !ok {
		return models.MenuItem{}, models.ErrNotFound
	}
	item, _ = s.menuRepo.SetAvailability(ctx, id, !item.Available)
	return item, nil
}

func (s *menuService) Bestseller() (string, bool) {
	return BestsellerID(s.orderRepo.List())
}

// BestsellerID tallies ordered quantity per item id across all order lines
// and returns the id with the strictly highest tally. Ties are broken by
// first encounter in the scan order of the orders list, which makes the
// result deterministic for a given history. False is returned when there is
// no order history.
func BestsellerID(orders []models.Order) (string, bool) {
	counts := make(map[string]int)
	var seen []string
	for _, o := range orders {
		for _, line := range o.Items {
			if _, ok := counts[line.ID]; !ok {
				seen = append(seen, line.ID)
			}
			counts[line.ID] += line.Quantity
		}
	}

	best, bestCount := "", 0
	for _, id := range seen {
		if counts[id] > bestCount {
			best, bestCount = id, counts[id]
		}
	}
	return best, best != ""
}

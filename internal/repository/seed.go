package repository

import "smart_canteen/internal/models"

// DefaultMenu is the menu seeded on first run, when no menu record exists in
// the store yet.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Veg Sandwich", Price: 45, Category: models.CategoryBreakfast, Available: true, Image: "🥪"},
		{ID: "2", Name: "Chicken Biryani", Price: 120, Category: models.CategoryLunch, Available: true, Image: "🥘"},
		{ID: "3", Name: "Coffee", Price: 20, Category: models.CategoryBeverages, Available: true, Image: "☕"},
		{ID: "4", Name: "Samosa", Price: 15, Category: models.CategorySnacks, Available: true, Image: "🥟"},
	}
}

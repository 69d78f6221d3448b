package models

// Category is one of the fixed menu categories.
type Category string

const (
	CategoryAll       Category = "All"
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategorySnacks    Category = "Snacks"
	CategoryBeverages Category = "Beverages"
)

// Categories is the fixed, ordered category set. CategoryAll is a filter
// pseudo-category and can never be assigned to an item.
var Categories = []Category{
	CategoryAll,
	CategoryBreakfast,
	CategoryLunch,
	CategorySnacks,
	CategoryBeverages,
}

// Valid reports whether c is part of the fixed category set.
func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Assignable reports whether c can be assigned to a menu item.
func (c Category) Assignable() bool {
	return c.Valid() && c != CategoryAll
}

type MenuItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Category  Category `json:"category"`
	Available bool     `json:"available"`
	Image     string   `json:"image"`
}

package models

// View identifies which screen the single-page frontend is showing.
type View string

const (
	ViewMenu   View = "menu"
	ViewCart   View = "cart"
	ViewOrders View = "orders"
	ViewAdmin  View = "admin"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewMenu, ViewCart, ViewOrders, ViewAdmin:
		return true
	}
	return false
}

// Selection is the ephemeral UI selection state. It is never persisted.
type Selection struct {
	View      View     `json:"view"`
	Category  Category `json:"category"`
	Search    string   `json:"search"`
	AdminMode bool     `json:"admin_mode"`
}

// DefaultSelection is the selection state at startup.
func DefaultSelection() Selection {
	return Selection{
		View:     ViewMenu,
		Category: CategoryAll,
	}
}

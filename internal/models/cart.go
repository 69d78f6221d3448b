package models

// CartLine is a value snapshot of a menu item's display fields plus a
// quantity. Price changes to the menu after the line was added never touch
// lines already in the cart.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// NewCartLine snapshots item into a cart line with quantity 1.
func NewCartLine(item MenuItem) CartLine {
	return CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	}
}

// LineTotal is price * quantity for this line.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

package services

import (
	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSummary is the cart plus its derived money amounts.
type CartSummary struct {
	Lines     []models.CartLine `json:"lines"`
	ItemCount int               `json:"item_count"`
	Subtotal  int64             `json:"subtotal"`
	Tax       int64             `json:"tax"`
	Total     int64             `json:"total"`
}

type CartService interface {
	Lines() []models.CartLine
	// Add puts one unit of the menu item into the cart, merging with an
	// existing line for the same item.
	Add(menuItemID string) (models.CartLine, error)
	// UpdateQuantity adjusts a line by delta, dropping the line when the
	// quantity reaches zero or below. Unknown ids are a no-op.
	UpdateQuantity(menuItemID string, delta int)
	Subtotal() int64
	Tax() int64
	Total() int64
	Summary() CartSummary
}

type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	taxRate  decimal.Decimal
}

func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository, taxRate decimal.Decimal) CartService {
	return &cartService{cartRepo: cartRepo, menuRepo: menuRepo, taxRate: taxRate}
}

func (s *cartService) Lines() []models.CartLine {
	return s.cartRepo.Lines()
}

func (s *cartService) Add(menuItemID string) (models.CartLine, error) {
	item, ok := s.menuRepo.GetByID(menuItemID)
	if !ok {
		return models.CartLine{}, models.ErrNotFound
	}

	line := models.NewCartLine(item)
	s.cartRepo.Add(line)
	for _, l := range s.cartRepo.Lines() {
		if l.ID == menuItemID {
			return l, nil
		}
	}
	return line, nil
}

func (s *cartService) UpdateQuantity(menuItemID string, delta int) {
	s.cartRepo.UpdateQuantity(menuItemID, delta)
}

func (s *cartService) Subtotal() int64 {
	return SubtotalOf(s.cartRepo.Lines())
}

func (s *cartService) Tax() int64 {
	return TaxAmount(s.Subtotal(), s.taxRate)
}

func (s *cartService) Total() int64 {
	sub := s.Subtotal()
	return sub + TaxAmount(sub, s.taxRate)
}

func (s *cartService) Summary() CartSummary {
	lines := s.cartRepo.Lines()
	sub := SubtotalOf(lines)
	tax := TaxAmount(sub, s.taxRate)

	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return CartSummary{
		Lines:     lines,
		ItemCount: count,
		Subtotal:  sub,
		Tax:       tax,
		Total:     sub + tax,
	}
}

// SubtotalOf sums price * quantity over all lines.
func SubtotalOf(lines []models.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}

// TaxAmount computes round(subtotal * rate) to the nearest currency unit.
// Halves round away from zero, which for the non-negative amounts handled
// here is round-half-up; the rounding mode is fixed so totals are
// reproducible.
func TaxAmount(subtotal int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
}

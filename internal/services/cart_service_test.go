package services

import (
	"context"
	"errors"
	"testing"

	"smart_canteen/internal/models"

	"github.com/shopspring/decimal"
)

var testTaxRate = decimal.NewFromInt(5).Div(decimal.NewFromInt(100))

func TestCartAddMergesRepeatedItems(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	for i := 0; i < 3; i++ {
		if _, err := svc.Add("3"); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	lines := svc.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line for repeated adds, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", lines[0].Quantity)
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	if _, err := svc.Add("missing"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCartSnapshotIsolation(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	if _, err := svc.Add("3"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	// Change the menu price after the line was added; the cart line keeps
	// the price it was snapshotted with.
	menuRepo.Remove(context.Background(), "3")
	menuRepo.Add(context.Background(), models.MenuItem{ID: "3", Name: "Coffee", Price: 999, Category: models.CategoryBeverages, Available: true})

	lines := svc.Lines()
	if lines[0].Price != 20 {
		t.Errorf("cart line price = %d, want snapshot price 20", lines[0].Price)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	svc.Add("3")
	svc.Add("3")

	svc.UpdateQuantity("3", -1)
	if lines := svc.Lines(); len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 after decrement, got %+v", lines)
	}

	svc.UpdateQuantity("3", -1)
	if lines := svc.Lines(); len(lines) != 0 {
		t.Errorf("line at zero quantity must be removed, got %+v", lines)
	}

	// unknown id is a no-op
	svc.UpdateQuantity("missing", 5)
	if lines := svc.Lines(); len(lines) != 0 {
		t.Errorf("no-op expected for unknown id, got %+v", lines)
	}
}

func TestCartQuantityNeverBelowOne(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	svc.Add("1")
	svc.UpdateQuantity("1", -10)
	for _, l := range svc.Lines() {
		if l.Quantity < 1 {
			t.Errorf("cart holds line with quantity %d", l.Quantity)
		}
	}
}

func TestCartTotals(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	// Two coffees at 20 each: subtotal 40, 5% tax 2, total 42.
	svc.Add("3")
	svc.Add("3")

	if got := svc.Subtotal(); got != 40 {
		t.Errorf("Subtotal = %d, want 40", got)
	}
	if got := svc.Tax(); got != 2 {
		t.Errorf("Tax = %d, want 2", got)
	}
	if got := svc.Total(); got != 42 {
		t.Errorf("Total = %d, want 42", got)
	}

	sum := svc.Summary()
	if sum.ItemCount != 2 || sum.Subtotal != 40 || sum.Tax != 2 || sum.Total != 42 {
		t.Errorf("Summary = %+v", sum)
	}
}

func TestTaxAmount(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{subtotal: 0, want: 0},
		{subtotal: 40, want: 2},   // exact
		{subtotal: 15, want: 1},   // 0.75 rounds up
		{subtotal: 10, want: 1},   // 0.5 rounds half-up
		{subtotal: 30, want: 2},   // 1.5 rounds half-up
		{subtotal: 45, want: 2},   // 2.25 rounds down
		{subtotal: 120, want: 6},  // exact
		{subtotal: 199, want: 10}, // 9.95 rounds up
	}

	for _, tt := range tests {
		if got := TaxAmount(tt.subtotal, testTaxRate); got != tt.want {
			t.Errorf("TaxAmount(%d) = %d, want %d", tt.subtotal, got, tt.want)
		}
		if TaxAmount(tt.subtotal, testTaxRate) < 0 {
			t.Errorf("TaxAmount(%d) is negative", tt.subtotal)
		}
	}
}

func TestTotalEqualsSubtotalPlusTax(t *testing.T) {
	menuRepo, _, cartRepo := newTestRepos(t)
	svc := NewCartService(cartRepo, menuRepo, testTaxRate)

	adds := []string{"1", "2", "2", "3", "4", "4", "4"}
	for _, id := range adds {
		if _, err := svc.Add(id); err != nil {
			t.Fatalf("Add(%s) returned error: %v", id, err)
		}
		if svc.Total() != svc.Subtotal()+svc.Tax() {
			t.Fatalf("total invariant broken: %d != %d + %d", svc.Total(), svc.Subtotal(), svc.Tax())
		}
	}
}

package repository

import (
	"sync"

	"smart_canteen/internal/models"
)

// CartRepository holds the in-progress cart. The cart is session-scoped and
// deliberately never persisted; only placed orders survive a restart.
type CartRepository interface {
	// Lines returns a copy of the cart lines in insertion order.
	Lines() []models.CartLine
	// Add merges line into the cart: an existing line for the same id has
	// its quantity incremented, otherwise line is appended. The cart never
	// holds two lines for one id.
	Add(line models.CartLine)
	// UpdateQuantity adds delta to the matching line's quantity, removing
	// the line entirely when the result drops to zero or below. Unknown ids
	// are a no-op. It reports whether a line was touched.
	UpdateQuantity(id string, delta int) bool
	Clear()
	IsEmpty() bool
}

type cartRepository struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCartRepository() CartRepository {
	return &cartRepository{}
}

func (r *cartRepository) Lines() []models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.CartLine, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *cartRepository) Add(line models.CartLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lines {
		if r.lines[i].ID == line.ID {
			r.lines[i].Quantity += line.Quantity
			return
		}
	}
	r.lines = append(r.lines, line)
}

func (r *cartRepository) UpdateQuantity(id string, delta int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lines {
		if r.lines[i].ID == id {
			r.lines[i].Quantity += delta
			if r.lines[i].Quantity <= 0 {
				r.lines = append(r.lines[:i], r.lines[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (r *cartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

func (r *cartRepository) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines) == 0
}

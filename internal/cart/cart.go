// Package cart holds in-memory shopping carts and their price arithmetic.
// Carts live only for the lifetime of the process; orders are what persist.
package cart

import (
	"errors"
	"math"
	"sync"
	"time"

	"zigueroutine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when no cart exists for the given id.
var ErrNotFound = errors.New("cart not found")

// Pricing holds the parameters for cart totals. The eco-fee is a fixed
// per-unit charge on commercial tires, added before tax; it applies only
// when the eco-fee catalogue variant is enabled.
type Pricing struct {
	VATRate       float64
	EcoFeeEnabled bool
	EcoFee        float64
}

// Totals computes the price breakdown for a set of cart lines.
func (p Pricing) Totals(items []model.CartItem) model.Totals {
	var subtotal, ecoFee float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Qty)
		if p.EcoFeeEnabled && it.Class == model.ClassCommercial {
			ecoFee += p.EcoFee * float64(it.Qty)
		}
	}

	vat := (subtotal + ecoFee) * p.VATRate
	return model.Totals{
		Subtotal: roundCents(subtotal),
		EcoFee:   roundCents(ecoFee),
		VAT:      roundCents(vat),
		Total:    roundCents(subtotal + ecoFee + vat),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Store holds all live carts, guarded by a read-write mutex.
type Store struct {
	mu     sync.RWMutex
	carts  map[uuid.UUID]*model.Cart
	logger zerolog.Logger
}

// NewStore creates an empty cart store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		carts:  make(map[uuid.UUID]*model.Cart),
		logger: logger.With().Str("store", "cart").Logger(),
	}
}

// Create creates a new empty cart and returns a snapshot of it.
func (s *Store) Create() *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &model.Cart{
		ID:        uuid.New(),
		Items:     []model.CartItem{},
		UpdatedAt: time.Now(),
	}
	s.carts[c.ID] = c

	s.logger.Debug().Str("cart_id", c.ID.String()).Msg("cart created")
	return snapshot(c)
}

// Get returns a snapshot of the cart, or ErrNotFound.
func (s *Store) Get(id uuid.UUID) (*model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(c), nil
}

// AddItem adds qty units of the tire to the cart. An existing line for the
// same tire is merged: quantities accumulate, no duplicate lines appear.
func (s *Store) AddItem(id uuid.UUID, tire model.Tire, qty int) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}

	for i := range c.Items {
		if c.Items[i].TireID == tire.ID {
			c.Items[i].Qty += qty
			c.UpdatedAt = time.Now()
			return snapshot(c), nil
		}
	}

	c.Items = append(c.Items, model.CartItem{
		TireID: tire.ID,
		Brand:  tire.Brand,
		Name:   tire.Name,
		Price:  tire.Price,
		Class:  tire.Class,
		Qty:    qty,
	})
	c.UpdatedAt = time.Now()
	return snapshot(c), nil
}

// SetQty sets the quantity of the line for tireID. A quantity below one
// removes the line.
func (s *Store) SetQty(id uuid.UUID, tireID, qty int) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}

	for i := range c.Items {
		if c.Items[i].TireID != tireID {
			continue
		}
		if qty < 1 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Qty = qty
		}
		c.UpdatedAt = time.Now()
		break
	}
	return snapshot(c), nil
}

// RemoveItem decrements the line for tireID by one, removing it at zero.
func (s *Store) RemoveItem(id uuid.UUID, tireID int) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}

	for i := range c.Items {
		if c.Items[i].TireID != tireID {
			continue
		}
		if c.Items[i].Qty > 1 {
			c.Items[i].Qty--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		c.UpdatedAt = time.Now()
		break
	}
	return snapshot(c), nil
}

// Clear empties the cart, keeping it alive for further use.
func (s *Store) Clear(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return ErrNotFound
	}
	c.Items = []model.CartItem{}
	c.UpdatedAt = time.Now()
	return nil
}

// snapshot copies a cart so callers never share the store's backing slice.
func snapshot(c *model.Cart) *model.Cart {
	items := make([]model.CartItem, len(c.Items))
	copy(items, c.Items)
	return &model.Cart{
		ID:        c.ID,
		Items:     items,
		UpdatedAt: c.UpdatedAt,
	}
}

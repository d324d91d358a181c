package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fragrance-store/models"
	"fragrance-store/store"
)

// CartService maintains the session's cart lines and their derived totals.
// Every mutation writes the full line list through to the store synchronously,
// so a reload reconstructs the identical cart. It never touches the network.
type CartService struct {
	store store.Store
	ttl   time.Duration
}

func NewCartService(st store.Store, ttl time.Duration) *CartService {
	return &CartService{store: st, ttl: ttl}
}

func cartKey(sid string) string { return "cart:" + sid }

func (s *CartService) Get(ctx context.Context, sid string) ([]models.CartLine, error) {
	data, err := s.store.Get(ctx, cartKey(sid))
	if errors.Is(err, store.ErrNotFound) {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartService) persist(ctx context.Context, sid string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, cartKey(sid), data, s.ttl)
}

// Add inserts a line for the product or increments an existing one. The
// quantity is optimistically clamped to the known stock so an obviously
// oversold cart never reaches the backend; stock zero means unknown and is
// left to the backend's order-time check.
func (s *CartService) Add(ctx context.Context, sid string, product *models.Product, quantity int) ([]models.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += quantity
			lines[i].Quantity = clampToStock(lines[i].Quantity, lines[i].Stock)
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{
			ProductID:  product.ID,
			Name:       product.Name,
			Slug:       product.Slug,
			Price:      product.Price,
			Discount:   product.Discount,
			FinalPrice: product.FinalPrice,
			Quantity:   clampToStock(quantity, product.Stock),
			Image:      product.FirstImage(),
			Stock:      product.Stock,
		})
	}

	if err := s.persist(ctx, sid, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sid, productID string, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sid, productID)
	}

	lines, err := s.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = clampToStock(quantity, lines[i].Stock)
			break
		}
	}

	if err := s.persist(ctx, sid, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove drops the line unconditionally. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, sid, productID string) ([]models.CartLine, error) {
	lines, err := s.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	if err := s.persist(ctx, sid, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart. Called exactly once per checkout, after payment
// verification succeeds.
func (s *CartService) Clear(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, cartKey(sid))
}

// Snapshot returns an independent copy of the lines, captured in one read so a
// concurrent edit cannot produce a partially-reflected order.
func (s *CartService) Snapshot(ctx context.Context, sid string) ([]models.CartLine, error) {
	lines, err := s.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)
	return snapshot, nil
}

// CartTotal sums final unit price times quantity over all lines. The running
// total is never rounded; currency rounding happens at render time only.
func CartTotal(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.FinalPrice * float64(line.Quantity)
	}
	return total
}

// CartCount counts units across all lines, not distinct lines.
func CartCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

func clampToStock(quantity, stock int) int {
	if stock > 0 && quantity > stock {
		return stock
	}
	return quantity
}

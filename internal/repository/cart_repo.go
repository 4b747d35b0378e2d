package repository

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
)

type CartRepository interface {
	Load(ctx context.Context) ([]models.CartLineItem, error)
	Save(ctx context.Context, items []models.CartLineItem) error
	Clear(ctx context.Context) error
}

type cartRepository struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

// Load always returns a non-nil slice. Anything that is not a JSON array of
// line items resets the cart, and so does a line item whose price or quantity
// is out of range.
func (r *cartRepository) Load(ctx context.Context) ([]models.CartLineItem, error) {
	var items []models.CartLineItem
	found, err := loadJSON(ctx, r.store, storage.KeyCart, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		return []models.CartLineItem{}, nil
	}
	if i := slices.IndexFunc(items, func(it models.CartLineItem) bool { return !it.InRange() }); i >= 0 {
		log.Printf("[Storage] discarding %q: line item %d out of range", storage.KeyCart, i)
		if err := r.store.Delete(ctx, storage.KeyCart); err != nil {
			return nil, fmt.Errorf("reset %s: %w", storage.KeyCart, err)
		}
		return []models.CartLineItem{}, nil
	}
	return items, nil
}

func (r *cartRepository) Save(ctx context.Context, items []models.CartLineItem) error {
	if items == nil {
		items = []models.CartLineItem{}
	}
	return saveJSON(ctx, r.store, storage.KeyCart, items)
}

func (r *cartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyCart)
}

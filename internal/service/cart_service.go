package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
)

const unknownDestination = "Unknown Destination"

// CatalogReader is the part of the catalog the stores need.
type CatalogReader interface {
	FindDestination(id int) (models.Destination, bool)
	FindPackage(id int) (models.Package, bool)
}

type CartService interface {
	Items() []models.CartLineItem
	AddItem(ctx context.Context, packageID int) (models.CartLineItem, error)
	UpdateQuantity(ctx context.Context, itemID models.ID, delta int) (models.CartLineItem, error)
	RemoveItem(ctx context.Context, itemID models.ID) (models.CartLineItem, error)
	// Clear empties a non-empty cart only when confirmed is true.
	Clear(ctx context.Context, confirmed bool) error
	// Reset empties the cart and drops its persisted value without asking.
	Reset(ctx context.Context) error
	TotalPrice() int64
	TotalCount() int
}

type cartService struct {
	mu       sync.Mutex
	items    []models.CartLineItem
	repo     repository.CartRepository
	catalog  CatalogReader
	notifier notify.Notifier
	opts     Options
}

// NewCartService restores the persisted cart. Malformed data has already been
// reset by the repository, so only backend failures surface here.
func NewCartService(ctx context.Context, repo repository.CartRepository, catalog CatalogReader, notifier notify.Notifier, opts Options) (CartService, error) {
	items, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore cart: %w", err)
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	return &cartService{
		items:    items,
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		opts:     opts.withDefaults(),
	}, nil
}

func (s *cartService) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

func (s *cartService) AddItem(ctx context.Context, packageID int) (models.CartLineItem, error) {
	pkg, ok := s.catalog.FindPackage(packageID)
	if !ok {
		return models.CartLineItem{}, ErrPackageNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneItems(s.items)
	idx := -1
	for i := range next {
		if next[i].PackageID == packageID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		// The snapshot taken on first add stays; later catalog changes never
		// reach an existing line item.
		if next[idx].Quantity >= models.MaxQuantity {
			return models.CartLineItem{}, quantityCapError()
		}
		next[idx].Quantity++
	} else {
		destination := unknownDestination
		if d, ok := s.catalog.FindDestination(pkg.DestinationID); ok {
			destination = d.Name
		}
		next = append(next, models.CartLineItem{
			ID:          s.opts.NewID(),
			PackageID:   pkg.ID,
			Name:        pkg.Name,
			Price:       pkg.Price,
			Quantity:    1,
			Duration:    pkg.Duration,
			Image:       pkg.Image,
			Destination: destination,
			Inclusions:  append([]string{}, pkg.Inclusions...),
		})
		idx = len(next) - 1
	}

	if err := s.commit(ctx, next); err != nil {
		return models.CartLineItem{}, err
	}

	item := next[idx].Clone()
	s.notifier.Notify(ctx, notify.ItemAdded(item))
	return item, nil
}

// UpdateQuantity floors the new quantity at 1, then prunes any line item whose
// quantity is not positive. Only values injected through storage can be pruned.
// A delta that would take the quantity past models.MaxQuantity is rejected and
// the cart is left as it was.
func (s *cartService) UpdateQuantity(ctx context.Context, itemID models.ID, delta int) (models.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneItems(s.items)
	var updated *models.CartLineItem
	for i := range next {
		if next[i].ID == itemID {
			q := addQuantity(next[i].Quantity, delta)
			if q > models.MaxQuantity {
				return models.CartLineItem{}, quantityCapError()
			}
			next[i].Quantity = max(1, q)
			updated = &next[i]
			break
		}
	}
	if updated == nil {
		return models.CartLineItem{}, ErrLineItemNotFound
	}
	item := updated.Clone()

	kept := next[:0]
	for _, it := range next {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}

	if err := s.commit(ctx, kept); err != nil {
		return models.CartLineItem{}, err
	}
	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, itemID models.ID) (models.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CartLineItem, 0, len(s.items))
	var removed *models.CartLineItem
	for _, it := range s.items {
		if it.ID == itemID && removed == nil {
			c := it.Clone()
			removed = &c
			continue
		}
		next = append(next, it.Clone())
	}
	if removed == nil {
		return models.CartLineItem{}, ErrLineItemNotFound
	}

	if err := s.commit(ctx, next); err != nil {
		return models.CartLineItem{}, err
	}
	s.notifier.Notify(ctx, notify.ItemRemoved(*removed))
	return *removed, nil
}

func (s *cartService) Clear(ctx context.Context, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.commit(ctx, []models.CartLineItem{}); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.CartClearedNotice())
	return nil
}

func (s *cartService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.items = []models.CartLineItem{}
	return nil
}

func (s *cartService) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

func (s *cartService) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// commit persists the whole collection first so memory never runs ahead of
// storage. Callers hold s.mu.
func (s *cartService) commit(ctx context.Context, items []models.CartLineItem) error {
	if err := s.repo.Save(ctx, items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.items = items
	return nil
}

// addQuantity saturates instead of wrapping.
func addQuantity(q, delta int) int {
	sum := q + delta
	switch {
	case delta > 0 && sum < q:
		return math.MaxInt
	case delta < 0 && sum > q:
		return math.MinInt
	}
	return sum
}

func quantityCapError() error {
	return invalid("quantity", fmt.Sprintf("cannot exceed %d", models.MaxQuantity))
}

func cloneItems(items []models.CartLineItem) []models.CartLineItem {
	out := make([]models.CartLineItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

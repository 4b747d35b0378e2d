package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock CartRepository ---

type mockCartRepo struct {
	loadFn  func(ctx context.Context) ([]models.CartLineItem, error)
	saveFn  func(ctx context.Context, items []models.CartLineItem) error
	clearFn func(ctx context.Context) error
}

func (m *mockCartRepo) Load(ctx context.Context) ([]models.CartLineItem, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return []models.CartLineItem{}, nil
}
func (m *mockCartRepo) Save(ctx context.Context, items []models.CartLineItem) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, items)
	}
	return nil
}
func (m *mockCartRepo) Clear(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return nil
}

func newTestCart(t *testing.T, store storage.Store) (CartService, *recordingNotifier) {
	t.Helper()
	rec := &recordingNotifier{}
	cart, err := NewCartService(context.Background(), repository.NewCartRepository(store), testCatalogOrFail(t), rec, testOptions())
	require.NoError(t, err)
	return cart, rec
}

// --- Tests ---

func TestAddItem_NewLineItem(t *testing.T) {
	cart, rec := newTestCart(t, storage.NewMemoryStore())

	item, err := cart.AddItem(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.ID("id-1"), item.ID)
	assert.Equal(t, 1, item.PackageID)
	assert.Equal(t, "Beach Escape", item.Name)
	assert.Equal(t, int64(10000), item.Price)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "Cox's Bazar", item.Destination)
	assert.Equal(t, []string{"Hotel", "Breakfast"}, item.Inclusions)
	assert.Equal(t, []notify.Kind{notify.CartItemAdded}, rec.kinds())
	assert.Equal(t, `"Beach Escape" added to cart!`, rec.got[0].Message)
}

func TestAddItem_SamePackageMerges(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := cart.AddItem(ctx, 1)
		require.NoError(t, err)
	}

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, models.ID("id-1"), items[0].ID)
}

func TestAddItem_PackageWithoutInclusionsGetsEmptyList(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())

	item, err := cart.AddItem(context.Background(), 3)

	require.NoError(t, err)
	assert.NotNil(t, item.Inclusions)
	assert.Empty(t, item.Inclusions)
}

func TestAddItem_UnknownPackage(t *testing.T) {
	cart, rec := newTestCart(t, storage.NewMemoryStore())

	_, err := cart.AddItem(context.Background(), 99)

	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.Empty(t, cart.Items())
	assert.Empty(t, rec.got)
}

func TestAddItem_UnknownDestinationFallsBack(t *testing.T) {
	cat := &stubCatalog{pkg: models.Package{ID: 7, DestinationID: 70, Name: "Orphan", Price: 100}}
	cart, err := NewCartService(context.Background(), &mockCartRepo{}, cat, nil, testOptions())
	require.NoError(t, err)

	item, err := cart.AddItem(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Unknown Destination", item.Destination)
}

type stubCatalog struct {
	pkg models.Package
}

func (s *stubCatalog) FindDestination(id int) (models.Destination, bool) {
	return models.Destination{}, false
}
func (s *stubCatalog) FindPackage(id int) (models.Package, bool) {
	return s.pkg, id == s.pkg.ID
}

func TestUpdateQuantity_FloorsAtOne(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()
	item, err := cart.AddItem(ctx, 1)
	require.NoError(t, err)

	updated, err := cart.UpdateQuantity(ctx, item.ID, -999)

	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_Increments(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()
	item, _ := cart.AddItem(ctx, 2)

	updated, err := cart.UpdateQuantity(ctx, item.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, 4, cart.TotalCount())
}

func TestUpdateQuantity_PrunesInjectedNonPositiveItems(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	raw := `[
	  {"id":"keep","packageId":1,"name":"Beach Escape","price":10000,"quantity":1,"inclusions":[]},
	  {"id":"zero","packageId":2,"name":"Tea Garden Tour","price":5000,"quantity":0,"inclusions":[]},
	  {"id":"neg","packageId":3,"name":"Ratargul Day Trip","price":2500,"quantity":-2,"inclusions":[]}
	]`
	require.NoError(t, store.Set(ctx, storage.KeyCart, []byte(raw)))
	cart, _ := newTestCart(t, store)
	require.Len(t, cart.Items(), 3)

	_, err := cart.UpdateQuantity(ctx, "keep", 1)

	require.NoError(t, err)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.ID("keep"), items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantity_NotFound(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())

	_, err := cart.UpdateQuantity(context.Background(), "missing", 1)

	assert.ErrorIs(t, err, ErrLineItemNotFound)
}

func TestUpdateQuantity_RejectsDeltaPastCap(t *testing.T) {
	tests := []struct {
		name  string
		delta int
	}{
		{"max int", math.MaxInt},
		{"one past the cap", models.MaxQuantity},
		{"huge", 1 << 61},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, _ := newTestCart(t, storage.NewMemoryStore())
			ctx := context.Background()
			item, err := cart.AddItem(ctx, 1)
			require.NoError(t, err)

			_, err = cart.UpdateQuantity(ctx, item.ID, tt.delta)

			assert.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "quantity", verr.Field)
			assert.Equal(t, 1, cart.Items()[0].Quantity)
		})
	}
}

func TestUpdateQuantity_CapKeepsTotalsExact(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()
	a, _ := cart.AddItem(ctx, 1)
	b, _ := cart.AddItem(ctx, 2)

	_, errA := cart.UpdateQuantity(ctx, a.ID, 1<<61)
	_, errB := cart.UpdateQuantity(ctx, b.ID, 1<<61)

	assert.ErrorIs(t, errA, ErrValidation)
	assert.ErrorIs(t, errB, ErrValidation)
	assert.Equal(t, 2, cart.TotalCount())
	assert.Equal(t, int64(15000), cart.TotalPrice())

	updated, err := cart.UpdateQuantity(ctx, a.ID, models.MaxQuantity-1)
	require.NoError(t, err)
	assert.Equal(t, models.MaxQuantity, updated.Quantity)
	assert.Equal(t, int64(10000)*models.MaxQuantity+5000, cart.TotalPrice())
}

func TestUpdateQuantity_MinIntDeltaFloorsAtOne(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()
	item, _ := cart.AddItem(ctx, 1)

	updated, err := cart.UpdateQuantity(ctx, item.ID, math.MinInt)

	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
}

func TestAddItem_StopsAtQuantityCap(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()
	item, _ := cart.AddItem(ctx, 3)
	_, err := cart.UpdateQuantity(ctx, item.ID, models.MaxQuantity-1)
	require.NoError(t, err)

	_, err = cart.AddItem(ctx, 3)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.MaxQuantity, cart.TotalCount())
}

func TestAddQuantity_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, addQuantity(1, math.MaxInt))
	assert.Equal(t, math.MinInt, addQuantity(-1, math.MinInt))
	assert.Equal(t, 5, addQuantity(2, 3))
	assert.Equal(t, -1, addQuantity(2, -3))
}

func TestRemoveItem_ThenAddStartsFresh(t *testing.T) {
	cart, rec := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()
	first, _ := cart.AddItem(ctx, 1)
	_, _ = cart.UpdateQuantity(ctx, first.ID, 4)

	removed, err := cart.RemoveItem(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)
	assert.Empty(t, cart.Items())

	again, err := cart.AddItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Quantity)
	assert.NotEqual(t, first.ID, again.ID)
	assert.Equal(t, []notify.Kind{notify.CartItemAdded, notify.CartItemRemoved, notify.CartItemAdded}, rec.kinds())
}

func TestRemoveItem_NotFound(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())

	_, err := cart.RemoveItem(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrLineItemNotFound)
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart is a silent no-op", func(t *testing.T) {
		cart, rec := newTestCart(t, storage.NewMemoryStore())
		assert.NoError(t, cart.Clear(ctx, false))
		assert.Empty(t, rec.got)
	})

	t.Run("non-empty cart needs confirmation", func(t *testing.T) {
		cart, _ := newTestCart(t, storage.NewMemoryStore())
		_, _ = cart.AddItem(ctx, 1)

		err := cart.Clear(ctx, false)

		assert.ErrorIs(t, err, ErrConfirmationRequired)
		assert.Len(t, cart.Items(), 1)
	})

	t.Run("confirmed clear empties and persists", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart, rec := newTestCart(t, store)
		_, _ = cart.AddItem(ctx, 1)

		require.NoError(t, cart.Clear(ctx, true))

		assert.Empty(t, cart.Items())
		raw, err := store.Get(ctx, storage.KeyCart)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
		assert.Equal(t, notify.CartCleared, rec.got[len(rec.got)-1].Kind)
	})
}

func TestTotals_WorkedExample(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()

	_, _ = cart.AddItem(ctx, 1)
	_, _ = cart.AddItem(ctx, 1)
	_, _ = cart.AddItem(ctx, 2)

	assert.Len(t, cart.Items(), 2)
	assert.Equal(t, 3, cart.TotalCount())
	assert.Equal(t, int64(25000), cart.TotalPrice())
}

func TestTotals_HoldAfterInterleaving(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	ctx := context.Background()

	a, _ := cart.AddItem(ctx, 1)
	b, _ := cart.AddItem(ctx, 2)
	_, _ = cart.AddItem(ctx, 3)
	_, _ = cart.UpdateQuantity(ctx, a.ID, 2)
	_, _ = cart.UpdateQuantity(ctx, b.ID, -5)
	_, _ = cart.RemoveItem(ctx, a.ID)
	_, _ = cart.AddItem(ctx, 2)

	var want int64
	count := 0
	for _, it := range cart.Items() {
		want += it.Price * int64(it.Quantity)
		count += it.Quantity
	}
	assert.Equal(t, want, cart.TotalPrice())
	assert.Equal(t, count, cart.TotalCount())
	assert.Equal(t, int64(5000*2+2500), cart.TotalPrice())
}

func TestCart_PersistReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	cart, _ := newTestCart(t, store)
	a, _ := cart.AddItem(ctx, 1)
	_, _ = cart.AddItem(ctx, 2)
	_, _ = cart.UpdateQuantity(ctx, a.ID, 2)

	reloaded, _ := newTestCart(t, store)

	assert.Equal(t, cart.Items(), reloaded.Items())
}

func TestCart_MalformedPersistedDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyCart, []byte(`{"oops":true}`)))

	cart, _ := newTestCart(t, store)

	assert.Empty(t, cart.Items())
	_, err := store.Get(ctx, storage.KeyCart)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCart_SaveFailureLeavesStateUntouched(t *testing.T) {
	repo := &mockCartRepo{
		saveFn: func(ctx context.Context, items []models.CartLineItem) error {
			return errors.New("disk full")
		},
	}
	cart, err := NewCartService(context.Background(), repo, testCatalogOrFail(t), nil, testOptions())
	require.NoError(t, err)

	_, err = cart.AddItem(context.Background(), 1)

	assert.ErrorContains(t, err, "disk full")
	assert.Empty(t, cart.Items())
}

func TestCart_RestoreFailure(t *testing.T) {
	repo := &mockCartRepo{
		loadFn: func(ctx context.Context) ([]models.CartLineItem, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := NewCartService(context.Background(), repo, testCatalogOrFail(t), nil, testOptions())

	assert.ErrorContains(t, err, "restore cart")
}

func TestCart_ItemsAreCopies(t *testing.T) {
	cart, _ := newTestCart(t, storage.NewMemoryStore())
	_, _ = cart.AddItem(context.Background(), 1)

	items := cart.Items()
	items[0].Quantity = 42
	items[0].Inclusions[0] = "Tent"

	fresh := cart.Items()
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.Equal(t, "Hotel", fresh[0].Inclusions[0])
}

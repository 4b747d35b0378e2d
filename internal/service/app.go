package service

import (
	"context"

	"github.com/Eursukkul/tour-booking/tour-service/internal/catalog"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
)

// App is the whole storefront state of one browser profile: catalog plus
// the four stores, all sharing one keyspace.
type App struct {
	Catalog     *catalog.Catalog
	Cart        CartService
	Session     SessionService
	Bookings    BookingService
	Checkout    CheckoutService
	Preferences PreferenceService
}

// NewApp restores every store from the keyspace.
func NewApp(ctx context.Context, store storage.Store, cat *catalog.Catalog, notifier notify.Notifier, opts Options) (*App, error) {
	cart, err := NewCartService(ctx, repository.NewCartRepository(store), cat, notifier, opts)
	if err != nil {
		return nil, err
	}
	session, err := NewSessionService(ctx, repository.NewSessionRepository(store), cart, notifier, opts)
	if err != nil {
		return nil, err
	}
	bookings, err := NewBookingService(ctx, repository.NewBookingRepository(store), session, notifier, opts)
	if err != nil {
		return nil, err
	}
	prefs, err := NewPreferenceService(ctx, repository.NewPreferenceRepository(store))
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog:     cat,
		Cart:        cart,
		Session:     session,
		Bookings:    bookings,
		Checkout:    NewCheckoutService(cart, session, bookings, opts),
		Preferences: prefs,
	}, nil
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Eursukkul/tour-booking/tour-service/internal/catalog"
	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
  "destinations": [
    {"id": 1, "name": "Cox's Bazar", "country": "Bangladesh", "type": "Beach"},
    {"id": 2, "name": "Sylhet", "country": "Bangladesh", "type": "Hills"}
  ],
  "tourPackages": [
    {"id": 1, "destinationId": 1, "name": "Beach Escape", "duration": "3 Days 2 Nights", "price": 10000, "inclusions": ["Hotel", "Breakfast"]},
    {"id": 2, "destinationId": 2, "name": "Tea Garden Tour", "duration": "2 Days 1 Night", "price": 5000, "inclusions": ["Hotel", "Transport"]},
    {"id": 3, "destinationId": 2, "name": "Ratargul Day Trip", "duration": "1 Day", "price": 2500}
  ]
}`

var fixedNow = time.Date(2026, 10, 17, 14, 30, 45, 123_000_000, time.UTC)

func testCatalogOrFail(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)
	return c
}

// sequentialIDs hands out id-1, id-2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() models.ID {
		n++
		return models.ID(fmt.Sprintf("id-%d", n))
	}
}

func testOptions() Options {
	return Options{Now: func() time.Time { return fixedNow }, NewID: sequentialIDs()}
}

type recordingNotifier struct {
	got []notify.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.Notification) {
	r.got = append(r.got, n)
}

func (r *recordingNotifier) kinds() []notify.Kind {
	out := make([]notify.Kind, len(r.got))
	for i, n := range r.got {
		out[i] = n.Kind
	}
	return out
}

func newTestApp(t *testing.T, store storage.Store) (*App, *recordingNotifier) {
	t.Helper()
	rec := &recordingNotifier{}
	app, err := NewApp(context.Background(), store, testCatalogOrFail(t), rec, testOptions())
	require.NoError(t, err)
	return app, rec
}

func login(t *testing.T, app *App) models.UserProfile {
	t.Helper()
	p, err := app.Session.Login(context.Background(), LoginForm{
		Mode: ModeSignup, Name: "Rahim Uddin", Email: "rahim@example.com",
		Password: "secret", ConfirmPassword: "secret",
		Phone: "01700000000", Address: "Dhanmondi, Dhaka",
	})
	require.NoError(t, err)
	return p
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Eursukkul/tour-booking/tour-service/internal/catalog"
	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*echo.Echo, *service.App) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	app, err := service.NewApp(context.Background(), storage.NewMemoryStore(), cat, notify.Discard, service.Options{})
	require.NoError(t, err)
	e := newServer()
	RegisterRoutes(e, app)
	return e, app
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestFlow_CartToBooking(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/checkout/proceed", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "empty cart cannot check out")

	do(t, e, http.MethodPost, "/api/v1/cart/items", `{"package_id":1}`)
	do(t, e, http.MethodPost, "/api/v1/cart/items", `{"package_id":1}`)
	rec = do(t, e, http.MethodPost, "/api/v1/cart/items", `{"package_id":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	cart := decode[dto.CartResponse](t, rec)
	assert.Equal(t, 3, cart.TotalCount)
	assert.Equal(t, int64(25000), cart.TotalPrice)

	rec = do(t, e, http.MethodPost, "/api/v1/checkout/proceed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[dto.CheckoutResponse](t, rec)
	assert.Equal(t, "details", view.Step)
	assert.True(t, view.LoginRequired)

	rec = do(t, e, http.MethodPost, "/api/v1/checkout/details", `{"name":"R","email":"r@x.y","phone":"1","address":"A"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/session/login",
		`{"mode":"signup","name":"Rahim","email":"rahim@example.com","password":"pw","confirm_password":"pw","phone":"017","address":"Dhaka"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := decode[dto.SessionResponse](t, rec)
	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "Welcome Rahim! Your profile has been created successfully.", sess.Message)

	view = decode[dto.CheckoutResponse](t, do(t, e, http.MethodGet, "/api/v1/checkout", ""))
	assert.False(t, view.LoginRequired)
	assert.Equal(t, "rahim@example.com", view.Details.Email)

	rec = do(t, e, http.MethodPost, "/api/v1/checkout/details", `{"name":"Rahim","email":"rahim@example.com","phone":"017","address":"Dhaka"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, e, http.MethodPost, "/api/v1/checkout/payment", `{"payment_method":"bkash"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[dto.CheckoutResponse](t, rec)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 3, view.Summary.Travelers)

	rec = do(t, e, http.MethodPost, "/api/v1/checkout/confirm", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	conf := decode[dto.ConfirmationResponse](t, rec)
	assert.Equal(t, "/bookings", conf.RedirectTo)
	assert.Equal(t, 3, conf.Booking.Travelers)
	assert.Equal(t, int64(25000), conf.Booking.TotalPrice)
	assert.Equal(t, "Confirmed", conf.Booking.Status)

	cart = decode[dto.CartResponse](t, do(t, e, http.MethodGet, "/api/v1/cart", ""))
	assert.Empty(t, cart.Items)

	bookings := decode[[]dto.BookingResponse](t, do(t, e, http.MethodGet, "/api/v1/bookings", ""))
	require.Len(t, bookings, 1)

	rec = do(t, e, http.MethodGet, "/api/v1/bookings/"+conf.Booking.ID+"/receipt", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total Price: ৳25,000")

	rec = do(t, e, http.MethodDelete, "/api/v1/bookings/"+conf.Booking.ID, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = do(t, e, http.MethodDelete, "/api/v1/bookings/"+conf.Booking.ID+"?confirm=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, e, http.MethodGet, "/api/v1/bookings/"+conf.Booking.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"booking not found"}`, rec.Body.String())
}

func TestFlow_LogoutEmptiesCart(t *testing.T) {
	e, app := setupServer(t)
	do(t, e, http.MethodPost, "/api/v1/session/login", `{"email":"a@b.co","password":"x"}`)
	do(t, e, http.MethodPost, "/api/v1/cart/items", `{"package_id":2}`)
	require.Len(t, app.Cart.Items(), 1)

	rec := do(t, e, http.MethodPost, "/api/v1/session/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	sess := decode[dto.SessionResponse](t, rec)
	assert.False(t, sess.IsLoggedIn)
	assert.Nil(t, sess.Profile)
	assert.Empty(t, app.Cart.Items())
}

func TestFlow_Favorites(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/session/favorites/4", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	do(t, e, http.MethodPost, "/api/v1/session/login", `{"email":"a@b.co","password":"x"}`)
	rec = do(t, e, http.MethodPost, "/api/v1/session/favorites/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"package_id":4,"favorite":true}`, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/session/favorites/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlow_Preferences(t *testing.T) {
	e, _ := setupServer(t)

	assert.JSONEq(t, `{"dark_mode":false}`, do(t, e, http.MethodGet, "/api/v1/preferences", "").Body.String())
	assert.JSONEq(t, `{"dark_mode":true}`, do(t, e, http.MethodPut, "/api/v1/preferences", `{"dark_mode":true}`).Body.String())
	assert.JSONEq(t, `{"dark_mode":true}`, do(t, e, http.MethodPut, "/api/v1/preferences", `{}`).Body.String())
	assert.JSONEq(t, `{"dark_mode":false}`, do(t, e, http.MethodPost, "/api/v1/preferences/dark-mode/toggle", "").Body.String())
}

func TestCatalogRoutes(t *testing.T) {
	e, _ := setupServer(t)

	dests := decode[[]dto.DestinationResponse](t, do(t, e, http.MethodGet, "/api/v1/destinations", ""))
	assert.Len(t, dests, 5)

	pkgs := decode[[]dto.PackageResponse](t, do(t, e, http.MethodGet, "/api/v1/destinations/1/packages", ""))
	require.NotEmpty(t, pkgs)
	for _, p := range pkgs {
		assert.Equal(t, 1, p.DestinationID)
	}

	assert.Equal(t, http.StatusNotFound, do(t, e, http.MethodGet, "/api/v1/destinations/42", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, e, http.MethodGet, "/api/v1/destinations/42/packages", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, e, http.MethodGet, "/api/v1/packages/42", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, e, http.MethodGet, "/api/v1/packages/x", "").Code)

	pkg := decode[dto.PackageResponse](t, do(t, e, http.MethodGet, "/api/v1/packages/3", ""))
	assert.Equal(t, int64(5000), pkg.Price)

	res := decode[dto.SearchResponse](t, do(t, e, http.MethodGet, "/api/v1/search?q=cox", ""))
	assert.NotEmpty(t, res.Destinations)
	assert.NotEmpty(t, res.Packages)

	res = decode[dto.SearchResponse](t, do(t, e, http.MethodGet, "/api/v1/search?q=tour", ""))
	require.Len(t, res.Packages, 2)
	assert.Equal(t, 1, res.Packages[0].ID)
	assert.Equal(t, 3, res.Packages[1].ID)
}

func TestFlow_QuantityCap(t *testing.T) {
	e, app := setupServer(t)
	rec := do(t, e, http.MethodPost, "/api/v1/cart/items", `{"package_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := app.Cart.Items()[0].ID.String()

	rec = do(t, e, http.MethodPatch, "/api/v1/cart/items/"+id, `{"delta":9223372036854775807}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, app.Cart.TotalCount())
	assert.Equal(t, int64(10000), app.Cart.TotalPrice())
}

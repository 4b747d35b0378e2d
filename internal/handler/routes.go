package handler

import (
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

// RegisterRoutes mounts every handler of the app under /api/v1.
func RegisterRoutes(e *echo.Echo, app *service.App) {
	api := e.Group(apiPrefix)
	NewCatalogHandler(app.Catalog).RegisterRoutes(api)
	NewCartHandler(app.Cart).RegisterRoutes(api)
	NewSessionHandler(app.Session).RegisterRoutes(api)
	NewCheckoutHandler(app.Checkout).RegisterRoutes(api)
	NewBookingHandler(app.Bookings).RegisterRoutes(api)
	NewPreferenceHandler(app.Preferences).RegisterRoutes(api)
}

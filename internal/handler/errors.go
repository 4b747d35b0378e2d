package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

// httpError maps service errors onto status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrDestinationNotFound),
		errors.Is(err, service.ErrLineItemNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrConfirmationRequired):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrLoginRequired),
		errors.Is(err, service.ErrNotLoggedIn):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

// confirmed reads ?confirm=. Anything unparsable counts as not confirmed.
func confirmed(c echo.Context) bool {
	ok, _ := strconv.ParseBool(c.QueryParam("confirm"))
	return ok
}

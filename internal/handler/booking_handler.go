package handler

import (
	"fmt"
	"net/http"

	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:id", h.GetBooking)
	g.GET("/bookings/:id/receipt", h.DownloadReceipt)
	g.PATCH("/bookings/:id", h.UpdateBooking)
	g.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToBookingResponses(h.svc.List()))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, err := h.svc.Get(models.ID(c.Param("id")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *BookingHandler) DownloadReceipt(c echo.Context) error {
	id := models.ID(c.Param("id"))
	b, err := h.svc.Get(id)
	if err != nil {
		return httpError(err)
	}
	text, err := h.svc.Receipt(id)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "booking-"+b.BookingID+".txt"))
	return c.String(http.StatusOK, text)
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	b, err := h.svc.Update(c.Request().Context(), models.ID(c.Param("id")), service.BookingUpdate{
		Travelers:       req.Travelers,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
	})
	if err != nil {
		return httpError(err)
	}

	resp := dto.ToBookingResponse(b)
	resp.Message = notify.BookingUpdatedNotice(b).Message
	return c.JSON(http.StatusOK, resp)
}

// DeleteBooking needs ?confirm=true.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	b, err := h.svc.Delete(c.Request().Context(), models.ID(c.Param("id")), confirmed(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: notify.BookingDeletedNotice(b).Message})
}

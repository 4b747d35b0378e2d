package handler

import (
	"net/http"

	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	co := g.Group("/checkout")
	co.GET("", h.View)
	co.POST("/proceed", h.Proceed)
	co.POST("/back", h.Back)
	co.POST("/details", h.SubmitDetails)
	co.POST("/payment", h.SubmitPayment)
	co.POST("/confirm", h.Confirm)
	co.POST("/cancel", h.Cancel)
}

func (h *CheckoutHandler) View(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToCheckoutResponse(h.svc.View()))
}

func (h *CheckoutHandler) Proceed(c echo.Context) error {
	v, err := h.svc.Proceed(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCheckoutResponse(v))
}

func (h *CheckoutHandler) Back(c echo.Context) error {
	v, err := h.svc.Back(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCheckoutResponse(v))
}

func (h *CheckoutHandler) SubmitDetails(c echo.Context) error {
	var req dto.CustomerDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	v, err := h.svc.SubmitDetails(c.Request().Context(), service.CustomerDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCheckoutResponse(v))
}

func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	v, err := h.svc.SubmitPayment(c.Request().Context(), service.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCheckoutResponse(v))
}

func (h *CheckoutHandler) Confirm(c echo.Context) error {
	conf, err := h.svc.Confirm(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ConfirmationResponse{
		Booking:    dto.ToBookingResponse(conf.Booking),
		RedirectTo: conf.RedirectTo,
		Message:    notify.BookingConfirmedNotice(conf.Booking).Message,
	})
}

func (h *CheckoutHandler) Cancel(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToCheckoutResponse(h.svc.Cancel(c.Request().Context())))
}

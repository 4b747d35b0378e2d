package handler

import (
	"net/http"

	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	svc service.CartService
}

func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.GetCart)
	g.DELETE("/cart", h.ClearCart)
	g.POST("/cart/items", h.AddItem)
	g.PATCH("/cart/items/:id", h.UpdateQuantity)
	g.DELETE("/cart/items/:id", h.RemoveItem)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartResponse(""))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PackageID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "package_id is required")
	}

	item, err := h.svc.AddItem(c.Request().Context(), req.PackageID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, h.cartResponse(notify.ItemAdded(item).Message))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.svc.UpdateQuantity(c.Request().Context(), models.ID(c.Param("id")), req.Delta); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(""))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	item, err := h.svc.RemoveItem(c.Request().Context(), models.ID(c.Param("id")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(notify.ItemRemoved(item).Message))
}

// ClearCart needs ?confirm=true once the cart has items.
func (h *CartHandler) ClearCart(c echo.Context) error {
	hadItems := h.svc.TotalCount() > 0
	if err := h.svc.Clear(c.Request().Context(), confirmed(c)); err != nil {
		return httpError(err)
	}
	msg := ""
	if hadItems {
		msg = notify.CartClearedNotice().Message
	}
	return c.JSON(http.StatusOK, h.cartResponse(msg))
}

func (h *CartHandler) cartResponse(msg string) dto.CartResponse {
	return dto.CartResponse{
		Items:      dto.ToCartItemResponses(h.svc.Items()),
		TotalPrice: h.svc.TotalPrice(),
		TotalCount: h.svc.TotalCount(),
		Message:    msg,
	}
}

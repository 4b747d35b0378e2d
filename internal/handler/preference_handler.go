package handler

import (
	"net/http"

	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

type PreferenceHandler struct {
	svc service.PreferenceService
}

func NewPreferenceHandler(svc service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

func (h *PreferenceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/preferences", h.GetPreferences)
	g.PUT("/preferences", h.UpdatePreferences)
	g.POST("/preferences/dark-mode/toggle", h.ToggleDarkMode)
}

func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.PreferencesResponse{DarkMode: h.svc.DarkMode()})
}

func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	var req dto.PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.DarkMode != nil {
		if err := h.svc.SetDarkMode(c.Request().Context(), *req.DarkMode); err != nil {
			return httpError(err)
		}
	}
	return c.JSON(http.StatusOK, dto.PreferencesResponse{DarkMode: h.svc.DarkMode()})
}

func (h *PreferenceHandler) ToggleDarkMode(c echo.Context) error {
	on, err := h.svc.ToggleDarkMode(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.PreferencesResponse{DarkMode: on})
}

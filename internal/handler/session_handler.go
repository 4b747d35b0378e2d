package handler

import (
	"net/http"

	"github.com/Eursukkul/tour-booking/tour-service/internal/dto"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	svc service.SessionService
}

func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/session", h.GetSession)
	g.POST("/session/login", h.Login)
	g.POST("/session/logout", h.Logout)
	g.PATCH("/session/profile", h.UpdateProfile)
	g.POST("/session/favorites/:package_id", h.ToggleFavorite)
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToSessionResponse(h.svc.Current()))
}

func (h *SessionHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.svc.Login(c.Request().Context(), service.LoginForm{
		Mode:            service.LoginMode(req.Mode),
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		Address:         req.Address,
	})
	if err != nil {
		return httpError(err)
	}

	resp := dto.ToSessionResponse(h.svc.Current())
	resp.Message = notify.LoggedIn(profile).Message
	return c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.svc.Logout(c.Request().Context()); err != nil {
		return httpError(err)
	}
	resp := dto.ToSessionResponse(h.svc.Current())
	resp.Message = notify.LoggedOut().Message
	return c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.svc.UpdateProfile(c.Request().Context(), service.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Favorites: req.Favorites,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *SessionHandler) ToggleFavorite(c echo.Context) error {
	packageID, err := intParam(c, "package_id")
	if err != nil {
		return err
	}

	on, err := h.svc.ToggleFavorite(c.Request().Context(), packageID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.FavoriteResponse{PackageID: packageID, Favorite: on})
}

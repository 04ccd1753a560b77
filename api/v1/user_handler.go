package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/thesrcielos/CodingTracker/api/middleware"
	"github.com/thesrcielos/CodingTracker/internal/user"
	"github.com/thesrcielos/CodingTracker/pkg/metrics"
)

type UserHandler struct {
	service *user.UserService
}

func NewUserHandler(service *user.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func RegisterUserRoutes(e *echo.Echo, h *UserHandler, auth echo.MiddlewareFunc) {
	e.POST("/register", h.RegisterHandler)
	e.POST("/login", h.LoginHandler)
	e.POST("/logout", h.LogoutHandler, auth)
}

func (h *UserHandler) RegisterHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registered",
		"user":    created,
	})
}

func (h *UserHandler) LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) LogoutHandler(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context(), api_middleware.BearerToken(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/thesrcielos/CodingTracker/api/middleware"
	"github.com/thesrcielos/CodingTracker/internal/platform"
	"github.com/thesrcielos/CodingTracker/pkg/metrics"
)

type StatsHandler struct {
	service *platform.StatsService
}

func NewStatsHandler(service *platform.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// RegisterPlatformRoutes binds one GET and one POST per platform, all sharing
// the same handlers.
func RegisterPlatformRoutes(e *echo.Echo, h *StatsHandler, auth echo.MiddlewareFunc) {
	for _, p := range platform.Platforms() {
		e.GET("/"+string(p), h.GetStatsHandler(p), auth)
		e.POST("/"+string(p), h.UpsertStatsHandler(p), auth)
	}
	e.GET("/stats", h.SummaryHandler, auth)
}

func (h *StatsHandler) GetStatsHandler(p platform.Platform) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := api_middleware.CurrentIdentity(c)
		if err != nil {
			return err
		}

		stat, err := h.service.GetStats(c.Request().Context(), identity, p)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, stat)
	}
}

func (h *StatsHandler) UpsertStatsHandler(p platform.Platform) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := api_middleware.CurrentIdentity(c)
		if err != nil {
			return err
		}

		var req platform.StatsRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}

		stat, err := h.service.UpsertStats(c.Request().Context(), identity, p, req)
		if err != nil {
			metrics.StatSubmissions.WithLabelValues(string(p), "error").Inc()
			return err
		}
		metrics.StatSubmissions.WithLabelValues(string(p), "ok").Inc()
		return c.JSON(http.StatusOK, stat)
	}
}

func (h *StatsHandler) SummaryHandler(c echo.Context) error {
	identity, err := api_middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

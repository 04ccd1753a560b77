package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	api_middleware "github.com/thesrcielos/CodingTracker/api/middleware"
	"github.com/thesrcielos/CodingTracker/internal/platform"
	"github.com/thesrcielos/CodingTracker/internal/user"
	"github.com/thesrcielos/CodingTracker/pkg/db"
	"github.com/thesrcielos/CodingTracker/pkg/metrics"
	"gorm.io/gorm"
)

type RouterConfig struct {
	Users       *user.UserService
	Stats       *platform.StatsService
	DB          *gorm.DB
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *echo.Echo {
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.WithError(err).Warn("metrics registration failed")
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(api_middleware.Metrics())
	e.Use(api_middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	auth := api_middleware.SetupJWTMiddleware(cfg.Users)
	RegisterUserRoutes(e, NewUserHandler(cfg.Users), auth)
	RegisterPlatformRoutes(e, NewStatsHandler(cfg.Stats), auth)

	e.GET("/health", healthHandler(cfg.DB))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func healthHandler(gdb *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx, gdb); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}

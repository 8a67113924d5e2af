package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルーティングに必要なhandler一式。
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	Category      *handler.CategoryHandler
	Cart          *handler.CartHandler
	Order         *handler.OrderHandler
	AdminProduct  *handler.AdminProductHandler
	AdminCategory *handler.AdminCategoryHandler
	AdminOrder    *handler.AdminOrderHandler
	AdminAudit    *handler.AdminAuditHandler
}

func New(cfg config.Config, hs Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	registerRoutes(e, cfg, hs)

	return e
}

func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}

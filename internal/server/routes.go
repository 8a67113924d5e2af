package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
)

// 全ルートは /api の下にぶら下げる
func registerRoutes(e *echo.Echo, cfg config.Config, hs Handlers) {
	api := e.Group("/api")

	hs.Health.RegisterRoutes(api)
	hs.Auth.RegisterRoutes(api, cfg)
	hs.Product.RegisterRoutes(api)
	hs.Category.RegisterRoutes(api)
	hs.Cart.RegisterRoutes(api, cfg)
	hs.Order.RegisterRoutes(api, cfg)
	hs.AdminProduct.RegisterRoutes(api, cfg)
	hs.AdminCategory.RegisterRoutes(api, cfg)
	hs.AdminOrder.RegisterRoutes(api, cfg)
	hs.AdminAudit.RegisterRoutes(api, cfg)
}

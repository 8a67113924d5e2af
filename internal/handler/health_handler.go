package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// 死活確認。DBにpingが通るかまで見る。
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.check)
}

func (h *HealthHandler) check(c echo.Context) error {
	now := time.Now().UTC().Format(time.RFC3339)

	sqlDB, err := h.db.DB()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "ng", "timestamp": now})
	}
	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "ng", "timestamp": now})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "timestamp": now})
}

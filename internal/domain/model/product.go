package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 価格はdecimal(10,2)で保持する（floatは使わない）。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url"`

	// 在庫。注文確定の減算と管理者の在庫調整でのみ変わる。0未満にはしない。
	StockQuantity int64 `gorm:"not null;default:0" json:"stock_quantity"`

	CategoryID int64  `gorm:"not null;index" json:"category_id"`
	Brand      string `gorm:"type:varchar(50)" json:"brand"`

	// 取り扱いサイズのJSON文字列（例: ["40","41","42"]）
	SizeAvailable string `gorm:"type:varchar(100)" json:"size_available"`

	Color    string `gorm:"type:varchar(50)" json:"color"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

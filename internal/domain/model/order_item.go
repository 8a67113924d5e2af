package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。priceは購入時点の商品価格のコピー（後で商品価格が変わっても動かない）。
// 作成後は変更しない。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Size      string          `gorm:"type:varchar(10)" json:"size"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"-"`
}

// Subtotal はprice×quantityを返す。
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// 注文ヘッダ。作成後はstatus/payment_status/tracking_code以外は変更しない。
type Order struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index;uniqueIndex:uq_order_user_idem" json:"user_id"`

	// 確定時点の明細小計の合計
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	Status          OrderStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentMethod   string        `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	ShippingAddress string        `gorm:"type:text;not null" json:"shipping_address"`
	TrackingCode    string        `gorm:"type:varchar(100)" json:"tracking_code"`
	Notes           string        `gorm:"type:text" json:"notes"`

	// 二重送信防止（同一ユーザー内で一意）
	IdempotencyKey string `gorm:"type:varchar(255);not null;uniqueIndex:uq_order_user_idem" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

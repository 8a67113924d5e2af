package model

import "time"

// カート明細。(user_id, product_id, size)で1行、同じ組は数量加算。
// 価格は持たない（カート表示は常に現在価格で計算する）。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:uq_cart_user_product_size" json:"user_id"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:uq_cart_user_product_size" json:"product_id"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantity"`
	Size      string    `gorm:"type:varchar(10);uniqueIndex:uq_cart_user_product_size" json:"size"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}

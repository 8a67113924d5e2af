package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)

	// 同一(user, product, size)は行を増やさず数量加算
	UpsertByUserProductSize(ctx context.Context, userID int64, productID int64, size string, addQty int64) error

	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	// カート全消し（手動クリアと注文確定の両方で使う）
	DeleteAllByUserID(ctx context.Context, userID int64) error
}

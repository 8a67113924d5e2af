package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page    int
	PerPage int
	Status  string
	UserID  *int64
	From    *time.Time
	To      *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// 新しい順。2番目は総件数。
	ListByUserID(ctx context.Context, userID int64, page int, perPage int) ([]model.Order, int64, error)

	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateTrackingCode(ctx context.Context, orderID int64, code string) error

	// 同じキーなら同じ注文を返すための検索
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)

	// 管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
}

package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

type AdminUpdateOrderStatusInput struct {
	Status       string
	TrackingCode string
}

// 全ユーザー横断の注文一覧
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (OrderListOutput, error) {
	if f.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid per_page")
	}
	if s := strings.TrimSpace(f.Status); s != "" && !isValidOrderStatus(s) {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}

		out = OrderListOutput{
			Orders:      outs,
			Total:       total,
			Pages:       pageCount(total, f.PerPage),
			CurrentPage: f.Page,
		}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *AdminOrderUsecase) GetDetail(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ステータス更新（cancelledにするときだけ在庫戻し）
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorAdminUserID int64, orderID int64, in AdminUpdateOrderStatusInput) (OrderOutput, error) {
	if actorAdminUserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := strings.TrimSpace(in.Status)
	if !isValidOrderStatus(newStatus) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if string(o.Status) != newStatus {
			// 終端ガード
			if o.Status == model.OrderStatusDelivered {
				return NewHTTPError(http.StatusBadRequest, "cannot change delivered order")
			}
			if o.Status == model.OrderStatusCancelled {
				return NewHTTPError(http.StatusBadRequest, "cannot change cancelled order")
			}

			// キャンセル時は在庫を戻す。発送後のキャンセルは不可。
			if newStatus == string(model.OrderStatusCancelled) {
				if o.Status != model.OrderStatusPending && o.Status != model.OrderStatusConfirmed {
					return NewHTTPError(http.StatusBadRequest, "cannot cancel shipped order")
				}
				for _, it := range items {
					if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
						return NewHTTPError(http.StatusInternalServerError, "db error")
					}
				}
			}

			beforeStatus := string(o.Status)
			if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(newStatus)); err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "order not found")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			o.Status = model.OrderStatus(newStatus)

			// 監査ログもステータス変更と同じtxに載せる（rollbackで一緒に消える）
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				ActorUserID:  actorAdminUserID,
				Action:       model.AuditActionUpdateOrderStatus,
				ResourceType: model.AuditResourceOrder,
				ResourceID:   orderID,
				BeforeJSON:   `{"status":"` + beforeStatus + `"}`,
				AfterJSON:    `{"status":"` + newStatus + `"}`,
				CreatedAt:    time.Now(),
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		// 追跡番号は任意。送られてきたときだけ上書き。
		if code := strings.TrimSpace(in.TrackingCode); code != "" {
			if err := r.Orders().UpdateTrackingCode(ctx, orderID, code); err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "order not found")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			o.TrackingCode = code
		}

		o.UpdatedAt = time.Now()
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func isValidOrderStatus(s string) bool {
	switch model.OrderStatus(s) {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled:
		return true
	}
	return false
}

// 期間パラメータはhandlerでここを通してtime.Timeにする
func parseDateTimeRFC3339(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

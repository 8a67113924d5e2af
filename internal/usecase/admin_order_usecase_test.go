package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(newTxManagerStub())

	_, err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "PAID"})
	assertErrContains(t, err, "invalid status")
}

// 配達済み・キャンセル済みからは動かせない
func TestAdminOrderUsecase_UpdateStatus_TerminalGuard(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	tx.repos.orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, Status: model.OrderStatusDelivered}, nil)
	tx.repos.orderItems.On("ListByOrderID", mock.Anything, int64(5)).
		Return([]model.OrderItem{}, nil)

	_, err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "cannot change delivered order")

	tx.repos.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// キャンセル時は明細分の在庫を戻す
func TestAdminOrderUsecase_UpdateStatus_CancelRestoresStock(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	tx.repos.orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, UserID: 1, Status: model.OrderStatusPending}, nil)

	items := []model.OrderItem{
		{OrderID: 5, ProductID: 100, Quantity: 2, Price: d("299.99")},
		{OrderID: 5, ProductID: 200, Quantity: 1, Price: d("199.99")},
	}
	tx.repos.orderItems.On("ListByOrderID", mock.Anything, int64(5)).Return(items, nil)

	tx.repos.inventory.On("IncreaseStock", mock.Anything, int64(100), int64(2)).Return(nil)
	tx.repos.inventory.On("IncreaseStock", mock.Anything, int64(200), int64(1)).Return(nil)

	tx.repos.orders.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusCancelled).Return(nil)

	tx.repos.audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateOrderStatus &&
			l.ResourceType == model.AuditResourceOrder &&
			l.ResourceID == 5 &&
			l.BeforeJSON == `{"status":"pending"}` &&
			l.AfterJSON == `{"status":"cancelled"}`
	})).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "cancelled"})
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", out.Status)

	tx.repos.inventory.AssertExpectations(t)
	tx.repos.orders.AssertExpectations(t)
	tx.repos.audit.AssertExpectations(t)
}

// 発送済みはキャンセルできない（在庫も戻さない）
func TestAdminOrderUsecase_UpdateStatus_CannotCancelShipped(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	tx.repos.orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, Status: model.OrderStatusShipped}, nil)
	tx.repos.orderItems.On("ListByOrderID", mock.Anything, int64(5)).
		Return([]model.OrderItem{{ProductID: 100, Quantity: 2}}, nil)

	_, err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "cancelled"})
	assertErrContains(t, err, "cannot cancel shipped order")

	tx.repos.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

// 同じステータスへの変更はno-op（在庫も監査ログも触らない）
func TestAdminOrderUsecase_UpdateStatus_SameStatusNoop(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	tx.repos.orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, Status: model.OrderStatusPending}, nil)
	tx.repos.orderItems.On("ListByOrderID", mock.Anything, int64(5)).
		Return([]model.OrderItem{}, nil)

	out, err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "pending"})
	assert.NoError(t, err)
	assert.Equal(t, "pending", out.Status)

	tx.repos.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	tx.repos.audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 追跡番号だけの更新
func TestAdminOrderUsecase_UpdateStatus_TrackingCodeOnly(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	tx.repos.orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, Status: model.OrderStatusShipped}, nil)
	tx.repos.orderItems.On("ListByOrderID", mock.Anything, int64(5)).
		Return([]model.OrderItem{}, nil)
	tx.repos.orders.On("UpdateTrackingCode", mock.Anything, int64(5), "JP123456789").Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{
		Status:       "shipped",
		TrackingCode: "JP123456789",
	})
	assert.NoError(t, err)
	assert.Equal(t, "JP123456789", out.TrackingCode)

	tx.repos.orders.AssertExpectations(t)
}

func TestAdminOrderUsecase_List_InvalidStatusFilter(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(newTxManagerStub())

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, PerPage: 20, Status: "bogus"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_List_Success(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	f := repo.AdminOrderListFilter{Page: 1, PerPage: 20, Status: "pending"}
	tx.repos.orders.On("ListAdmin", mock.Anything, f).
		Return([]model.Order{{ID: 1, Status: model.OrderStatusPending}}, int64(1), nil)
	tx.repos.orderItems.On("ListByOrderID", mock.Anything, int64(1)).
		Return([]model.OrderItem{}, nil)

	out, err := uc.List(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Orders, 1)
}

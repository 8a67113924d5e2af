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

func TestCartUsecase_AddToCart_Unauthorized(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartItemRepoMock), new(ProductRepoMock))

	_, err := uc.AddToCart(context.Background(), 0, usecase.AddCartInput{ProductID: 1, Quantity: 1})
	assertErrContains(t, err, "unauthorized")
}

func TestCartUsecase_AddToCart_ProductNotFound(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 100, Quantity: 1})
	assertErrContains(t, err, "product not found")
}

// 同一商品+サイズの追加は行を増やさず数量加算になる
func TestCartUsecase_AddToCart_SameProductAddsQuantity(t *testing.T) {
	ctx := context.Background()
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	p := model.Product{ID: 100, Price: d("179.99"), StockQuantity: 10, IsActive: true}
	pRepo.On("FindByID", mock.Anything, int64(100)).Return(p, nil)

	// 既に1個入っている
	existing := []model.CartItem{{ID: 5, UserID: 1, ProductID: 100, Quantity: 1, Size: "42"}}
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return(existing, nil).Once()

	cRepo.On("UpsertByUserProductSize", mock.Anything, int64(1), int64(100), "42", int64(2)).Return(nil)

	// レスポンス組み立て用：加算後の明細
	after := []model.CartItem{{ID: 5, UserID: 1, ProductID: 100, Quantity: 3, Size: "42"}}
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return(after, nil)

	out, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{ProductID: 100, Quantity: 2, Size: "42"})
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, int64(3), out.CartItems[0].Quantity)
	// 179.99 * 3 = 539.97（現在価格で計算）
	assert.True(t, out.Total.Equal(d("539.97")))

	cRepo.AssertExpectations(t)
}

// 既存数量＋追加分が在庫を超えるなら拒否
func TestCartUsecase_AddToCart_ExceedsStock(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	p := model.Product{ID: 100, Price: d("179.99"), StockQuantity: 3, IsActive: true}
	pRepo.On("FindByID", mock.Anything, int64(100)).Return(p, nil)

	existing := []model.CartItem{{ID: 5, UserID: 1, ProductID: 100, Quantity: 2, Size: "42"}}
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return(existing, nil)

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 100, Quantity: 2, Size: "42"})
	assertErrContains(t, err, "insufficient stock")

	cRepo.AssertNotCalled(t, "UpsertByUserProductSize", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 数量0以下は明細ごと削除
func TestCartUsecase_UpdateCartItem_ZeroQuantityDeletes(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(5)).
		Return(model.CartItem{ID: 5, UserID: 1, ProductID: 100, Quantity: 2}, nil)
	cRepo.On("DeleteByID", mock.Anything, int64(5)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.UpdateCartItem(context.Background(), 1, 5, usecase.UpdateCartItemInput{Quantity: 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.True(t, out.Total.IsZero())

	cRepo.AssertExpectations(t)
}

// 他人の明細は「存在しない扱い」
func TestCartUsecase_UpdateCartItem_OtherUsersItem(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(5)).
		Return(model.CartItem{ID: 5, UserID: 99, ProductID: 100, Quantity: 2}, nil)

	_, err := uc.UpdateCartItem(context.Background(), 1, 5, usecase.UpdateCartItemInput{Quantity: 3})
	assertErrContains(t, err, "cart item not found")

	cRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateCartItem_ExceedsStock(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(5)).
		Return(model.CartItem{ID: 5, UserID: 1, ProductID: 100, Quantity: 2}, nil)
	pRepo.On("FindByID", mock.Anything, int64(100)).
		Return(model.Product{ID: 100, StockQuantity: 3, IsActive: true}, nil)

	_, err := uc.UpdateCartItem(context.Background(), 1, 5, usecase.UpdateCartItemInput{Quantity: 4})
	assertErrContains(t, err, "insufficient stock")
}

func TestCartUsecase_RemoveCartItem_Success(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(5)).
		Return(model.CartItem{ID: 5, UserID: 1, ProductID: 100, Quantity: 2}, nil)
	cRepo.On("DeleteByID", mock.Anything, int64(5)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.RemoveCartItem(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Count)

	cRepo.AssertExpectations(t)
}

func TestCartUsecase_ClearCart_Success(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	err := uc.ClearCart(context.Background(), 1)
	assert.NoError(t, err)

	cRepo.AssertExpectations(t)
}

// 商品行ごと消えている明細は表示から外す
func TestCartUsecase_GetCart_SkipsDeletedProducts(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	items := []model.CartItem{
		{ID: 1, UserID: 1, ProductID: 100, Quantity: 1},
		{ID: 2, UserID: 1, ProductID: 200, Quantity: 2},
	}
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return(items, nil)

	pRepo.On("FindByID", mock.Anything, int64(100)).
		Return(model.Product{ID: 100, Price: d("100.50"), IsActive: true}, nil)
	pRepo.On("FindByID", mock.Anything, int64(200)).
		Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.True(t, out.Total.Equal(d("100.50")))
}

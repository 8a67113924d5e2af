package validator_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestValidateRegister_MissingName(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateRegister(context.Background(), " ", "taro@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name required")
}

func TestValidateRegister_InvalidEmail(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateRegister(context.Background(), "Taro", "not-an-email", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
}

func TestValidateRegister_ShortPassword(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateRegister(context.Background(), "Taro", "taro@example.com", "short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8")
}

func TestValidateRegister_DuplicateEmail(t *testing.T) {
	uRepo := new(userRepoMock)
	v := validator.NewAuthValidator(uRepo)

	uRepo.On("FindByEmail", mock.Anything, "taro@example.com").
		Return(&model.User{ID: 1, Email: "taro@example.com"}, nil)

	err := v.ValidateRegister(context.Background(), "Taro", "taro@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	// 重複は400で返す
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestValidateRegister_OK(t *testing.T) {
	uRepo := new(userRepoMock)
	v := validator.NewAuthValidator(uRepo)

	// 見つからないときは(nil, nil)
	uRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return((*model.User)(nil), nil)

	err := v.ValidateRegister(context.Background(), "Taro", "taro@example.com", "password123")
	assert.NoError(t, err)
}

func TestValidateLogin_MissingFields(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateLogin(context.Background(), "", "password123")
	assert.Error(t, err)

	err = v.ValidateLogin(context.Background(), "taro@example.com", "")
	assert.Error(t, err)
}

func TestValidateLogin_OK(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	err := v.ValidateLogin(context.Background(), "taro@example.com", "password123")
	assert.NoError(t, err)
}

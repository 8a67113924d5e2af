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

func TestAuditUsecase_List_DefaultLimit(t *testing.T) {
	aRepo := new(AuditRepoMock)
	uc := usecase.NewAuditUsecase(aRepo)

	aRepo.On("List", mock.Anything, mock.MatchedBy(func(f repo.AuditLogFilter) bool {
		return f.Limit == 50 && f.Offset == 0
	})).Return([]model.AuditLog{{ID: 1}}, nil)

	out, err := uc.List(context.Background(), repo.AuditLogFilter{})
	assert.NoError(t, err)
	assert.Len(t, out.Logs, 1)
	assert.Equal(t, 50, out.Limit)

	aRepo.AssertExpectations(t)
}

func TestAuditUsecase_List_LimitTooLarge(t *testing.T) {
	uc := usecase.NewAuditUsecase(new(AuditRepoMock))

	_, err := uc.List(context.Background(), repo.AuditLogFilter{Limit: 500})
	assertErrContains(t, err, "limit too large")
}

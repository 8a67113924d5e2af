package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理者向けの監査ログ閲覧
type AuditUsecase struct {
	auditRepo repo.AuditLogRepository
}

func NewAuditUsecase(auditRepo repo.AuditLogRepository) *AuditUsecase {
	return &AuditUsecase{auditRepo: auditRepo}
}

type AuditListOutput struct {
	Logs   []model.AuditLog `json:"logs"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

func (u *AuditUsecase) List(ctx context.Context, f repo.AuditLogFilter) (AuditListOutput, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		return AuditListOutput{}, NewHTTPError(http.StatusBadRequest, "limit too large")
	}
	if f.Offset < 0 {
		return AuditListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid offset")
	}

	logs, err := u.auditRepo.List(ctx, f)
	if err != nil {
		return AuditListOutput{}, err
	}

	return AuditListOutput{Logs: logs, Limit: f.Limit, Offset: f.Offset}, nil
}

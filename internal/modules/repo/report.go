package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type ReportRepo interface {
	Create(ctx context.Context, r *model.Report) error
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]*model.Report, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Report, error)
	Update(ctx context.Context, id uuid.UUID, r *model.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepo struct{ crud[model.Report] }

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepo{crud[model.Report]{db: db}}
}

func (r *reportRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Report, error) {
	return r.find(ctx, "task_id = ?", taskID)
}

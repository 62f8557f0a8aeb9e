package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type ReportService interface {
	List(ctx context.Context) ([]*model.Report, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Report, error)
	Create(ctx context.Context, r *model.Report) error
	Update(ctx context.Context, id uuid.UUID, r *model.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	r     repo.ReportRepo
	tasks repo.TaskRepo
}

func NewReportService(r repo.ReportRepo, tasks repo.TaskRepo) ReportService {
	return &reportService{r: r, tasks: tasks}
}

func (s *reportService) List(ctx context.Context) ([]*model.Report, error) {
	return s.r.List(ctx)
}

func (s *reportService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Report, error) {
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}
	return s.r.ListByTask(ctx, taskID)
}

func (s *reportService) Create(ctx context.Context, r *model.Report) error {
	return s.r.Create(ctx, r)
}

func (s *reportService) Update(ctx context.Context, id uuid.UUID, r *model.Report) error {
	return s.r.Update(ctx, id, r)
}

func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*model.Project, error)
	ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id uuid.UUID, p *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct{ r repo.ProjectRepo }

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

func (s *projectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*model.Project, error) {
	return s.r.ListByOwner(ctx, userID)
}

func (s *projectService) ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Project, error) {
	return s.r.ListJoined(ctx, userID)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.r.Get(ctx, id)
}

func (s *projectService) Create(ctx context.Context, p *model.Project) error {
	if err := checkDateRange(p.StartDate, p.EndDate); err != nil {
		return err
	}
	return s.r.Create(ctx, p)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, p *model.Project) error {
	if err := checkDateRange(p.StartDate, p.EndDate); err != nil {
		return err
	}
	return s.r.Update(ctx, id, p)
}

// Delete cascades to milestones and tasks through the foreign keys.
func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

func checkDateRange(start, end *model.Date) error {
	if start != nil && end != nil && end.Time().Before(start.Time()) {
		return fieldErr("date_fin", "La date de fin doit être postérieure ou égale à la date de début.")
	}
	return nil
}

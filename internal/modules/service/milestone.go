package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type MilestoneService interface {
	List(ctx context.Context) ([]*model.Milestone, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Milestone, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Milestone, error)
	Create(ctx context.Context, m *model.Milestone) error
	Update(ctx context.Context, id uuid.UUID, m *model.Milestone) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type milestoneService struct {
	r        repo.MilestoneRepo
	projects repo.ProjectRepo
}

func NewMilestoneService(r repo.MilestoneRepo, projects repo.ProjectRepo) MilestoneService {
	return &milestoneService{r: r, projects: projects}
}

func (s *milestoneService) List(ctx context.Context) ([]*model.Milestone, error) {
	return s.r.List(ctx)
}

func (s *milestoneService) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Milestone, error) {
	return s.r.ListByCreator(ctx, userID)
}

func (s *milestoneService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Milestone, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.r.ListByProject(ctx, projectID)
}

func (s *milestoneService) Create(ctx context.Context, m *model.Milestone) error {
	return s.r.Create(ctx, m)
}

func (s *milestoneService) Update(ctx context.Context, id uuid.UUID, m *model.Milestone) error {
	return s.r.Update(ctx, id, m)
}

func (s *milestoneService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

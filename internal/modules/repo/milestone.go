package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type MilestoneRepo interface {
	Create(ctx context.Context, m *model.Milestone) error
	Get(ctx context.Context, id uuid.UUID) (*model.Milestone, error)
	List(ctx context.Context) ([]*model.Milestone, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Milestone, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Milestone, error)
	Update(ctx context.Context, id uuid.UUID, m *model.Milestone) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type milestoneRepo struct{ crud[model.Milestone] }

func NewMilestoneRepo(db *gorm.DB) MilestoneRepo {
	return &milestoneRepo{crud[model.Milestone]{db: db}}
}

func (r *milestoneRepo) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Milestone, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *milestoneRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Milestone, error) {
	return r.find(ctx, "project_id = ?", projectID)
}

func (r *milestoneRepo) Update(ctx context.Context, id uuid.UUID, m *model.Milestone) error {
	return r.update(ctx, id, m, "user_id")
}

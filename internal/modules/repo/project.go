package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*model.Project, error)
	// ListJoined returns projects of every team the user is a member of.
	ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, p *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ crud[model.Project] }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{crud[model.Project]{db: db}}
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Preload("Team").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*model.Project, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *projectRepo) ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Project, error) {
	var items []*model.Project
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("team_id IN (?)", r.db.Model(&model.TeamMember{}).Select("team_id").Where("user_id = ?", userID)).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// Update keeps the owner.
func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, p *model.Project) error {
	return r.update(ctx, id, p, "user_id")
}

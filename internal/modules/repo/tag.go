package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type TagRepo interface {
	Create(ctx context.Context, t *model.Tag) error
	Get(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	List(ctx context.Context) ([]*model.Tag, error)
	Update(ctx context.Context, id uuid.UUID, t *model.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagRepo struct{ crud[model.Tag] }

func NewTagRepo(db *gorm.DB) TagRepo {
	return &tagRepo{crud[model.Tag]{db: db}}
}

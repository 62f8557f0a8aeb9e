package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(ctx context.Context, c *model.Comment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	List(ctx context.Context) ([]*model.Comment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Comment, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error)
	Update(ctx context.Context, id uuid.UUID, c *model.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepo struct{ crud[model.Comment] }

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepo{crud[model.Comment]{db: db}}
}

func (r *commentRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Comment, error) {
	return r.find(ctx, "task_id = ?", taskID)
}

func (r *commentRepo) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error) {
	return r.find(ctx, "user_id = ?", userID)
}

// Update keeps the author.
func (r *commentRepo) Update(ctx context.Context, id uuid.UUID, c *model.Comment) error {
	return r.update(ctx, id, c, "user_id")
}

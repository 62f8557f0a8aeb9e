package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	CreateBatch(ctx context.Context, items []*model.Attachment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Attachment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error)
	// DeleteWith removes the row and runs beforeCommit inside the transaction;
	// an error from beforeCommit rolls the row back.
	DeleteWith(ctx context.Context, id uuid.UUID, beforeCommit func(a *model.Attachment) error) error
}

type attachmentRepo struct{ crud[model.Attachment] }

func NewAttachmentRepo(db *gorm.DB) AttachmentRepo {
	return &attachmentRepo{crud[model.Attachment]{db: db}}
}

func (r *attachmentRepo) CreateBatch(ctx context.Context, items []*model.Attachment) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *attachmentRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error) {
	return r.find(ctx, "task_id = ?", taskID)
}

func (r *attachmentRepo) DeleteWith(ctx context.Context, id uuid.UUID, beforeCommit func(a *model.Attachment) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.Attachment
		if err := tx.Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}
		if err := tx.Delete(&a).Error; err != nil {
			return err
		}
		if beforeCommit != nil {
			return beforeCommit(&a)
		}
		return nil
	})
}

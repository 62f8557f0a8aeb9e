package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) error
	Get(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	// MarkAllRead returns how many unread notifications were flipped.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationRepo struct{ crud[model.Notification] }

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepo{crud[model.Notification]{db: db}}
}

// ListByUser returns newest first, unlike the other listings.
func (r *notificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	var items []*model.Notification
	return items, r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
}

func (r *notificationRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Notification, error) {
	return r.find(ctx, "task_id = ?", taskID)
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&n).Error
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

// AssignmentText renders the notification sent to a task's assignee.
type AssignmentText func(t *model.Task, projectTitle string) string

type TaskRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context) ([]*model.Task, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error)
	// CreateWithAssignment inserts the task and, when it has an assignee, the
	// assignee's notification in the same transaction. The notification is nil otherwise.
	CreateWithAssignment(ctx context.Context, t *model.Task, text AssignmentText) (*model.Notification, error)
	UpdateWithAssignment(ctx context.Context, id uuid.UUID, t *model.Task, text AssignmentText) (*model.Notification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepo struct{ crud[model.Task] }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{crud[model.Task]{db: db}}
}

func (r *taskRepo) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error) {
	return r.find(ctx, "project_id = ?", projectID)
}

func (r *taskRepo) CreateWithAssignment(ctx context.Context, t *model.Task, text AssignmentText) (*model.Notification, error) {
	var n *model.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Skills").Create(t).Error; err != nil {
			return err
		}
		var err error
		n, err = notifyAssignee(tx, t, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateWithAssignment keeps the creator. Any update carrying an assignee notifies it again.
func (r *taskRepo) UpdateWithAssignment(ctx context.Context, id uuid.UUID, t *model.Task, text AssignmentText) (*model.Notification, error) {
	var n *model.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(tx, id, t, "creator_id"); err != nil {
			return err
		}
		var err error
		n, err = notifyAssignee(tx, t, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func notifyAssignee(tx *gorm.DB, t *model.Task, text AssignmentText) (*model.Notification, error) {
	if t.AssigneeID == nil {
		return nil, nil
	}
	var p model.Project
	if err := tx.Select("id", "title").Where("id = ?", t.ProjectID).First(&p).Error; err != nil {
		return nil, err
	}
	n := &model.Notification{
		UserID:  *t.AssigneeID,
		TaskID:  t.ID,
		Content: text(t, p.Title),
	}
	if err := tx.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *taskRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&t).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

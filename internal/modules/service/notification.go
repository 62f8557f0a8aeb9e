package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type NotificationService interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Notification, error)
	Create(ctx context.Context, n *model.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	r     repo.NotificationRepo
	tasks repo.TaskRepo
}

func NewNotificationService(r repo.NotificationRepo, tasks repo.TaskRepo) NotificationService {
	return &notificationService{r: r, tasks: tasks}
}

func (s *notificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	return s.r.ListByUser(ctx, userID)
}

func (s *notificationService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Notification, error) {
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}
	return s.r.ListByTask(ctx, taskID)
}

func (s *notificationService) Create(ctx context.Context, n *model.Notification) error {
	return s.r.Create(ctx, n)
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	return s.r.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.r.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

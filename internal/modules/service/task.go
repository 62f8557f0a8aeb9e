package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/pkg/metrics"
	"go.uber.org/zap"
)

// EventPublisher is satisfied by *queue.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, v any) error
}

const EventTaskAssigned = "task.assigned"

// AssignmentEvent is published after the notification row has been committed.
type AssignmentEvent struct {
	Type           string    `json:"type"`
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	TaskID         uuid.UUID `json:"tache_id"`
	Content        string    `json:"contenu"`
	CreatedAt      time.Time `json:"created_at"`
}

type TaskService interface {
	List(ctx context.Context) ([]*model.Task, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, id uuid.UUID, t *model.Task) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	r         repo.TaskRepo
	projects  repo.ProjectRepo
	publisher EventPublisher
	log       *zap.Logger
}

// NewTaskService accepts a nil publisher; events are then skipped.
func NewTaskService(r repo.TaskRepo, projects repo.ProjectRepo, publisher EventPublisher, log *zap.Logger) TaskService {
	return &taskService{r: r, projects: projects, publisher: publisher, log: log}
}

func AssignmentMessage(t *model.Task, projectTitle string) string {
	return fmt.Sprintf("La tâche %s du projet %s vous a été assignée.", t.Title, projectTitle)
}

func (s *taskService) List(ctx context.Context) ([]*model.Task, error) {
	return s.r.List(ctx)
}

func (s *taskService) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error) {
	return s.r.ListByAssignee(ctx, userID)
}

func (s *taskService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.r.ListByProject(ctx, projectID)
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return s.r.Get(ctx, id)
}

func (s *taskService) Create(ctx context.Context, t *model.Task) error {
	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}
	if err := checkTaskDates(t); err != nil {
		return err
	}
	n, err := s.r.CreateWithAssignment(ctx, t, AssignmentMessage)
	if err != nil {
		return err
	}
	s.announce(ctx, n)
	return nil
}

// Update rewrites the task; an omitted status keeps the stored one.
func (s *taskService) Update(ctx context.Context, id uuid.UUID, t *model.Task) error {
	if t.Status == "" {
		cur, err := s.r.Get(ctx, id)
		if err != nil {
			return err
		}
		t.Status = cur.Status
	}
	if err := checkTaskDates(t); err != nil {
		return err
	}
	n, err := s.r.UpdateWithAssignment(ctx, id, t, AssignmentMessage)
	if err != nil {
		return err
	}
	s.announce(ctx, n)
	return nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error) {
	return s.r.UpdateStatus(ctx, id, status)
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

// announce publishes the committed notification. The row stays the source of truth,
// so a broker failure is logged and counted only.
func (s *taskService) announce(ctx context.Context, n *model.Notification) {
	if n == nil {
		return
	}
	metrics.NotificationsCreatedTotal.Inc()
	if s.publisher == nil {
		return
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	err := s.publisher.PublishJSON(pctx, AssignmentEvent{
		Type:           EventTaskAssigned,
		NotificationID: n.ID,
		UserID:         n.UserID,
		TaskID:         n.TaskID,
		Content:        n.Content,
		CreatedAt:      n.CreatedAt,
	})
	if err != nil {
		metrics.NotificationPublishFailuresTotal.Inc()
		s.log.Sugar().Warnw("publish assignment event", "notification_id", n.ID, "err", err)
	}
}

func checkTaskDates(t *model.Task) error {
	if t.EndDate.Time().Before(t.StartDate.Time()) {
		return fieldErr("date_fin", "La date de fin doit être postérieure ou égale à la date de début.")
	}
	return nil
}

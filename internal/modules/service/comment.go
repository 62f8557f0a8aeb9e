package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type CommentService interface {
	List(ctx context.Context) ([]*model.Comment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Comment, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error)
	Create(ctx context.Context, c *model.Comment) error
	Update(ctx context.Context, id uuid.UUID, c *model.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentService struct {
	r     repo.CommentRepo
	tasks repo.TaskRepo
	users repo.UserRepo
}

func NewCommentService(r repo.CommentRepo, tasks repo.TaskRepo, users repo.UserRepo) CommentService {
	return &commentService{r: r, tasks: tasks, users: users}
}

func (s *commentService) List(ctx context.Context) ([]*model.Comment, error) {
	return s.r.List(ctx)
}

func (s *commentService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Comment, error) {
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}
	return s.r.ListByTask(ctx, taskID)
}

func (s *commentService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.r.ListByAuthor(ctx, userID)
}

func (s *commentService) Create(ctx context.Context, c *model.Comment) error {
	return s.r.Create(ctx, c)
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, c *model.Comment) error {
	return s.r.Update(ctx, id, c)
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

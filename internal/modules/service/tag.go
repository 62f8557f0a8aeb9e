package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type TagService interface {
	List(ctx context.Context) ([]*model.Tag, error)
	Create(ctx context.Context, t *model.Tag) error
	Update(ctx context.Context, id uuid.UUID, t *model.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct{ r repo.TagRepo }

func NewTagService(r repo.TagRepo) TagService {
	return &tagService{r: r}
}

func (s *tagService) List(ctx context.Context) ([]*model.Tag, error) {
	return s.r.List(ctx)
}

func (s *tagService) Create(ctx context.Context, t *model.Tag) error {
	t.Label = strings.TrimSpace(t.Label)
	return s.r.Create(ctx, t)
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, t *model.Tag) error {
	t.Label = strings.TrimSpace(t.Label)
	return s.r.Update(ctx, id, t)
}

// Delete also removes the tasks carrying the tag.
func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

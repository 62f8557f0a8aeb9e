package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type SkillService interface {
	List(ctx context.Context) ([]*model.Skill, error)
	ListFor(ctx context.Context, owner repo.SkillOwner) ([]model.Skill, error)
	Add(ctx context.Context, owner repo.SkillOwner, labels []string) ([]model.Skill, error)
	Replace(ctx context.Context, owner repo.SkillOwner, labels []string) ([]model.Skill, error)
	Remove(ctx context.Context, owner repo.SkillOwner, skillID uuid.UUID) error
	Clear(ctx context.Context, owner repo.SkillOwner) error
}

type skillService struct{ r repo.SkillRepo }

func NewSkillService(r repo.SkillRepo) SkillService {
	return &skillService{r: r}
}

func (s *skillService) List(ctx context.Context) ([]*model.Skill, error) {
	return s.r.List(ctx)
}

func (s *skillService) ListFor(ctx context.Context, owner repo.SkillOwner) ([]model.Skill, error) {
	return s.r.ListFor(ctx, owner)
}

func (s *skillService) Add(ctx context.Context, owner repo.SkillOwner, labels []string) ([]model.Skill, error) {
	norm, err := normalizeLabels(labels)
	if err != nil {
		return nil, err
	}
	return s.r.Add(ctx, owner, norm)
}

func (s *skillService) Replace(ctx context.Context, owner repo.SkillOwner, labels []string) ([]model.Skill, error) {
	norm, err := normalizeLabels(labels)
	if err != nil {
		return nil, err
	}
	return s.r.Replace(ctx, owner, norm)
}

func (s *skillService) Remove(ctx context.Context, owner repo.SkillOwner, skillID uuid.UUID) error {
	return s.r.Remove(ctx, owner, skillID)
}

func (s *skillService) Clear(ctx context.Context, owner repo.SkillOwner) error {
	return s.r.Clear(ctx, owner)
}

// normalizeLabels trims, drops blanks and keeps the first occurrence of each label.
func normalizeLabels(labels []string) ([]string, error) {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, fieldErr("competences", "Au moins une compétence est requise.")
	}
	return out, nil
}

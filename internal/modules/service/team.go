package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
)

type TeamService interface {
	List(ctx context.Context) ([]*model.Team, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Team, error)
	ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Team, error)
	Create(ctx context.Context, t *model.Team) error
	Update(ctx context.Context, id uuid.UUID, t *model.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetCreator(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListMembers(ctx context.Context, id uuid.UUID) ([]model.TeamMember, error)
	// AddMembers falls back to the configured default role when role is empty.
	AddMembers(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, role string) ([]model.TeamMember, error)
	RemoveMember(ctx context.Context, id, userID uuid.UUID) error
}

type teamService struct {
	r           repo.TeamRepo
	defaultRole string
}

func NewTeamService(r repo.TeamRepo, defaultRole string) TeamService {
	if defaultRole == "" {
		defaultRole = model.RoleMember
	}
	return &teamService{r: r, defaultRole: defaultRole}
}

func (s *teamService) List(ctx context.Context) ([]*model.Team, error) {
	return s.r.List(ctx)
}

func (s *teamService) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Team, error) {
	return s.r.ListByCreator(ctx, userID)
}

func (s *teamService) ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Team, error) {
	return s.r.ListJoined(ctx, userID)
}

// Create makes the creator the team's leader.
func (s *teamService) Create(ctx context.Context, t *model.Team) error {
	return s.r.CreateWithLeader(ctx, t, model.RoleLeader)
}

func (s *teamService) Update(ctx context.Context, id uuid.UUID, t *model.Team) error {
	return s.r.Update(ctx, id, t)
}

func (s *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}

func (s *teamService) GetCreator(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.r.GetCreator(ctx, id)
}

func (s *teamService) ListMembers(ctx context.Context, id uuid.UUID) ([]model.TeamMember, error) {
	return s.r.ListMembers(ctx, id)
}

func (s *teamService) AddMembers(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, role string) ([]model.TeamMember, error) {
	if role == "" {
		role = s.defaultRole
	}
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	uniq := make([]uuid.UUID, 0, len(userIDs))
	for _, uid := range userIDs {
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		uniq = append(uniq, uid)
	}
	if _, err := s.r.UpsertMembers(ctx, id, uniq, role); err != nil {
		return nil, err
	}
	return s.r.ListMembers(ctx, id)
}

func (s *teamService) RemoveMember(ctx context.Context, id, userID uuid.UUID) error {
	return s.r.RemoveMember(ctx, id, userID)
}

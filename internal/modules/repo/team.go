package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Team, error)
	List(ctx context.Context) ([]*model.Team, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Team, error)
	ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Team, error)
	// CreateWithLeader inserts the team and its creator's membership in one transaction.
	CreateWithLeader(ctx context.Context, t *model.Team, role string) error
	Update(ctx context.Context, id uuid.UUID, t *model.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetCreator(ctx context.Context, teamID uuid.UUID) (*model.User, error)

	ListMembers(ctx context.Context, teamID uuid.UUID) ([]model.TeamMember, error)
	// UpsertMembers attaches users without detaching others; existing rows get the new role.
	UpsertMembers(ctx context.Context, teamID uuid.UUID, userIDs []uuid.UUID, role string) ([]model.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
}

type teamRepo struct{ crud[model.Team] }

func NewTeamRepo(db *gorm.DB) TeamRepo {
	return &teamRepo{crud[model.Team]{db: db}}
}

func (r *teamRepo) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Team, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *teamRepo) ListJoined(ctx context.Context, userID uuid.UUID) ([]*model.Team, error) {
	var items []*model.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members tm ON tm.team_id = teams.id").
		Where("tm.user_id = ?", userID).
		Order("teams.created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *teamRepo) CreateWithLeader(ctx context.Context, t *model.Team, role string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return tx.Create(&model.TeamMember{TeamID: t.ID, UserID: t.CreatorID, Role: role}).Error
	})
}

// Update keeps the creator.
func (r *teamRepo) Update(ctx context.Context, id uuid.UUID, t *model.Team) error {
	return r.update(ctx, id, t, "user_id")
}

func (r *teamRepo) GetCreator(ctx context.Context, teamID uuid.UUID) (*model.User, error) {
	var t model.Team
	if err := r.db.WithContext(ctx).Preload("Creator").Where("id = ?", teamID).First(&t).Error; err != nil {
		return nil, err
	}
	if t.Creator == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return t.Creator, nil
}

func (r *teamRepo) ListMembers(ctx context.Context, teamID uuid.UUID) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").Where("id = ?", teamID).First(&model.Team{}).Error; err != nil {
			return err
		}
		return tx.Preload("User").Where("team_id = ?", teamID).Order("created_at ASC").Find(&members).Error
	})
	return members, err
}

func (r *teamRepo) UpsertMembers(ctx context.Context, teamID uuid.UUID, userIDs []uuid.UUID, role string) ([]model.TeamMember, error) {
	rows := make([]model.TeamMember, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, model.TeamMember{TeamID: teamID, UserID: uid, Role: role})
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").Where("id = ?", teamID).First(&model.Team{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamRepo) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&model.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

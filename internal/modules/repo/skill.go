package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SkillOwner is a *model.User or *model.Task carrying only its ID.
type SkillOwner any

func UserSkills(id uuid.UUID) SkillOwner { return &model.User{ID: id} }
func TaskSkills(id uuid.UUID) SkillOwner { return &model.Task{ID: id} }

type SkillRepo interface {
	List(ctx context.Context) ([]*model.Skill, error)
	ListFor(ctx context.Context, owner SkillOwner) ([]model.Skill, error)
	// Add find-or-creates labels and attaches them, keeping existing associations.
	Add(ctx context.Context, owner SkillOwner, labels []string) ([]model.Skill, error)
	// Replace find-or-creates labels and makes them the owner's exact skill set.
	Replace(ctx context.Context, owner SkillOwner, labels []string) ([]model.Skill, error)
	Remove(ctx context.Context, owner SkillOwner, skillID uuid.UUID) error
	Clear(ctx context.Context, owner SkillOwner) error
}

type skillRepo struct{ crud[model.Skill] }

func NewSkillRepo(db *gorm.DB) SkillRepo {
	return &skillRepo{crud[model.Skill]{db: db}}
}

func (r *skillRepo) ListFor(ctx context.Context, owner SkillOwner) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(owner).Error; err != nil {
			return err
		}
		return tx.Model(owner).Order("label ASC").Association("Skills").Find(&skills)
	})
	return skills, err
}

func (r *skillRepo) Add(ctx context.Context, owner SkillOwner, labels []string) ([]model.Skill, error) {
	return r.sync(ctx, owner, labels, false)
}

func (r *skillRepo) Replace(ctx context.Context, owner SkillOwner, labels []string) ([]model.Skill, error) {
	return r.sync(ctx, owner, labels, true)
}

func (r *skillRepo) sync(ctx context.Context, owner SkillOwner, labels []string, replace bool) ([]model.Skill, error) {
	var current []model.Skill
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(owner).Error; err != nil {
			return err
		}
		skills, err := findOrCreateSkills(tx, labels)
		if err != nil {
			return err
		}
		assoc := tx.Model(owner).Omit("Skills.*").Association("Skills")
		if replace {
			err = assoc.Replace(skills)
		} else if len(skills) > 0 {
			err = assoc.Append(skills)
		}
		if err != nil {
			return err
		}
		return tx.Model(owner).Order("label ASC").Association("Skills").Find(&current)
	})
	return current, err
}

// findOrCreateSkills inserts missing labels and returns the rows for all of them.
func findOrCreateSkills(tx *gorm.DB, labels []string) ([]model.Skill, error) {
	if len(labels) == 0 {
		return []model.Skill{}, nil
	}
	rows := make([]model.Skill, 0, len(labels))
	for _, l := range labels {
		rows = append(rows, model.Skill{Label: l})
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "label"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return nil, err
	}

	var skills []model.Skill
	return skills, tx.Where("label IN ?", labels).Find(&skills).Error
}

func (r *skillRepo) Remove(ctx context.Context, owner SkillOwner, skillID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(owner).Error; err != nil {
			return err
		}
		return tx.Model(owner).Association("Skills").Delete(&model.Skill{ID: skillID})
	})
}

func (r *skillRepo) Clear(ctx context.Context, owner SkillOwner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(owner).Error; err != nil {
			return err
		}
		return tx.Model(owner).Association("Skills").Clear()
	})
}

package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepo interface {
	Create(ctx context.Context, t *model.AccessToken) error
	GetByHash(ctx context.Context, hash string) (*model.AccessToken, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, hash string) error
	// DeleteAllForUser returns the hashes of the removed tokens.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type tokenRepo struct{ db *gorm.DB }

func NewTokenRepo(db *gorm.DB) TokenRepo {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, t *model.AccessToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tokenRepo) GetByHash(ctx context.Context, hash string) (*model.AccessToken, error) {
	var t model.AccessToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.AccessToken{}).Where("id = ?", id).Update("last_used_at", at).Error
}

func (r *tokenRepo) Delete(ctx context.Context, hash string) error {
	res := r.db.WithContext(ctx).Where("token_hash = ?", hash).Delete(&model.AccessToken{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tokenRepo) DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var removed []model.AccessToken
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "token_hash"}}}).
		Where("user_id = ?", userID).
		Delete(&removed).Error
	if err != nil {
		return nil, err
	}
	hashes := make([]string, 0, len(removed))
	for _, t := range removed {
		hashes = append(hashes, t.TokenHash)
	}
	return hashes, nil
}

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, id uuid.UUID, u *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo struct{ crud[model.User] }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{crud[model.User]{db: db}}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Update changes profile fields only; password and admin flag have no update path here.
func (r *userRepo) Update(ctx context.Context, id uuid.UUID, u *model.User) error {
	return r.update(ctx, id, u, "password", "is_admin")
}

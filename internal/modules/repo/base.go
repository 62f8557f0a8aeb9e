package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crud holds the single-table operations every resource repo shares.
type crud[T any] struct{ db *gorm.DB }

func (r *crud[T]) Create(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *crud[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	m := new(T)
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *crud[T]) List(ctx context.Context) ([]*T, error) {
	return r.find(ctx, nil)
}

// Update overwrites every writable column of the row and reloads m.
func (r *crud[T]) Update(ctx context.Context, id uuid.UUID, m *T) error {
	return r.update(ctx, id, m)
}

func (r *crud[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crud[T]) find(ctx context.Context, query interface{}, args ...interface{}) ([]*T, error) {
	q := r.db.WithContext(ctx)
	if query != nil {
		q = q.Where(query, args...)
	}
	var items []*T
	return items, q.Order("created_at ASC").Find(&items).Error
}

// update writes zero values too (Select("*")); omit lists columns callers may not change.
func (r *crud[T]) update(ctx context.Context, id uuid.UUID, m *T, omit ...string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updateRow(tx, id, m, omit...)
	})
}

func updateRow[T any](tx *gorm.DB, id uuid.UUID, m *T, omit ...string) error {
	omit = append([]string{"id", "created_at", clause.Associations}, omit...)
	res := tx.Model(new(T)).Where("id = ?", id).Select("*").Omit(omit...).Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return tx.Where("id = ?", id).First(m).Error
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newUserFixture(t *testing.T) (UserService, *MockUserRepo, *blob.LocalStorage) {
	t.Helper()
	r := &MockUserRepo{}
	st := blob.NewLocalFs(afero.NewMemMapFs())
	cfg := &config.Config{Storage: config.StorageCfg{PhotoPrefix: "photo_profils"}}
	return NewUserService(r, st, cfg, zap.NewNop()), r, st
}

func storedPhoto(t *testing.T, st blob.Storage, key string) *string {
	t.Helper()
	require.NoError(t, st.Put(context.Background(), key, strings.NewReader("old"), 3, "image/png"))
	return &key
}

func photoExists(t *testing.T, st blob.Storage, key string) bool {
	t.Helper()
	ok, err := st.Exists(context.Background(), key)
	require.NoError(t, err)
	return ok
}

func TestUserService_UpdateReplacesPhoto(t *testing.T) {
	ctx := context.Background()
	svc, r, st := newUserFixture(t)
	id := uuid.New()
	old := storedPhoto(t, st, "photo_profils/old/moi.png")

	r.On("Get", ctx, id).Return(&model.User{ID: id, FullName: "A", Email: "a@e.com", PhotoPath: old}, nil)
	r.On("Update", ctx, id, mock.AnythingOfType("*model.User")).Return(nil)

	u, err := svc.Update(ctx, id, UpdateUserInput{
		FullName: " Awa Diallo ",
		Email:    "awa@e.com",
		Photo:    formFile(t, "photo_profil", "nouvelle.png", "png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Awa Diallo", u.FullName)
	assert.Equal(t, "awa@e.com", u.Email)
	require.NotNil(t, u.PhotoPath)
	assert.NotEqual(t, *old, *u.PhotoPath)
	assert.True(t, strings.HasPrefix(*u.PhotoPath, "photo_profils/"))
	assert.True(t, photoExists(t, st, *u.PhotoPath))
	assert.False(t, photoExists(t, st, *old))
}

func TestUserService_UpdateWithoutPhotoKeepsCurrent(t *testing.T) {
	ctx := context.Background()
	svc, r, st := newUserFixture(t)
	id := uuid.New()
	old := storedPhoto(t, st, "photo_profils/old/moi.png")

	r.On("Get", ctx, id).Return(&model.User{ID: id, PhotoPath: old}, nil)
	r.On("Update", ctx, id, mock.AnythingOfType("*model.User")).Return(nil)

	u, err := svc.Update(ctx, id, UpdateUserInput{FullName: "A", Email: "a@e.com"})
	require.NoError(t, err)
	assert.Equal(t, old, u.PhotoPath)
	assert.True(t, photoExists(t, st, *old))
}

func TestUserService_UpdateFailureRemovesNewPhoto(t *testing.T) {
	tests := map[string]struct {
		repoErr error
		field   string
	}{
		"duplicate email": {repoErr: gorm.ErrDuplicatedKey, field: "email"},
		"database down":   {repoErr: errors.New("connection reset")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc, r, st := newUserFixture(t)
			id := uuid.New()
			old := storedPhoto(t, st, "photo_profils/old/moi.png")
			var newKey string

			r.On("Get", ctx, id).Return(&model.User{ID: id, PhotoPath: old}, nil)
			r.On("Update", ctx, id, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
				u := args.Get(2).(*model.User)
				require.NotNil(t, u.PhotoPath)
				newKey = *u.PhotoPath
				assert.True(t, photoExists(t, st, newKey))
			}).Return(tt.repoErr)

			_, err := svc.Update(ctx, id, UpdateUserInput{
				FullName: "A",
				Email:    "taken@e.com",
				Photo:    formFile(t, "photo_profil", "nouvelle.png", "png-bytes"),
			})
			require.Error(t, err)
			var fe *FieldError
			if tt.field != "" {
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.field, fe.Field)
			} else {
				assert.False(t, errors.As(err, &fe))
				assert.ErrorIs(t, err, tt.repoErr)
			}

			require.NotEmpty(t, newKey)
			assert.False(t, photoExists(t, st, newKey))
			assert.True(t, photoExists(t, st, *old))
		})
	}
}

func TestUserService_UpdateUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, r, _ := newUserFixture(t)
	id := uuid.New()
	r.On("Get", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(ctx, id, UpdateUserInput{FullName: "A", Email: "a@e.com"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_DeleteRemovesPhoto(t *testing.T) {
	ctx := context.Background()
	svc, r, st := newUserFixture(t)
	id := uuid.New()
	old := storedPhoto(t, st, "photo_profils/old/moi.png")

	r.On("Get", ctx, id).Return(&model.User{ID: id, PhotoPath: old}, nil)
	r.On("Delete", ctx, id).Return(nil)

	require.NoError(t, svc.Delete(ctx, id))
	assert.False(t, photoExists(t, st, *old))
}

func TestUserService_DeleteFailureKeepsPhoto(t *testing.T) {
	ctx := context.Background()
	svc, r, st := newUserFixture(t)
	id := uuid.New()
	old := storedPhoto(t, st, "photo_profils/old/moi.png")

	r.On("Get", ctx, id).Return(&model.User{ID: id, PhotoPath: old}, nil)
	r.On("Delete", ctx, id).Return(errors.New("fk check failed"))

	require.Error(t, svc.Delete(ctx, id))
	assert.True(t, photoExists(t, st, *old))
}

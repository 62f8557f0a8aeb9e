package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UpdateUserInput struct {
	FullName string
	Email    string
	Photo    *multipart.FileHeader
}

type userService struct {
	r     repo.UserRepo
	store blob.Storage
	cfg   *config.Config
	log   *zap.Logger
}

func NewUserService(r repo.UserRepo, store blob.Storage, cfg *config.Config, log *zap.Logger) UserService {
	return &userService{r: r, store: store, cfg: cfg, log: log}
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	return s.r.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.r.Get(ctx, id)
}

// Update replaces the photo only when a new one is sent; the old file is removed afterwards.
func (s *userService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	cur, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPhoto := cur.PhotoPath

	cur.FullName = strings.TrimSpace(in.FullName)
	cur.Email = strings.TrimSpace(in.Email)

	var newPhoto *string
	if in.Photo != nil {
		meta, err := blob.UploadFormFile(ctx, s.store, s.cfg.Storage.PhotoPrefix, in.Photo)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		metrics.UploadedBytesTotal.WithLabelValues("photo").Add(float64(meta.SizeB))
		newPhoto = &meta.Key
		cur.PhotoPath = newPhoto
	}

	if err := s.r.Update(ctx, id, cur); err != nil {
		s.deletePhoto(ctx, newPhoto)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldErr("email", "Cette adresse email est déjà utilisée.")
		}
		return nil, err
	}
	if newPhoto != nil {
		s.deletePhoto(ctx, oldPhoto)
	}
	return cur, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	cur, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.deletePhoto(ctx, cur.PhotoPath)
	return nil
}

func (s *userService) deletePhoto(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.store.Delete(ctx, *key); err != nil {
		s.log.Sugar().Warnw("orphan photo left in storage", "key", *key, "err", err)
	}
}

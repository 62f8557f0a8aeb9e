package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/infra/cache"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/pkg/metrics"
	"github.com/projetflow/api/internal/pkg/utils/tokens"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TokenType = "Bearer"

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, email, password string) (*AuthOutput, error)
	Logout(ctx context.Context, p *Principal) error
	// Authenticate resolves a bearer string to its user.
	Authenticate(ctx context.Context, raw string) (*Principal, error)
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Photo    *multipart.FileHeader
}

type AuthOutput struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
}

// Principal is the caller resolved from a bearer token.
type Principal struct {
	User      *model.User
	TokenID   uuid.UUID
	TokenHash string
}

type authService struct {
	users  repo.UserRepo
	tokens repo.TokenRepo
	cache  cache.TokenCache
	store  blob.Storage
	cfg    *config.Config
	log    *zap.Logger
}

func NewAuthService(users repo.UserRepo, tokens repo.TokenRepo, tc cache.TokenCache, store blob.Storage, cfg *config.Config, log *zap.Logger) AuthService {
	return &authService{users: users, tokens: tokens, cache: tc, store: store, cfg: cfg, log: log}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	email := strings.TrimSpace(in.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fieldErr("email", "Cette adresse email est déjà utilisée.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: string(hash),
	}
	if in.Photo != nil {
		meta, err := blob.UploadFormFile(ctx, s.store, s.cfg.Storage.PhotoPrefix, in.Photo)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		metrics.UploadedBytesTotal.WithLabelValues("photo").Add(float64(meta.SizeB))
		u.PhotoPath = &meta.Key
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.removePhoto(ctx, u.PhotoPath)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldErr("email", "Cette adresse email est déjà utilisée.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(ctx, u)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthOutput, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// one active session per user
	hashes, err := s.tokens.DeleteAllForUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("revoke tokens: %w", err)
	}
	if err := s.cache.Delete(ctx, hashes...); err != nil {
		s.log.Sugar().Warnw("token cache invalidation failed", "user_id", u.ID, "err", err)
	}

	return s.issue(ctx, u)
}

func (s *authService) Logout(ctx context.Context, p *Principal) error {
	if err := s.tokens.Delete(ctx, p.TokenHash); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("revoke token: %w", err)
	}
	if err := s.cache.Delete(ctx, p.TokenHash); err != nil {
		s.log.Sugar().Warnw("token cache invalidation failed", "token_id", p.TokenID, "err", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, raw string) (*Principal, error) {
	id, secret, ok := tokens.Parse(raw)
	if !ok {
		return nil, ErrUnauthenticated
	}
	hash := tokens.SHA256Hex(secret)

	entry, hit, err := s.cache.Get(ctx, hash)
	if err != nil {
		s.log.Sugar().Warnw("token cache read failed", "err", err)
	}
	if hit && entry.TokenID != id {
		return nil, ErrUnauthenticated
	}
	if !hit {
		t, err := s.tokens.GetByHash(ctx, hash)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		if err != nil {
			return nil, fmt.Errorf("lookup token: %w", err)
		}
		if t.ID != id {
			return nil, ErrUnauthenticated
		}
		entry = cache.TokenEntry{UserID: t.UserID, TokenID: t.ID}
		if err := s.cache.Set(ctx, hash, entry); err != nil {
			s.log.Sugar().Warnw("token cache write failed", "err", err)
		}
		if err := s.tokens.Touch(ctx, t.ID, time.Now()); err != nil {
			s.log.Sugar().Debugw("token touch failed", "token_id", t.ID, "err", err)
		}
	}

	u, err := s.users.Get(ctx, entry.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = s.cache.Delete(ctx, hash)
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &Principal{User: u, TokenID: id, TokenHash: hash}, nil
}

func (s *authService) issue(ctx context.Context, u *model.User) (*AuthOutput, error) {
	secret, hash, err := tokens.New()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	t := &model.AccessToken{UserID: u.ID, Name: s.cfg.Auth.TokenName, TokenHash: hash}
	if err := s.tokens.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := s.cache.Set(ctx, hash, cache.TokenEntry{UserID: u.ID, TokenID: t.ID}); err != nil {
		s.log.Sugar().Warnw("token cache write failed", "user_id", u.ID, "err", err)
	}
	return &AuthOutput{User: u, Token: tokens.Format(t.ID, secret), TokenType: TokenType}, nil
}

func (s *authService) bcryptCost() int {
	if c := s.cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
		return c
	}
	return bcrypt.DefaultCost
}

func (s *authService) removePhoto(ctx context.Context, key *string) {
	if key == nil {
		return
	}
	if err := s.store.Delete(ctx, *key); err != nil {
		s.log.Sugar().Warnw("orphan photo left in storage", "key", *key, "err", err)
	}
}

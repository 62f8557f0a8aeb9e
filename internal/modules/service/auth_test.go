package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/infra/cache"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/pkg/utils/tokens"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authFixture struct {
	svc    AuthService
	users  *MockUserRepo
	tokens *MockTokenRepo
	cache  cache.TokenCache
	fs     afero.Fs
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Auth:    config.AuthCfg{TokenName: "auth_token", BcryptCost: bcrypt.MinCost},
		Storage: config.StorageCfg{PhotoPrefix: "photo_profils"},
	}
	f := &authFixture{
		users:  &MockUserRepo{},
		tokens: &MockTokenRepo{},
		cache:  cache.NewTokenCache(rdb, time.Minute),
		fs:     afero.NewMemMapFs(),
	}
	f.svc = NewAuthService(f.users, f.tokens, f.cache, blob.NewLocalFs(f.fs), cfg, zap.NewNop())
	return f
}

func TestAuthService_RegisterThenAuthenticate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	f.users.On("GetByEmail", ctx, "t@e.com").Return(nil, gorm.ErrRecordNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*model.User)
		u.ID = userID
	}).Return(nil)
	f.tokens.On("Create", ctx, mock.AnythingOfType("*model.AccessToken")).Run(func(args mock.Arguments) {
		tok := args.Get(1).(*model.AccessToken)
		assert.Equal(t, userID, tok.UserID)
		assert.Equal(t, "auth_token", tok.Name)
		assert.Len(t, tok.TokenHash, 64)
		tok.ID = tokenID
	}).Return(nil)

	out, err := f.svc.Register(ctx, RegisterInput{
		FullName: " Test ",
		Email:    "t@e.com",
		Password: "Aa1!aaaa",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, "Test", out.User.FullName)
	assert.Nil(t, out.User.PhotoPath)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out.User.PasswordHash), []byte("Aa1!aaaa")))

	id, _, ok := tokens.Parse(out.Token)
	require.True(t, ok)
	assert.Equal(t, tokenID, id)

	// token is served from the cache, no token lookup in the repo
	f.users.On("Get", ctx, userID).Return(out.User, nil)
	p, err := f.svc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, p.User.ID)
	f.tokens.AssertNotCalled(t, "GetByHash", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterEmailTaken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.users.On("GetByEmail", ctx, "t@e.com").Return(&model.User{ID: uuid.New()}, nil)

	_, err := f.svc.Register(ctx, RegisterInput{FullName: "T", Email: "t@e.com", Password: "Aa1!aaaa"})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "email", fe.Field)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterRemovesPhotoOnFailure(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	var storedKey string

	f.users.On("GetByEmail", ctx, "t@e.com").Return(nil, gorm.ErrRecordNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*model.User)
		require.NotNil(t, u.PhotoPath)
		storedKey = *u.PhotoPath
		exists, _ := afero.Exists(f.fs, "/"+storedKey)
		assert.True(t, exists)
	}).Return(errors.New("insert failed"))

	_, err := f.svc.Register(ctx, RegisterInput{
		FullName: "T",
		Email:    "t@e.com",
		Password: "Aa1!aaaa",
		Photo:    formFile(t, "photo_profil", "moi.png", "png-bytes"),
	})
	require.Error(t, err)
	require.NotEmpty(t, storedKey)
	exists, _ := afero.Exists(f.fs, "/"+storedKey)
	assert.False(t, exists)
}

func TestAuthService_LoginFailures(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Aa1!aaaa"), bcrypt.MinCost)

	f.users.On("GetByEmail", ctx, "nobody@e.com").Return(nil, gorm.ErrRecordNotFound)
	f.users.On("GetByEmail", ctx, "t@e.com").Return(&model.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)

	_, err := f.svc.Login(ctx, "nobody@e.com", "Aa1!aaaa")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, "t@e.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	f.tokens.AssertNotCalled(t, "DeleteAllForUser", mock.Anything, mock.Anything)
}

func TestAuthService_LoginRevokesPreviousTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Aa1!aaaa"), bcrypt.MinCost)
	u := &model.User{ID: uuid.New(), Email: "t@e.com", PasswordHash: string(hash)}

	require.NoError(t, f.cache.Set(ctx, "old-hash", cache.TokenEntry{UserID: u.ID, TokenID: uuid.New()}))

	f.users.On("GetByEmail", ctx, "t@e.com").Return(u, nil)
	f.tokens.On("DeleteAllForUser", ctx, u.ID).Return([]string{"old-hash"}, nil)
	f.tokens.On("Create", ctx, mock.AnythingOfType("*model.AccessToken")).Return(nil)

	out, err := f.svc.Login(ctx, "t@e.com", "Aa1!aaaa")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, hit, err := f.cache.Get(ctx, "old-hash")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAuthService_AuthenticateFromDatabase(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	u := &model.User{ID: uuid.New()}
	tokID := uuid.New()
	secret, hash, err := tokens.New()
	require.NoError(t, err)

	f.tokens.On("GetByHash", ctx, hash).Return(&model.AccessToken{ID: tokID, UserID: u.ID, TokenHash: hash}, nil)
	f.tokens.On("Touch", ctx, tokID, mock.AnythingOfType("time.Time")).Return(nil)
	f.users.On("Get", ctx, u.ID).Return(u, nil)

	// id part does not match the stored token
	_, err = f.svc.Authenticate(ctx, tokens.Format(uuid.New(), secret))
	assert.ErrorIs(t, err, ErrUnauthenticated)

	p, err := f.svc.Authenticate(ctx, tokens.Format(tokID, secret))
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.User.ID)
	assert.Equal(t, hash, p.TokenHash)

	cached, hit, err := f.cache.Get(ctx, hash)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cache.TokenEntry{UserID: u.ID, TokenID: tokID}, cached)
}

func TestAuthService_AuthenticateRejects(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	secret, hash, _ := tokens.New()
	f.tokens.On("GetByHash", ctx, hash).Return(nil, gorm.ErrRecordNotFound)
	_, err = f.svc.Authenticate(ctx, tokens.Format(uuid.New(), secret))
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// cached token whose user has been deleted
	secret2, hash2, _ := tokens.New()
	gone := cache.TokenEntry{UserID: uuid.New(), TokenID: uuid.New()}
	require.NoError(t, f.cache.Set(ctx, hash2, gone))
	f.users.On("Get", ctx, gone.UserID).Return(nil, gorm.ErrRecordNotFound)
	_, err = f.svc.Authenticate(ctx, tokens.Format(gone.TokenID, secret2))
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, hit, _ := f.cache.Get(ctx, hash2)
	assert.False(t, hit)
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	p := &Principal{User: &model.User{ID: uuid.New()}, TokenID: uuid.New(), TokenHash: "h"}
	require.NoError(t, f.cache.Set(ctx, "h", cache.TokenEntry{UserID: p.User.ID, TokenID: p.TokenID}))

	f.tokens.On("Delete", ctx, "h").Return(nil)
	require.NoError(t, f.svc.Logout(ctx, p))

	_, hit, _ := f.cache.Get(ctx, "h")
	assert.False(t, hit)
	f.tokens.AssertExpectations(t)
}

func TestAuthService_AuthenticateChecksCachedTokenID(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	u := &model.User{ID: uuid.New()}
	tokID := uuid.New()
	secret, hash, _ := tokens.New()
	require.NoError(t, f.cache.Set(ctx, hash, cache.TokenEntry{UserID: u.ID, TokenID: tokID}))
	f.users.On("Get", ctx, u.ID).Return(u, nil)

	_, err := f.svc.Authenticate(ctx, tokens.Format(uuid.New(), secret))
	assert.ErrorIs(t, err, ErrUnauthenticated)

	p, err := f.svc.Authenticate(ctx, tokens.Format(tokID, secret))
	require.NoError(t, err)
	assert.Equal(t, tokID, p.TokenID)
	f.tokens.AssertNotCalled(t, "GetByHash", mock.Anything, mock.Anything)
}

func TestAuthService_LogoutDuringLookupIsNotCached(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	u := &model.User{ID: uuid.New()}
	tokID := uuid.New()
	secret, hash, _ := tokens.New()
	bearer := tokens.Format(tokID, secret)

	// the row is read, then the token is revoked before the lookup caches it
	f.tokens.On("GetByHash", ctx, hash).Run(func(mock.Arguments) {
		require.NoError(t, f.svc.Logout(ctx, &Principal{User: u, TokenID: tokID, TokenHash: hash}))
	}).Return(&model.AccessToken{ID: tokID, UserID: u.ID, TokenHash: hash}, nil).Once()
	f.tokens.On("GetByHash", ctx, hash).Return(nil, gorm.ErrRecordNotFound)
	f.tokens.On("Delete", ctx, hash).Return(nil)
	f.tokens.On("Touch", ctx, tokID, mock.AnythingOfType("time.Time")).Return(nil)
	f.users.On("Get", ctx, u.ID).Return(u, nil)

	_, err := f.svc.Authenticate(ctx, bearer)
	require.NoError(t, err)

	_, hit, err := f.cache.Get(ctx, hash)
	require.NoError(t, err)
	assert.False(t, hit)

	_, err = f.svc.Authenticate(ctx, bearer)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

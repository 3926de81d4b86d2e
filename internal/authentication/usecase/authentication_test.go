package usecase

import (
	"context"
	"testing"
	"time"

	"inventory-srv/internal/authentication"
	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/internal/user/mocks"
	"inventory-srv/pkg/encrypter"
	"inventory-srv/pkg/jwt"
	"inventory-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testDeps struct {
	userUC  *mocks.UseCase
	manager *jwt.Manager
	enc     encrypter.Encrypter
}

func newTestUseCase(t *testing.T, opts Options) (authentication.UseCase, testDeps) {
	t.Helper()

	manager, err := jwt.New(jwt.Config{SecretKey: testSecret, Issuer: "inventory-srv"})
	require.NoError(t, err)

	deps := testDeps{
		userUC:  mocks.NewUseCase(t),
		manager: manager,
		enc:     encrypter.New(encrypter.MinCost),
	}
	return New(log.NewNop(), deps.userUC, deps.manager, deps.enc, opts), deps
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to USER and issues tokens", func(t *testing.T) {
		uc, deps := newTestUseCase(t, Options{})

		deps.userUC.On("Create", ctx, mock.MatchedBy(func(in user.CreateInput) bool {
			return in.Email == "alice@example.com" && in.Role == model.RoleUser &&
				in.PasswordHash != "" && in.PasswordHash != "pa55word"
		})).Return(model.User{ID: "u-1", Email: "alice@example.com", Name: "Alice", Role: model.RoleUser}, nil)

		o, err := uc.Register(ctx, authentication.RegisterInput{
			Email: " Alice@Example.com ", Password: "pa55word", Name: "Alice",
		})
		require.NoError(t, err)
		assert.Equal(t, "u-1", o.User.ID)

		claims, err := deps.manager.VerifyAccessToken(o.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.ID)
		assert.Equal(t, model.RoleUser, claims.Role)
	})

	t.Run("privileged role rejected by default", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Options{})

		_, err := uc.Register(ctx, authentication.RegisterInput{
			Email: "bob@example.com", Password: "pw", Name: "Bob", Role: model.RoleAdmin,
		})
		assert.ErrorIs(t, err, authentication.ErrRoleNotAllowed)
	})

	t.Run("privileged role allowed when enabled", func(t *testing.T) {
		uc, deps := newTestUseCase(t, Options{AllowRoleOnRegister: true})
		deps.userUC.On("Create", ctx, mock.MatchedBy(func(in user.CreateInput) bool {
			return in.Role == model.RoleManager
		})).Return(model.User{ID: "u-2", Role: model.RoleManager}, nil)

		o, err := uc.Register(ctx, authentication.RegisterInput{
			Email: "bob@example.com", Password: "pw", Name: "Bob", Role: "manager",
		})
		require.NoError(t, err)
		assert.Equal(t, model.RoleManager, o.User.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Options{AllowRoleOnRegister: true})
		_, err := uc.Register(ctx, authentication.RegisterInput{Email: "bob@example.com", Password: "pw", Role: "ROOT"})
		assert.ErrorIs(t, err, authentication.ErrInvalidRole)
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Options{})
		_, err := uc.Register(ctx, authentication.RegisterInput{Email: "bob", Password: "pw"})
		assert.ErrorIs(t, err, authentication.ErrInvalidEmail)
	})

	t.Run("blank name", func(t *testing.T) {
		uc, _ := newTestUseCase(t, Options{})
		_, err := uc.Register(ctx, authentication.RegisterInput{Email: "bob@example.com", Password: "pw", Name: " \t "})
		assert.ErrorIs(t, err, authentication.ErrRequiredFields)
	})

	t.Run("email exists", func(t *testing.T) {
		uc, deps := newTestUseCase(t, Options{})
		deps.userUC.On("Create", ctx, mock.Anything).Return(model.User{}, user.ErrEmailExists)

		_, err := uc.Register(ctx, authentication.RegisterInput{Email: "alice@example.com", Password: "pw", Name: "Alice"})
		assert.ErrorIs(t, err, authentication.ErrEmailExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase(t, Options{})

	hash, err := deps.enc.HashPassword("pa55word")
	require.NoError(t, err)
	alice := model.User{ID: "u-1", Email: "alice@example.com", PasswordHash: hash, Name: "Alice", Role: model.RoleManager}

	deps.userUC.On("GetByEmail", ctx, "alice@example.com").Return(alice, nil)
	deps.userUC.On("GetByEmail", ctx, "ghost@example.com").Return(model.User{}, user.ErrUserNotFound)

	o, err := uc.Login(ctx, authentication.LoginInput{Email: "alice@example.com", Password: "pa55word"})
	require.NoError(t, err)
	assert.Equal(t, alice.Summary(), o.User)

	_, err = uc.Login(ctx, authentication.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, authentication.ErrInvalidCredentials)

	_, err = uc.Login(ctx, authentication.LoginInput{Email: "ghost@example.com", Password: "pa55word"})
	assert.ErrorIs(t, err, authentication.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase(t, Options{})

	pair, err := deps.manager.IssueTokenPair("u-1", model.RoleUser)
	require.NoError(t, err)

	t.Run("role is read from the directory", func(t *testing.T) {
		deps.userUC.On("GetByID", ctx, "u-1").
			Return(model.UserSummary{ID: "u-1", Email: "alice@example.com", Role: model.RoleManager}, nil).Once()

		o, err := uc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)

		claims, err := deps.manager.VerifyAccessToken(o.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, model.RoleManager, claims.Role)
		assert.True(t, o.Tokens.RefreshExpiresAt.After(time.Now()))
	})

	t.Run("access token rejected", func(t *testing.T) {
		_, err := uc.Refresh(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, authentication.ErrInvalidRefreshToken)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := uc.Refresh(ctx, "")
		assert.ErrorIs(t, err, authentication.ErrRefreshTokenMissing)
	})

	t.Run("account vanished", func(t *testing.T) {
		deps.userUC.On("GetByID", ctx, "u-1").Return(model.UserSummary{}, user.ErrUserNotFound).Once()

		_, err := uc.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, authentication.ErrUserNotFound)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase(t, Options{})

	deps.userUC.On("GetByID", ctx, "u-1").Return(model.UserSummary{ID: "u-1", Email: "alice@example.com"}, nil)
	deps.userUC.On("GetByID", ctx, "gone").Return(model.UserSummary{}, user.ErrUserNotFound)

	s, err := uc.CurrentUser(ctx, model.Scope{UserID: "u-1", Role: model.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", s.Email)

	_, err = uc.CurrentUser(ctx, model.Scope{UserID: "gone"})
	assert.ErrorIs(t, err, authentication.ErrUserNotFound)

	_, err = uc.CurrentUser(ctx, model.Scope{})
	assert.ErrorIs(t, err, authentication.ErrUnauthenticated)
}

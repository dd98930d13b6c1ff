package auth

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuth() *AuthUseCase {
	return NewAuthUseCase(memory.NewUserRepository(memory.NewStore()), testSecret, time.Hour, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	uc := newTestAuth()
	ctx := context.Background()

	resp, err := uc.Register(ctx, &RegisterRequest{
		Email:    "Creator@Example.com",
		Password: "correct-horse",
		Name:     "Creator",
		Role:     domain.RoleCreator,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "creator@example.com", resp.User.Email)
	require.NotEqual(t, "correct-horse", resp.User.PasswordHash)

	actor, err := uc.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, domain.Actor{ID: resp.User.ID, Role: domain.RoleCreator}, actor)

	login, err := uc.Login(ctx, &LoginRequest{Email: "creator@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, login.User.ID)

	_, err = uc.Login(ctx, &LoginRequest{Email: "creator@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegister_Duplicate(t *testing.T) {
	uc := newTestAuth()
	req := &RegisterRequest{Email: "m@example.com", Password: "password1", Name: "Mark", Role: domain.RoleMarketer}

	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegister_InvalidRole(t *testing.T) {
	uc := newTestAuth()
	_, err := uc.Register(context.Background(), &RegisterRequest{Email: "a@example.com", Password: "password1", Name: "A", Role: "admin"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateToken(t *testing.T) {
	uc := newTestAuth()
	resp, err := uc.Register(context.Background(), &RegisterRequest{
		Email: "c@example.com", Password: "password1", Name: "C", Role: domain.RoleCreator,
	})
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := uc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthUseCase(nil, "ffffffffffffffffffffffffffffffff", time.Hour, zap.NewNop())
		_, err := other.ValidateToken(resp.Token)
		require.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { uc.now = time.Now }()
		_, err := uc.ValidateToken(resp.Token)
		require.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

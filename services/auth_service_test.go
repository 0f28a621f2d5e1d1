package services

import (
	"context"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() AuthService {
	svc := NewAuthService(fakeUserRepo{newMemStore()}).(*authService)
	svc.cost = bcrypt.MinCost
	return svc
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Nickname: "arbiter", Email: "Arbiter@Example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "arbiter@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	logged, err := svc.Login(ctx, models.Credentials{Email: "arbiter@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.PasswordHash)
}

func TestAuthService_RegisterErrors(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Nickname: "a", Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Register(ctx, RegisterInput{Nickname: "a", Email: "a@example.com", Password: "long-enough"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Nickname: "b", Email: "a@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrUserEmailConflict)

	_, err = svc.Register(ctx, RegisterInput{Nickname: "a", Email: "b@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrUserNicknameConflict)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Nickname: "a", Email: "a@example.com", Password: "long-enough"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.Credentials{Email: "a@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.Credentials{Email: "nobody@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

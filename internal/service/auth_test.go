package service_test

import (
	"context"
	"testing"

	"github.com/leon37/EpyTodo/internal/service"
	"github.com/leon37/EpyTodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (*service.AuthService, *service.TokenService, *service.UserService) {
	t.Helper()
	store, _ := testutil.NewStore(t)
	tokens := service.NewTokenService("test-secret")
	return service.NewAuthService(store, tokens), tokens, service.NewUserService(store)
}

func TestRegister_IssuesTokenForNewUser(t *testing.T) {
	auth, tokens, users := newAuth(t)
	ctx := context.Background()

	token, err := auth.Register(ctx, service.RegisterInput{
		Email: "a@x.com", Name: "N", Firstname: "F", Password: "p",
	})
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	user, err := users.Get(ctx, service.ByID(claims.UserID))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "N", user.Name)
	assert.Equal(t, "F", user.Firstname)

	// 存的是哈希，代价因子 10
	assert.NotEqual(t, "p", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("p")))
	cost, err := bcrypt.Cost([]byte(user.Password))
	require.NoError(t, err)
	assert.Equal(t, service.PasswordCost, cost)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	auth, _, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, service.RegisterInput{Email: "a@x.com", Name: "N", Firstname: "F", Password: "p"})
	require.NoError(t, err)

	for _, in := range []service.RegisterInput{
		{Email: "a@x.com", Name: "N", Firstname: "F", Password: "p"},
		{Email: "a@x.com", Name: "Other", Firstname: "Person", Password: "different"},
	} {
		_, err := auth.Register(ctx, in)
		assert.ErrorIs(t, err, service.ErrAccountExists)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	auth, _, users := newAuth(t)
	ctx := context.Background()

	for _, in := range []service.RegisterInput{
		{Name: "N", Firstname: "F", Password: "p"},
		{Email: "a@x.com", Firstname: "F", Password: "p"},
		{Email: "a@x.com", Name: "N", Password: "p"},
		{Email: "a@x.com", Name: "N", Firstname: "F"},
	} {
		_, err := auth.Register(ctx, in)
		assert.ErrorIs(t, err, service.ErrBadParameter)
	}

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLogin(t *testing.T) {
	auth, tokens, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, service.RegisterInput{Email: "a@x.com", Name: "N", Firstname: "F", Password: "p"})
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		token, err := auth.Login(ctx, "a@x.com", "p")
		require.NoError(t, err)
		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "a@x.com", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email is a bad parameter", func(t *testing.T) {
		_, err := auth.Login(ctx, "ghost@x.com", "p")
		assert.ErrorIs(t, err, service.ErrBadParameter)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := auth.Login(ctx, "", "p")
		assert.ErrorIs(t, err, service.ErrBadParameter)
		_, err = auth.Login(ctx, "a@x.com", "")
		assert.ErrorIs(t, err, service.ErrBadParameter)
	})
}

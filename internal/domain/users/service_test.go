package users

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_RegisterThenLogin(t *testing.T) {
	svc := NewService(newTestRepo())

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "Ana@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "ana@example.com", registered.Email, "email se normaliza a lowercase")
	assert.NotEqual(t, "secret-password", registered.PasswordHash, "nunca se guarda la password en claro")

	loggedIn, err := svc.Login(context.Background(), "ana@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ana@example.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginUnknownEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	// Mismo error que password incorrecta: no filtramos qué emails existen.
	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "Otra Ana", Email: "ANA@example.com", Password: "other-password",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestService_RegisterValidation(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "", Email: "ana@example.com", Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserAuthFixture(t *testing.T) (*UserAuthService, *config.Config) {
	t.Helper()
	db := openServiceTestDB(t)
	cfg := config.Default()
	return NewUserAuthService(cfg, repository.NewUserRepository(db)), cfg
}

func TestUserRegisterAndLogin(t *testing.T) {
	svc, _ := newUserAuthFixture(t)

	user, token, _, err := svc.Register(RegisterInput{
		Name:     "  bilal   raza ",
		Email:    "Bilal@Example.com",
		Phone:    "+92 300 1234567",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bilal Raza", user.Name)
	assert.Equal(t, "bilal@example.com", user.Email)

	claims, err := svc.ParseUserJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, _, err = svc.Register(RegisterInput{Name: "Bilal", Email: "bilal@example.com", Phone: "03001234567", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailExists)

	logged, _, _, err := svc.Login("BILAL@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	require.NotNil(t, logged.LastLoginAt)

	_, _, _, err = svc.Login("bilal@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserRegisterValidation(t *testing.T) {
	svc, _ := newUserAuthFixture(t)
	base := RegisterInput{Name: "Hina", Email: "hina@example.com", Phone: "03001234567", Password: "password123"}

	cases := []struct {
		name   string
		mutate func(in *RegisterInput)
		want   error
	}{
		{name: "short name", mutate: func(in *RegisterInput) { in.Name = "Hi" }, want: ErrInvalidName},
		{name: "bad email", mutate: func(in *RegisterInput) { in.Email = "a@b" }, want: ErrInvalidEmail},
		{name: "short phone", mutate: func(in *RegisterInput) { in.Phone = "12345" }, want: ErrInvalidPhone},
		{name: "short password", mutate: func(in *RegisterInput) { in.Password = "abc" }, want: ErrWeakPassword},
		{name: "digits only password", mutate: func(in *RegisterInput) { in.Password = "1234567890" }, want: ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			_, _, _, err := svc.Register(input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPasswordPolicyKeys(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8, RequireLetter: true, RequireNumber: true}

	err := validatePassword(policy, "abc")
	var policyErr passwordPolicyError
	require.True(t, errors.As(err, &policyErr))
	assert.Equal(t, "error.password_min_length", policyErr.Key())
	assert.Equal(t, []interface{}{8}, policyErr.Args())

	err = validatePassword(policy, "12345678")
	require.True(t, errors.As(err, &policyErr))
	assert.Equal(t, "error.password_require_letter", policyErr.Key())

	err = validatePassword(policy, "abcdefgh")
	require.True(t, errors.As(err, &policyErr))
	assert.Equal(t, "error.password_require_number", policyErr.Key())

	assert.NoError(t, validatePassword(policy, "abcd1234"))
	assert.NoError(t, validatePassword(config.PasswordPolicyConfig{}, ""))

	err = validatePassword(config.PasswordPolicyConfig{}, strings.Repeat("a1", 40))
	require.True(t, errors.As(err, &policyErr))
	assert.Equal(t, "error.password_too_long", policyErr.Key())
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestUserChangePasswordInvalidatesOldPassword(t *testing.T) {
	svc, _ := newUserAuthFixture(t)
	user, _, _, err := svc.Register(RegisterInput{Name: "Usman", Email: "usman@example.com", Phone: "03001234567", Password: "password123"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(user.ID, "nope-nope", "newpassword1"), ErrInvalidPassword)
	require.NoError(t, svc.ChangePassword(user.ID, "password123", "newpassword1"))

	_, _, _, err = svc.Login("usman@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, _, err = svc.Login("usman@example.com", "newpassword1")
	assert.NoError(t, err)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Team{}, &models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewAuthService(repository.NewUserRepository(db))
}

func TestAuthServiceRegister(t *testing.T) {
	svc := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Username: "newuser",
		Email:    "newuser@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "newuser", user.Username)
	require.Equal(t, models.RoleEmployee, user.Role)
	require.Nil(t, user.TeamID, "a fresh user must start without a team")
	require.NotEqual(t, "supersecret", user.PasswordHash)

	_, err = svc.Register(RegisterInput{
		Username: "newuser",
		Email:    "other@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: " ", Email: "a@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Register(RegisterInput{Username: "u", Email: "not-an-email", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register(RegisterInput{Username: "u", Email: "u@example.com", Password: "short"})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := setupAuthService(t)

	registered, err := svc.Register(RegisterInput{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Username: "existing", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = svc.Login(LoginInput{Username: "existing", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Username: "ghost", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

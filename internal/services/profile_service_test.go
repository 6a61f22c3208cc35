package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
)

type profileServiceEnv struct {
	db   *gorm.DB
	svc  *ProfileService
	team *models.Team
	user *models.User
}

func setupProfileService(t *testing.T) profileServiceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Team{}, &models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	team := &models.Team{Name: "Development"}
	require.NoError(t, db.Create(team).Error)

	user := &models.User{Username: "drifter", Email: "drifter@example.com", PasswordHash: "x", Role: models.RoleEmployee}
	require.NoError(t, db.Create(user).Error)

	return profileServiceEnv{
		db:   db,
		svc:  NewProfileService(repository.NewUserRepository(db), repository.NewTeamRepository(db)),
		team: team,
		user: user,
	}
}

func TestProfileServiceAssignTeam(t *testing.T) {
	env := setupProfileService(t)

	updated, err := env.svc.AssignTeam(env.user.ID, env.team.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.TeamID)
	require.Equal(t, env.team.ID, *updated.TeamID)

	// Role is untouched; team and role are separate operations.
	require.Equal(t, models.RoleEmployee, updated.Role)

	_, err = env.svc.AssignTeam(env.user.ID, env.team.ID+100)
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestProfileServiceAssignRole(t *testing.T) {
	env := setupProfileService(t)

	updated, err := env.svc.AssignRole(env.user.ID, models.RoleManager)
	require.NoError(t, err)
	require.Equal(t, models.RoleManager, updated.Role)
	require.Nil(t, updated.TeamID, "changing the role must not touch the team")

	_, err = env.svc.AssignRole(env.user.ID, "Admin")
	require.ErrorIs(t, err, ErrInvalidRole)

	_, err = env.svc.AssignRole(env.user.ID+100, models.RoleEmployee)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestTeamServiceCreate(t *testing.T) {
	env := setupProfileService(t)
	svc := NewTeamService(repository.NewTeamRepository(env.db))

	team, err := svc.Create("  QA  ")
	require.NoError(t, err)
	require.Equal(t, "QA", team.Name)

	_, err = svc.Create("QA")
	require.ErrorIs(t, err, ErrTeamNameTaken)

	_, err = svc.Create("   ")
	require.ErrorIs(t, err, ErrTeamNameRequired)
}

func TestTeamServiceDelete(t *testing.T) {
	env := setupProfileService(t)
	svc := NewTeamService(repository.NewTeamRepository(env.db))

	require.NoError(t, svc.Delete(env.team.ID))
	require.ErrorIs(t, svc.Delete(env.team.ID), ErrTeamNotFound)
}

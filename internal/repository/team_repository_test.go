package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dshalev/teamtask/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestTeamRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamRepository(db)

	team := &models.Team{Name: "Development"}
	require.NoError(t, teams.Create(team))

	other := &models.Team{Name: "Design"}
	require.NoError(t, teams.Create(other))

	member := &models.User{Username: "worker", Email: "worker@example.com", PasswordHash: "x", TeamID: &team.ID}
	require.NoError(t, db.Create(member).Error)

	task := &models.Task{Title: "Doomed", Description: "d", DueDate: time.Now(), Status: models.TaskStatusNew, TeamID: team.ID}
	require.NoError(t, db.Create(task).Error)

	survivor := &models.Task{Title: "Survivor", Description: "d", DueDate: time.Now(), Status: models.TaskStatusNew, TeamID: other.ID}
	require.NoError(t, db.Create(survivor).Error)

	require.NoError(t, teams.Delete(team.ID))

	// The team and its tasks are gone.
	_, err := teams.FindByID(team.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var gone models.Task
	err = db.First(&gone, task.ID).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The member keeps their account but loses the team.
	var detached models.User
	require.NoError(t, db.First(&detached, member.ID).Error)
	require.Nil(t, detached.TeamID)

	// The other team's task is untouched.
	var kept models.Task
	require.NoError(t, db.First(&kept, survivor.ID).Error)
}

func TestTeamRepositoryFindByName(t *testing.T) {
	db := setupTestDB(t)
	teams := NewTeamRepository(db)

	require.NoError(t, teams.Create(&models.Team{Name: "QA"}))

	team, err := teams.FindByName("QA")
	require.NoError(t, err)
	require.Equal(t, "QA", team.Name)

	_, err = teams.FindByName("Nonexistent")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshalev/teamtask/internal/models"
)

func teamUser(id, teamID uint64, role models.Role) models.User {
	return models.User{ID: id, TeamID: &teamID, Role: role}
}

func TestCanViewTask(t *testing.T) {
	task := models.Task{ID: 1, TeamID: 10}

	require.NoError(t, CanViewTask(teamUser(1, 10, models.RoleEmployee), task))
	require.ErrorIs(t, CanViewTask(teamUser(1, 20, models.RoleEmployee), task), ErrDifferentTeam)
	require.ErrorIs(t, CanViewTask(models.User{ID: 1}, task), ErrDifferentTeam)
}

func TestCanCreateTask(t *testing.T) {
	require.NoError(t, CanCreateTask(teamUser(1, 10, models.RoleManager)))
	require.ErrorIs(t, CanCreateTask(teamUser(1, 10, models.RoleEmployee)), ErrNotManager)
}

func TestCanEditTask(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		task models.Task
		want error
	}{
		{
			name: "manager edits a New task of their team",
			user: teamUser(1, 10, models.RoleManager),
			task: models.Task{TeamID: 10, Status: models.TaskStatusNew},
			want: nil,
		},
		{
			name: "employee cannot edit",
			user: teamUser(1, 10, models.RoleEmployee),
			task: models.Task{TeamID: 10, Status: models.TaskStatusNew},
			want: ErrNotManager,
		},
		{
			name: "manager of another team cannot edit",
			user: teamUser(1, 20, models.RoleManager),
			task: models.Task{TeamID: 10, Status: models.TaskStatusNew},
			want: ErrDifferentTeam,
		},
		{
			name: "in-progress task is locked",
			user: teamUser(1, 10, models.RoleManager),
			task: models.Task{TeamID: 10, Status: models.TaskStatusInProgress},
			want: ErrStatusLocked,
		},
		{
			name: "completed task is locked",
			user: teamUser(1, 10, models.RoleManager),
			task: models.Task{TeamID: 10, Status: models.TaskStatusCompleted},
			want: ErrStatusLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanEditTask(tt.user, tt.task)
			if tt.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.want)
			}

			// Delete is allowed exactly when edit is allowed.
			delErr := CanDeleteTask(tt.user, tt.task)
			require.Equal(t, err, delErr)
		})
	}
}

func TestCanUpdateStatus(t *testing.T) {
	assignee := uint64(7)
	task := models.Task{TeamID: 10, AssignedToID: &assignee, Status: models.TaskStatusInProgress}

	// Assignee requirement applies identically to both roles.
	require.NoError(t, CanUpdateStatus(teamUser(7, 10, models.RoleEmployee), task))
	require.NoError(t, CanUpdateStatus(teamUser(7, 10, models.RoleManager), task))

	require.ErrorIs(t, CanUpdateStatus(teamUser(8, 10, models.RoleManager), task), ErrNotAssignee)
	require.ErrorIs(t, CanUpdateStatus(teamUser(7, 20, models.RoleEmployee), task), ErrDifferentTeam)

	unassigned := models.Task{TeamID: 10}
	require.ErrorIs(t, CanUpdateStatus(teamUser(7, 10, models.RoleEmployee), unassigned), ErrNotAssignee)
}

func TestCanAssociate(t *testing.T) {
	unassigned := models.Task{TeamID: 10}

	require.NoError(t, CanAssociate(teamUser(1, 10, models.RoleEmployee), unassigned))
	require.NoError(t, CanAssociate(teamUser(1, 10, models.RoleManager), unassigned))
	require.ErrorIs(t, CanAssociate(teamUser(1, 20, models.RoleEmployee), unassigned), ErrDifferentTeam)

	assignee := uint64(3)
	taken := models.Task{TeamID: 10, AssignedToID: &assignee}
	require.ErrorIs(t, CanAssociate(teamUser(1, 10, models.RoleEmployee), taken), ErrAlreadyAssigned)
}

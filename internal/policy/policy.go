// Package policy holds the pure authorization decisions for task actions.
//
// Authorization rules:
//   - Tasks are only ever visible within their own team
//   - Only Managers create, edit and delete tasks, and only while status is New
//   - Status updates require being the assignee, identically for both roles
//   - Any team member may claim (associate with) an unassigned team task
//
// Every function takes the acting user and the target task by value, has no
// side effects, and returns nil when the action is allowed or a sentinel
// denial error otherwise. Callers map denials to redirect targets; denials
// are never surfaced to the user as errors.
package policy

import (
	"errors"

	"github.com/dshalev/teamtask/internal/models"
)

var (
	ErrDifferentTeam   = errors.New("policy: task belongs to another team")
	ErrNotManager      = errors.New("policy: manager role required")
	ErrStatusLocked    = errors.New("policy: task is no longer in New status")
	ErrNotAssignee     = errors.New("policy: task is not assigned to this user")
	ErrAlreadyAssigned = errors.New("policy: task already has an assignee")
)

func sameTeam(user models.User, task models.Task) bool {
	return user.TeamID != nil && *user.TeamID == task.TeamID
}

// CanViewTask allows viewing a task's detail page.
func CanViewTask(user models.User, task models.Task) error {
	if !sameTeam(user, task) {
		return ErrDifferentTeam
	}
	return nil
}

// CanCreateTask allows creating tasks for the user's own team.
func CanCreateTask(user models.User) error {
	if !user.IsManager() {
		return ErrNotManager
	}
	return nil
}

// CanEditTask allows editing a task's fields. Tasks lock once work has
// started: only New tasks are editable.
func CanEditTask(user models.User, task models.Task) error {
	if !user.IsManager() {
		return ErrNotManager
	}
	if !sameTeam(user, task) {
		return ErrDifferentTeam
	}
	if task.Status != models.TaskStatusNew {
		return ErrStatusLocked
	}
	return nil
}

// CanDeleteTask allows deleting a task, under the same conditions as editing.
func CanDeleteTask(user models.User, task models.Task) error {
	return CanEditTask(user, task)
}

// CanUpdateStatus allows changing a task's status. The assignee requirement
// applies to Managers and Employees alike.
func CanUpdateStatus(user models.User, task models.Task) error {
	if !sameTeam(user, task) {
		return ErrDifferentTeam
	}
	if !task.IsAssignedTo(user.ID) {
		return ErrNotAssignee
	}
	return nil
}

// CanAssociate allows a user to claim an unassigned task from their team.
func CanAssociate(user models.User, task models.Task) error {
	if !sameTeam(user, task) {
		return ErrDifferentTeam
	}
	if task.AssignedToID != nil {
		return ErrAlreadyAssigned
	}
	return nil
}

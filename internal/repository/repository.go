package repository

import (
	"github.com/dshalev/teamtask/internal/models"
)

// TaskFilter holds filtering options for listing a team's tasks.
type TaskFilter struct {
	TeamID uint64
	Status *models.TaskStatus
	Limit  int
}

// StatusSummary holds the four-way status breakdown shown above task listings.
type StatusSummary struct {
	Total      int64
	New        int64
	InProgress int64
	Completed  int64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves a team's tasks ordered by due date, optionally
	// restricted to one status
	List(filter TaskFilter) ([]models.Task, error)

	// Summarize counts tasks per status over the same filtered set List
	// would return
	Summarize(filter TaskFilter) (StatusSummary, error)

	// ListAssignedTo retrieves the tasks of a team assigned to one user
	ListAssignedTo(teamID, userID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// UpdateStatus sets only the status of a task
	UpdateStatus(id uint64, status models.TaskStatus) error

	// Delete soft deletes a task
	Delete(id uint64) error

	// Claim atomically assigns an unassigned task to a user and reports
	// whether this call won the assignment
	Claim(taskID, userID uint64) (bool, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(team *models.Team) error

	// FindByID finds a team by ID
	FindByID(id uint64) (*models.Team, error)

	// FindByName finds a team by its unique name
	FindByName(name string) (*models.Team, error)

	// List lists all teams, ordered by name
	List() ([]models.Team, error)

	// Delete removes a team, deleting its tasks and detaching its members
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with the team preloaded
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error
}
